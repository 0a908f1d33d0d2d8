// Package matching holds the reconciliation core: SKU text parsing, the
// customer purchase index, the model resolver and the consumable allocator.
// Nothing here does I/O and all state is scoped to a single run.
package matching

import "strings"

// CategoryRule maps a retailer SKU fragment to the product categories the plan covers.
type CategoryRule struct {
	Match    string
	Keywords []string
}

// categoryRules is evaluated in order; the first rule whose Match is a
// substring of the SKU wins. Overlapping keywords across rules are expected.
var categoryRules = []CategoryRule{
	{"Warranty : Water Cooler/Dispencer/Geyser/RoomCooler/Heater", []string{
		"COOLER", "DISPENCER", "GEYSER", "ROOM COOLER", "HEATER", "WATER HEATER", "WATER DISPENSER",
	}},
	{"Warranty : Fan/Mixr/IrnBox/Kettle/OTG/Grmr/Geysr/Steamr/Inductn", []string{
		"FAN", "MIXER", "IRON BOX", "KETTLE", "OTG", "GROOMING KIT", "GEYSER", "STEAMER",
		"INDUCTION", "CEILING FAN", "TOWER FAN", "PEDESTAL FAN", "INDUCTION COOKER",
		"ELECTRIC KETTLE", "WALL FAN", "MIXER GRINDER", "CELLING FAN",
	}},
	{"AC : EWP : Warranty : AC", []string{"AC", "AIR CONDITIONER", "AC INDOOR"}},
	{"HAEW : Warranty : Air Purifier/WaterPurifier", []string{"AIR PURIFIER", "WATER PURIFIER"}},
	{"HAEW : Warranty : Dryer/MW/DishW", []string{"DRYER", "MICROWAVE OVEN", "DISH WASHER", "MICROWAVE OVEN-CONV"}},
	{"HAEW : Warranty : Ref/WM", []string{
		"REFRIGERATOR", "WASHING MACHINE", "WASHING MACHINE-TL", "REFRIGERATOR-DC",
		"WASHING MACHINE-FL", "WASHING MACHINE-SA", "REF", "REFRIGERATOR-CBU",
		"REFRIGERATOR-FF", "WM",
	}},
	{"HAEW : Warranty : TV", []string{"TV", "TV 28 %", "TV 18 %"}},
	{"TV : TTC : Warranty and Protection : TV", []string{"TV", "TV 28 %", "TV 18 %"}},
	{"TV : Spill and Drop Protection", []string{"TV", "TV 28 %", "TV 18 %"}},
	{"HAEW : Warranty :Chop/Blend/Toast/Air Fryer/Food Processr/JMG/Induction", []string{
		"CHOPPER", "BLENDER", "TOASTER", "AIR FRYER", "FOOD PROCESSOR", "JUICER", "INDUCTION COOKER",
	}},
	{"HAEW : Warranty : HOB and Chimney", []string{"HOB", "CHIMNEY"}},
	{"HAEW : Warranty : HT/SoundBar/AudioSystems/PortableSpkr", []string{
		"HOME THEATRE", "AUDIO SYSTEM", "SPEAKER", "SOUND BAR", "PARTY SPEAKER",
	}},
	{"HAEW : Warranty : Vacuum Cleaner/Fans/Groom&HairCare/Massager/Iron", []string{
		"VACUUM CLEANER", "FAN", "MASSAGER", "IRON BOX", "CEILING FAN",
		"TOWER FAN", "PEDESTAL FAN", "WALL FAN", "ROBO VACCUM CLEANER",
	}},
	{"AC AMC", []string{"AC", "AC INDOOR"}},
}

// CategoryRules returns a copy of the rule table in evaluation order.
func CategoryRules() []CategoryRule {
	out := make([]CategoryRule, len(categoryRules))
	for i, r := range categoryRules {
		out[i] = CategoryRule{Match: r.Match, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Classify returns the lower-cased category keywords of the first rule that
// matches retailerSKU, or nil when no rule matches.
func Classify(retailerSKU string) []string {
	for _, rule := range categoryRules {
		if !strings.Contains(retailerSKU, rule.Match) {
			continue
		}
		keywords := make([]string, len(rule.Keywords))
		for i, kw := range rule.Keywords {
			keywords[i] = strings.ToLower(kw)
		}
		return keywords
	}
	return nil
}
