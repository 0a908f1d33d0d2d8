package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		sku  string
		want []string
	}{
		{
			name: "ref/wm plan",
			sku:  "HAEW : Warranty : Ref/WM : Dur : 1+2 : Slab : 10K-20K",
			want: []string{
				"refrigerator", "washing machine", "washing machine-tl", "refrigerator-dc",
				"washing machine-fl", "washing machine-sa", "ref", "refrigerator-cbu",
				"refrigerator-ff", "wm",
			},
		},
		{
			name: "ttc tv key maps to tv set",
			sku:  "TV : TTC : Warranty and Protection : TV Dur : 3",
			want: []string{"tv", "tv 28 %", "tv 18 %"},
		},
		{
			name: "ac amc",
			sku:  "AC AMC 1 Year",
			want: []string{"ac", "ac indoor"},
		},
		{
			name: "no rule matches",
			sku:  "Mobile Protection Plan",
			want: nil,
		},
		{
			name: "match is case sensitive",
			sku:  "haew : warranty : tv",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sku))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// The fan/mixer rule precedes the vacuum/fans rule; both keys are present.
	sku := "HAEW : Warranty : Vacuum Cleaner/Fans/Groom&HairCare/Massager/Iron | " +
		"Warranty : Fan/Mixr/IrnBox/Kettle/OTG/Grmr/Geysr/Steamr/Inductn"

	got := Classify(sku)

	assert.Contains(t, got, "mixer")
	assert.NotContains(t, got, "vacuum cleaner")
}

func TestClassify_Idempotent(t *testing.T) {
	sku := "HAEW : Warranty : HOB and Chimney"
	first := Classify(sku)
	second := Classify(sku)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"hob", "chimney"}, first)
}

func TestCategoryRules_ReturnsCopy(t *testing.T) {
	rules := CategoryRules()
	assert.Len(t, rules, 14)

	rules[0].Keywords[0] = "MUTATED"
	rules[0].Match = "changed"

	assert.Equal(t, "Warranty : Water Cooler/Dispencer/Geyser/RoomCooler/Heater", CategoryRules()[0].Match)
	assert.Equal(t, "cooler", Classify("Warranty : Water Cooler/Dispencer/Geyser/RoomCooler/Heater")[0])
}
