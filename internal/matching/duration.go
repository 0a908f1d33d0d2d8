package matching

import (
	"fmt"
	"regexp"
	"strconv"

	"osg-reconciler/internal/domain"
)

var (
	durPairPattern   = regexp.MustCompile(`Dur\s*:\s*(\d+)\+(\d+)`)
	sdpPattern       = regexp.MustCompile(`(\d+)\+(\d+)\s*SDP-(\d+)`)
	durSinglePattern = regexp.MustCompile(`Dur\s*:\s*(\d+)`)
	barePairPattern  = regexp.MustCompile(`(\d+)\+(\d+)`)
)

// ParseDuration extracts the manufacturer warranty and the extended duration
// from a retailer SKU. Patterns are tried in a fixed order and the first match
// wins; both values are empty when nothing matches.
//
// The SDP form "X+Y SDP-Z" keeps X as the manufacturer figure but reports the
// extended value as the label "{Z}P+{Y}W".
func ParseDuration(sku string) (manufacturer, extended domain.Coverage) {
	if m := durPairPattern.FindStringSubmatch(sku); m != nil {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX == nil && errY == nil {
			return domain.YearsCoverage(x), domain.YearsCoverage(y)
		}
	}

	if m := sdpPattern.FindStringSubmatch(sku); m != nil {
		if x, err := strconv.Atoi(m[1]); err == nil {
			return domain.YearsCoverage(x), domain.LabelCoverage(fmt.Sprintf("%sP+%sW", m[3], m[2]))
		}
	}

	if m := durSinglePattern.FindStringSubmatch(sku); m != nil {
		if x, err := strconv.Atoi(m[1]); err == nil {
			return domain.YearsCoverage(1), domain.YearsCoverage(x)
		}
	}

	if m := barePairPattern.FindStringSubmatch(sku); m != nil {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX == nil && errY == nil {
			return domain.YearsCoverage(x), domain.YearsCoverage(y)
		}
	}

	return domain.Coverage{}, domain.Coverage{}
}
