package matching

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var slabPattern = regexp.MustCompile(`Slab\s*:\s*(\d+)K-(\d+)K`)

var thousand = decimal.NewFromInt(1000)

// Slab is the price bracket a warranty plan was sold for.
type Slab struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// ParseSlab reads "Slab : AK-BK" from text. ok is false when the pattern is absent.
func ParseSlab(text string) (slab Slab, ok bool) {
	m := slabPattern.FindStringSubmatch(text)
	if m == nil {
		return Slab{}, false
	}
	lo, err := decimal.NewFromString(m[1])
	if err != nil {
		return Slab{}, false
	}
	hi, err := decimal.NewFromString(m[2])
	if err != nil {
		return Slab{}, false
	}
	return Slab{Min: lo.Mul(thousand), Max: hi.Mul(thousand)}, true
}

// Contains reports whether rate lies within the slab, both ends inclusive.
// A missing rate is never inside a slab.
func (s Slab) Contains(rate decimal.NullDecimal) bool {
	if !rate.Valid {
		return false
	}
	return rate.Decimal.GreaterThanOrEqual(s.Min) && rate.Decimal.LessThanOrEqual(s.Max)
}
