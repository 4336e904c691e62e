package waver

import (
	"strconv"

	"github.com/mesh-intelligence/quwatro/internal/field"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// usageCodec maps a WaterUsage to date,shower,laundry,dish,toilet,irrigation.
type usageCodec struct{}

func (usageCodec) Fields() int { return 1 + int(types.NumUsageCategories) }

func (usageCodec) Encode(u types.WaterUsage) []string {
	out := make([]string, 0, 1+len(u.Liters))
	out = append(out, u.Date)
	for _, l := range u.Liters {
		out = append(out, strconv.FormatFloat(l, 'f', -1, 64))
	}
	return out
}

func (usageCodec) Decode(fields []string) (types.WaterUsage, error) {
	var u types.WaterUsage
	date, err := field.Key("date", fields[0])
	if err != nil {
		return u, err
	}
	u.Date = date
	for i, c := range types.UsageCategories {
		v, err := field.NonNegativeFloat(c.String(), fields[i+1])
		if err != nil {
			return u, err
		}
		u.Liters[c] = v
	}
	return u, nil
}
