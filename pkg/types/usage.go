package types

// UsageCategory indexes the liters recorded for one household activity.
type UsageCategory int

// Usage categories, in log column order.
const (
	Shower UsageCategory = iota
	Laundry
	Dishwashing
	Toilet
	Irrigation

	// NumUsageCategories is the number of usage categories.
	NumUsageCategories
)

// UsageCategories lists every category in log column order.
var UsageCategories = []UsageCategory{Shower, Laundry, Dishwashing, Toilet, Irrigation}

var usageCategoryNames = [NumUsageCategories]string{
	Shower:      "Shower",
	Laundry:     "Laundry",
	Dishwashing: "Dishwashing",
	Toilet:      "Toilet",
	Irrigation:  "Irrigation",
}

func (c UsageCategory) String() string {
	if c < 0 || c >= NumUsageCategories {
		return "Unknown"
	}
	return usageCategoryNames[c]
}

// WaterUsage is one logged day of household water use. Date is the record
// key; Liters holds one value per UsageCategory.
type WaterUsage struct {
	Date   string                      `json:"date"`
	Liters [NumUsageCategories]float64 `json:"liters"`
}

// Total returns the liters used across all categories.
func (u WaterUsage) Total() float64 {
	var total float64
	for _, l := range u.Liters {
		total += l
	}
	return total
}
