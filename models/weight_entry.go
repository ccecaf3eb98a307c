package models

// WeightEntry is one body-weight sample. Date is a coarse label (month
// abbreviation) and is not unique.
type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight" validate:"gt=0"` // kg
}
