package models

// Totals is the sum of nutrients over a set of meals.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fibre    float64 `json:"fibre"`
}

// Add returns the element-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fats:     t.Fats + o.Fats,
		Fibre:    t.Fibre + o.Fibre,
	}
}

// NetCarbs is carbs minus fibre, floored at zero.
func (t Totals) NetCarbs() float64 {
	if t.Fibre >= t.Carbs {
		return 0
	}
	return t.Carbs - t.Fibre
}
