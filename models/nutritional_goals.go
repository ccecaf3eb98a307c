package models

// NutritionalGoals holds the day's per-nutrient targets.
type NutritionalGoals struct {
	Calories float64 `json:"calories" validate:"gt=0"` // e.g. 2000 kcal
	Protein  float64 `json:"protein" validate:"gt=0"`  // e.g. 140 g
	Carbs    float64 `json:"carbs" validate:"gt=0"`    // e.g. 250 g
	Fats     float64 `json:"fats" validate:"gt=0"`     // e.g. 65 g
	Fibre    float64 `json:"fibre" validate:"gt=0"`    // e.g. 30 g
}

// DefaultGoals is the baseline used when nothing is persisted.
var DefaultGoals = NutritionalGoals{
	Calories: 2000,
	Protein:  140,
	Carbs:    250,
	Fats:     65,
	Fibre:    30,
}

// Differs reports whether any of the five targets differ.
func (g NutritionalGoals) Differs(o NutritionalGoals) bool {
	return g.Calories != o.Calories ||
		g.Protein != o.Protein ||
		g.Carbs != o.Carbs ||
		g.Fats != o.Fats ||
		g.Fibre != o.Fibre
}

// Positive reports whether every target is above zero.
func (g NutritionalGoals) Positive() bool {
	return g.Calories > 0 && g.Protein > 0 && g.Carbs > 0 && g.Fats > 0 && g.Fibre > 0
}
