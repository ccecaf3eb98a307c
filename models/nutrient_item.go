package models

import "math"

// NutrientItem is a quick-add catalog entry. All numeric fields are
// mandatory; a missing value is simply zero.
type NutrientItem struct {
	Name    string  `json:"name"`
	Emoji   string  `json:"emoji"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fibre   float64 `json:"fibre"`
}

// FoodCategory groups quick-add items for display.
type FoodCategory struct {
	Category string         `json:"category"`
	Items    []NutrientItem `json:"items"`
}

// Estimate is the structured nutrition answer of the AI estimator. Pointer
// fields let the decoder tell a missing field from a zero value.
type Estimate struct {
	Name     *string  `json:"name" validate:"required"`
	Calories *float64 `json:"calories" validate:"required,gte=0,lte=200000"`
	Protein  *float64 `json:"protein" validate:"required,gte=0,lte=10000"`
	Carbs    *float64 `json:"carbs" validate:"required,gte=0,lte=10000"`
	Fats     *float64 `json:"fats" validate:"required,gte=0,lte=10000"`
	Fibre    *float64 `json:"fibre" validate:"required,gte=0,lte=10000"`
	Emoji    *string  `json:"emoji" validate:"required"`
}

// Draft projects a validated estimate into an unsaved meal.
func (e Estimate) Draft() MealDraft {
	d := MealDraft{}
	if e.Name != nil {
		d.Name = *e.Name
	}
	if e.Emoji != nil {
		d.Emoji = *e.Emoji
	}
	if e.Protein != nil {
		d.Protein = *e.Protein
	}
	if e.Carbs != nil {
		d.Carbs = *e.Carbs
	}
	if e.Fats != nil {
		d.Fats = *e.Fats
	}
	if e.Fibre != nil {
		d.Fibre = *e.Fibre
	}
	if e.Calories != nil {
		kcal := int(math.Round(*e.Calories))
		d.Calories = &kcal
	}
	return d
}
