package models

// MealType is the slot of the day a meal was logged against.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// MealTypes lists the meal slots in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// Valid reports whether t is one of the known meal slots.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// One consumed food entry. Meals are never edited in place.
type Meal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories int      `json:"calories" validate:"gte=0,lte=200000"` // kcal
	Protein  float64  `json:"protein" validate:"gte=0,lte=10000"`   // g
	Carbs    float64  `json:"carbs" validate:"gte=0,lte=10000"`     // g
	Fats     float64  `json:"fats" validate:"gte=0,lte=10000"`      // g
	Fibre    float64  `json:"fibre" validate:"gte=0,lte=10000"`     // g
	Time     string   `json:"time"`                                 // display only, e.g. "8:45 AM"
	Type     MealType `json:"type"`
	Emoji    string   `json:"emoji"`
}

// A reusable macro template. Immutable once created.
type MealPreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories" validate:"gte=0,lte=200000"`
	Protein  float64 `json:"protein" validate:"gte=0,lte=10000"`
	Carbs    float64 `json:"carbs" validate:"gte=0,lte=10000"`
	Fats     float64 `json:"fats" validate:"gte=0,lte=10000"`
	Fibre    float64 `json:"fibre" validate:"gte=0,lte=10000"`
	Emoji    string  `json:"emoji"`
}

// MealDraft is an unsaved meal being composed before commit. Calories is an
// optional manual override; when nil the macro derivation is used.
type MealDraft struct {
	Name     string  `json:"name"`
	Protein  float64 `json:"protein" validate:"gte=0,lte=10000"`
	Carbs    float64 `json:"carbs" validate:"gte=0,lte=10000"`
	Fats     float64 `json:"fats" validate:"gte=0,lte=10000"`
	Fibre    float64 `json:"fibre" validate:"gte=0,lte=10000"`
	Emoji    string  `json:"emoji"`
	Calories *int    `json:"calories,omitempty" validate:"omitempty,gte=0,lte=200000"`
}
