package services

import (
	"math"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
)

// Energy per gram of each macro.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// ErrZeroGoal is returned when a progress ratio is asked against a
// non-positive goal.
var ErrZeroGoal = apperrors.New(apperrors.CodeDivideByZero, "goal must be greater than zero")

// DailyTotals sums every meal in the log. All meals count as today.
func DailyTotals(meals []models.Meal) models.Totals {
	var t models.Totals
	for _, m := range meals {
		t.Calories += float64(m.Calories)
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
		t.Fibre += m.Fibre
	}
	return t
}

// NetCarbs is carbs minus fibre, floored at zero.
func NetCarbs(carbs, fibre float64) float64 {
	return math.Max(0, carbs-fibre)
}

// CaloriesFromMacros derives energy from macro grams, unrounded.
func CaloriesFromMacros(protein, carbs, fats float64) float64 {
	return protein*KcalPerGramProtein + carbs*KcalPerGramCarbs + fats*KcalPerGramFat
}

// RoundCalories derives energy from macro grams rounded to the nearest kcal.
func RoundCalories(protein, carbs, fats float64) int {
	return int(math.Round(CaloriesFromMacros(protein, carbs, fats)))
}

// Progress is current/goal, unclamped. Callers must not pass a zero goal.
func Progress(current, goal float64) (float64, error) {
	if goal <= 0 {
		return 0, ErrZeroGoal
	}
	return current / goal, nil
}

// OverGoal reports whether adding pending to current exceeds goal.
func OverGoal(current, pending, goal float64) bool {
	return current+pending > goal
}

// ClampPercent turns a ratio into a 0..100 display percentage.
func ClampPercent(ratio float64) float64 {
	return math.Min(math.Max(ratio*100, 0), 100)
}

// ProgressReport holds the unitless progress ratio per nutrient.
type ProgressReport struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fibre    float64 `json:"fibre"`
}

// GoalProgress computes every ratio at once; it fails on the first
// non-positive goal.
func GoalProgress(t models.Totals, g models.NutritionalGoals) (ProgressReport, error) {
	var r ProgressReport
	pairs := []struct {
		dst           *float64
		current, goal float64
	}{
		{&r.Calories, t.Calories, g.Calories},
		{&r.Protein, t.Protein, g.Protein},
		{&r.Carbs, t.Carbs, g.Carbs},
		{&r.Fats, t.Fats, g.Fats},
		{&r.Fibre, t.Fibre, g.Fibre},
	}
	for _, p := range pairs {
		v, err := Progress(p.current, p.goal)
		if err != nil {
			return ProgressReport{}, err
		}
		*p.dst = v
	}
	return r, nil
}

// DraftTotals is the nutrient contribution of an unsaved meal. Calories
// follow the override when present.
func DraftTotals(d models.MealDraft) models.Totals {
	kcal := float64(RoundCalories(d.Protein, d.Carbs, d.Fats))
	if d.Calories != nil {
		kcal = float64(*d.Calories)
	}
	return models.Totals{
		Calories: kcal,
		Protein:  d.Protein,
		Carbs:    d.Carbs,
		Fats:     d.Fats,
		Fibre:    d.Fibre,
	}
}

// FibreRatio is fibre as a whole percentage of carbs; zero carbs count as 1g.
func FibreRatio(carbs, fibre float64) float64 {
	if carbs == 0 {
		carbs = 1
	}
	return math.Round(fibre / carbs * 100)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
