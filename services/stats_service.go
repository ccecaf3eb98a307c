package services

import (
	"math"

	"github.com/Jordo960/VibePulse/models"
)

// Metric is one nutrient against its goal. Percent is clamped for display;
// Ratio is not.
type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Ratio   float64 `json:"ratio"`
	Percent float64 `json:"percent"`
	Over    bool    `json:"over"`
}

// DailySummary is the dashboard read model.
type DailySummary struct {
	Metrics           map[string]Metric `json:"metrics"` // calories, protein_g, carbs_g, fats_g, fibre_g
	Totals            models.Totals     `json:"totals"`
	NetCarbs          float64           `json:"net_carbs"`
	RemainingCalories float64           `json:"remaining_calories"`
	MacroShare        MacroShare        `json:"macro_share"`
	MealCount         int               `json:"meal_count"`
}

// MacroShare is the percentage of macro-derived energy from each macro.
type MacroShare struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// MealTypeTotals aggregates the log per meal slot.
type MealTypeTotals struct {
	Type   models.MealType `json:"type"`
	Count  int             `json:"count"`
	Totals models.Totals   `json:"totals"`
}

type StatsService struct {
	log   *LogStore
	goals *GoalSyncService
}

func NewStatsService(log *LogStore, goals *GoalSyncService) *StatsService {
	return &StatsService{log: log, goals: goals}
}

// Daily recomputes the summary from the current log and local goals.
func (s *StatsService) Daily() DailySummary {
	return Summarize(s.log.Meals(), s.goals.LocalGoals())
}

// ByMealType recomputes per-slot totals from the current log.
func (s *StatsService) ByMealType() []MealTypeTotals {
	return TotalsByMealType(s.log.Meals())
}

// Summarize derives the dashboard from meals and goals.
func Summarize(meals []models.Meal, g models.NutritionalGoals) DailySummary {
	t := DailyTotals(meals)
	return DailySummary{
		Metrics: map[string]Metric{
			"calories":  metric(t.Calories, g.Calories),
			"protein_g": metric(t.Protein, g.Protein),
			"carbs_g":   metric(t.Carbs, g.Carbs),
			"fats_g":    metric(t.Fats, g.Fats),
			"fibre_g":   metric(t.Fibre, g.Fibre),
		},
		Totals:            t,
		NetCarbs:          t.NetCarbs(),
		RemainingCalories: math.Max(0, g.Calories-t.Calories),
		MacroShare:        CalorieShare(t),
		MealCount:         len(meals),
	}
}

func metric(actual, target float64) Metric {
	m := Metric{Actual: round2(actual), Target: round2(target)}
	if r, err := Progress(actual, target); err == nil {
		m.Ratio = round2(r)
		m.Percent = round2(ClampPercent(r))
		m.Over = actual > target
	}
	return m
}

// TotalsByMealType groups meals by slot in display order. Slots with no
// meals are included with zero totals.
func TotalsByMealType(meals []models.Meal) []MealTypeTotals {
	out := make([]MealTypeTotals, len(models.MealTypes))
	idx := make(map[models.MealType]int, len(models.MealTypes))
	for i, mt := range models.MealTypes {
		out[i].Type = mt
		idx[mt] = i
	}
	for _, m := range meals {
		i, ok := idx[m.Type]
		if !ok {
			continue
		}
		out[i].Count++
		out[i].Totals = out[i].Totals.Add(DailyTotals([]models.Meal{m}))
	}
	return out
}

// CalorieShare splits macro-derived energy between the three macros.
func CalorieShare(t models.Totals) MacroShare {
	total := CaloriesFromMacros(t.Protein, t.Carbs, t.Fats)
	if total == 0 {
		return MacroShare{}
	}
	return MacroShare{
		Protein: round2(t.Protein * KcalPerGramProtein / total * 100),
		Carbs:   round2(t.Carbs * KcalPerGramCarbs / total * 100),
		Fats:    round2(t.Fats * KcalPerGramFat / total * 100),
	}
}
