package services

import (
	"fmt"
	"math"

	"github.com/Jordo960/VibePulse/models"
)

// WarningSeverity categorizes how serious a finding is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding shown next to a draft before it is logged.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric,omitempty"`
	Value          float64         `json:"value,omitempty"`
	Limit          float64         `json:"limit,omitempty"`
	PercentOfLimit float64         `json:"percent_of_limit,omitempty"`
}

// OverGoalFlags marks which nutrients would exceed their goal once the
// draft is committed.
type OverGoalFlags struct {
	Calories bool `json:"calories"`
	Protein  bool `json:"protein"`
	Carbs    bool `json:"carbs"`
	Fats     bool `json:"fats"`
	Fibre    bool `json:"fibre"`
}

// Any reports whether at least one nutrient is over.
func (f OverGoalFlags) Any() bool {
	return f.Calories || f.Protein || f.Carbs || f.Fats || f.Fibre
}

// DraftPreview is everything the entry form shows while a draft is edited.
type DraftPreview struct {
	Pending         models.Totals `json:"pending"`
	After           models.Totals `json:"after"`
	DerivedCalories int           `json:"derivedCalories"`
	NetCarbs        float64       `json:"netCarbs"`
	NetCarbsAfter   float64       `json:"netCarbsAfter"`
	FibreRatio      float64       `json:"fibreRatio"`
	OverGoal        OverGoalFlags `json:"overGoal"`
	Warnings        []Warning     `json:"warnings"`
}

// calorieMismatchTolerance is how far an entered calorie value may drift
// from the macro derivation before it is flagged.
const calorieMismatchTolerance = 0.15

// PreviewDraft projects a draft on top of current totals. It never mutates
// anything.
func PreviewDraft(current models.Totals, goals models.NutritionalGoals, d models.MealDraft) DraftPreview {
	pending := DraftTotals(d)
	after := current.Add(pending)

	p := DraftPreview{
		Pending:         pending,
		After:           after,
		DerivedCalories: RoundCalories(d.Protein, d.Carbs, d.Fats),
		NetCarbs:        NetCarbs(pending.Carbs, pending.Fibre),
		NetCarbsAfter:   NetCarbs(after.Carbs, after.Fibre),
		FibreRatio:      FibreRatio(d.Carbs, d.Fibre),
		OverGoal: OverGoalFlags{
			Calories: OverGoal(current.Calories, pending.Calories, goals.Calories),
			Protein:  OverGoal(current.Protein, pending.Protein, goals.Protein),
			Carbs:    OverGoal(current.Carbs, pending.Carbs, goals.Carbs),
			Fats:     OverGoal(current.Fats, pending.Fats, goals.Fats),
			Fibre:    OverGoal(current.Fibre, pending.Fibre, goals.Fibre),
		},
		Warnings: []Warning{},
	}

	checks := []struct {
		metric string
		over   bool
		value  float64
		limit  float64
		unit   string
	}{
		{"calories", p.OverGoal.Calories, after.Calories, goals.Calories, "kcal"},
		{"protein", p.OverGoal.Protein, after.Protein, goals.Protein, "g"},
		{"carbs", p.OverGoal.Carbs, after.Carbs, goals.Carbs, "g"},
		{"fats", p.OverGoal.Fats, after.Fats, goals.Fats, "g"},
	}
	for _, c := range checks {
		if !c.over {
			continue
		}
		severity := Caution
		if c.metric == "calories" {
			severity = High
		}
		p.Warnings = append(p.Warnings, Warning{
			Code:           c.metric + "_over_goal",
			Severity:       severity,
			Message:        fmt.Sprintf("Logging this puts %s at %.0f%s, over the %.0f%s goal.", c.metric, c.value, c.unit, c.limit, c.unit),
			Metric:         c.metric,
			Value:          round2(c.value),
			Limit:          round2(c.limit),
			PercentOfLimit: percentOf(c.value, c.limit),
		})
	}

	if d.Calories != nil && p.DerivedCalories > 0 {
		entered := float64(*d.Calories)
		derived := float64(p.DerivedCalories)
		if math.Abs(entered-derived)/derived > calorieMismatchTolerance {
			p.Warnings = append(p.Warnings, Warning{
				Code:     "calories_mismatch",
				Severity: Info,
				Message:  fmt.Sprintf("Entered %d kcal but the macros add up to %d kcal.", *d.Calories, p.DerivedCalories),
				Metric:   "calories",
				Value:    entered,
				Limit:    derived,
			})
		}
	}

	if d.Carbs > 0 && d.Fibre > d.Carbs {
		p.Warnings = append(p.Warnings, Warning{
			Code:     "fibre_exceeds_carbs",
			Severity: Info,
			Message:  "Fibre is higher than total carbs; net carbs count as zero.",
			Metric:   "fibre",
			Value:    d.Fibre,
			Limit:    d.Carbs,
		})
	}
	return p
}

func percentOf(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return round2(v / limit * 100)
}
