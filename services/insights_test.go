package services

import (
	"testing"

	"github.com/Jordo960/VibePulse/models"
)

func hasWarning(ws []Warning, code string) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestPreviewDraftProjectsTotals(t *testing.T) {
	current := DailyTotals(seedMeals())
	p := PreviewDraft(current, models.DefaultGoals, models.MealDraft{Name: "Bowl", Protein: 25, Carbs: 45, Fats: 12, Fibre: 12})

	if p.DerivedCalories != 388 || p.Pending.Calories != 388 {
		t.Fatalf("expected 388 kcal pending, got %+v", p.Pending)
	}
	if p.After.Calories != 1588 {
		t.Fatalf("expected 1588 kcal after, got %v", p.After.Calories)
	}
	if p.NetCarbs != 33 || p.NetCarbsAfter != 89 {
		t.Fatalf("expected net carbs 33/89, got %v/%v", p.NetCarbs, p.NetCarbsAfter)
	}
	if p.FibreRatio != 27 {
		t.Fatalf("expected fibre ratio 27, got %v", p.FibreRatio)
	}
	if p.OverGoal.Any() || len(p.Warnings) != 0 {
		t.Fatalf("expected nothing over goal, got %+v", p.Warnings)
	}
}

func TestPreviewDraftFlagsOverGoal(t *testing.T) {
	current := models.Totals{Calories: 1900, Protein: 100, Carbs: 100, Fats: 60, Fibre: 10}
	p := PreviewDraft(current, models.DefaultGoals, models.MealDraft{Name: "Pizza", Protein: 20, Carbs: 60, Fats: 20})

	if !p.OverGoal.Calories || !p.OverGoal.Fats {
		t.Fatalf("expected calories and fats over, got %+v", p.OverGoal)
	}
	if p.OverGoal.Protein || p.OverGoal.Carbs {
		t.Fatalf("expected protein and carbs within goal, got %+v", p.OverGoal)
	}
	if !hasWarning(p.Warnings, "calories_over_goal") || !hasWarning(p.Warnings, "fats_over_goal") {
		t.Fatalf("expected over-goal warnings, got %+v", p.Warnings)
	}
}

func TestPreviewDraftFlagsCalorieMismatch(t *testing.T) {
	kcal := 900
	p := PreviewDraft(models.Totals{}, models.DefaultGoals, models.MealDraft{Name: "Bowl", Protein: 25, Carbs: 45, Fats: 12, Calories: &kcal})
	if p.Pending.Calories != 900 {
		t.Fatalf("expected override to win, got %v", p.Pending.Calories)
	}
	if !hasWarning(p.Warnings, "calories_mismatch") {
		t.Fatalf("expected mismatch warning, got %+v", p.Warnings)
	}

	near := 400
	p = PreviewDraft(models.Totals{}, models.DefaultGoals, models.MealDraft{Name: "Bowl", Protein: 25, Carbs: 45, Fats: 12, Calories: &near})
	if hasWarning(p.Warnings, "calories_mismatch") {
		t.Fatal("expected a small difference not to be flagged")
	}
}

func TestPreviewDraftFibreAboveCarbs(t *testing.T) {
	p := PreviewDraft(models.Totals{}, models.DefaultGoals, models.MealDraft{Name: "Husk", Carbs: 10, Fibre: 15})
	if p.NetCarbs != 0 {
		t.Fatalf("expected floored net carbs, got %v", p.NetCarbs)
	}
	if !hasWarning(p.Warnings, "fibre_exceeds_carbs") {
		t.Fatalf("expected fibre warning, got %+v", p.Warnings)
	}
}
