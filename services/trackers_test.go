package services

import (
	"testing"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
)

func TestWeightServiceSummary(t *testing.T) {
	s := NewWeightService(nil, seedWeightHistory())
	if s.Current() != 85 || s.Baseline() != 92 {
		t.Fatalf("expected 85/92, got %v/%v", s.Current(), s.Baseline())
	}
	if s.TotalChange() != -7 {
		t.Fatalf("expected -7, got %v", s.TotalChange())
	}
	if s.ToGoal(78) != 7 {
		t.Fatalf("expected 7 to go, got %v", s.ToGoal(78))
	}
}

func TestWeightServiceAdd(t *testing.T) {
	s := NewWeightService(nil, seedWeightHistory())
	s.now = func() time.Time { return time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC) }
	e, err := s.Add(84.5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Date != "Jul" {
		t.Fatalf("expected Jul, got %q", e.Date)
	}
	if s.Current() != 84.5 || s.Baseline() != 92 {
		t.Fatalf("expected appended entry to be current, got %v", s.Current())
	}
	if _, err := s.Add(0); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("expected VALIDATION for zero weight, got %v", err)
	}
}

func TestWeightServiceEmpty(t *testing.T) {
	s := NewWeightService(nil, nil)
	if s.Current() != 0 || s.TotalChange() != 0 {
		t.Fatal("expected zeros for an empty series")
	}
}

func TestWaterToggle(t *testing.T) {
	s := NewWaterService(DefaultWaterCount)
	if n, _ := s.Toggle(2); n != 2 {
		t.Fatalf("expected tapping the last full glass to empty it, got %d", n)
	}
	if n, _ := s.Toggle(5); n != 6 {
		t.Fatalf("expected fill up to glass 6, got %d", n)
	}
	if n, _ := s.Toggle(0); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	if n, _ := s.Toggle(0); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	if _, err := s.Toggle(WaterGlasses); err == nil {
		t.Fatal("expected error for glass out of range")
	}
	if err := s.Set(9); err == nil {
		t.Fatal("expected error above 8 glasses")
	}
}

func TestCatalog(t *testing.T) {
	c := NewCatalogService()
	cats := c.Categories()
	if len(cats) != 3 || cats[0].Category != "High Protein" || len(cats[2].Items) != 4 {
		t.Fatalf("unexpected catalog %+v", cats)
	}
	if got := c.Search("avocado"); len(got) != 1 || got[0].Name != "Half Avocado" {
		t.Fatalf("expected avocado, got %+v", got)
	}
	d := ApplyItem(models.NutrientItem{Name: "Hard Boiled Egg", Protein: 6, Carbs: 0.6, Fats: 5})
	if d.Emoji != "🍱" || d.Calories != nil {
		t.Fatalf("expected default emoji and derived calories, got %+v", d)
	}
	if DraftTotals(d).Calories != 71 {
		t.Fatalf("expected 71 kcal, got %v", DraftTotals(d).Calories)
	}
}

func TestStatsSummary(t *testing.T) {
	s := Summarize(seedMeals(), models.DefaultGoals)
	if s.MealCount != 3 || s.Totals.Calories != 1200 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.RemainingCalories != 800 || s.NetCarbs != 56 {
		t.Fatalf("expected 800 kcal left and 56g net carbs, got %v/%v", s.RemainingCalories, s.NetCarbs)
	}
	if m := s.Metrics["calories"]; m.Percent != 60 || m.Over {
		t.Fatalf("expected 60%% calories, got %+v", m)
	}

	over := Summarize([]models.Meal{{Calories: 3000}}, models.DefaultGoals)
	if m := over.Metrics["calories"]; m.Percent != 100 || m.Ratio != 1.5 || !m.Over {
		t.Fatalf("expected clamped 100%% and ratio 1.5, got %+v", m)
	}
}

func TestTotalsByMealType(t *testing.T) {
	got := TotalsByMealType(seedMeals())
	if len(got) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(got))
	}
	if got[0].Type != models.Breakfast || got[0].Totals.Calories != 420 {
		t.Fatalf("unexpected breakfast %+v", got[0])
	}
	if got[2].Type != models.Dinner || got[2].Count != 0 {
		t.Fatalf("expected empty dinner, got %+v", got[2])
	}
}

func TestCalorieShare(t *testing.T) {
	s := CalorieShare(models.Totals{Protein: 25, Carbs: 25, Fats: 0})
	if s.Protein != 50 || s.Carbs != 50 || s.Fats != 0 {
		t.Fatalf("expected 50/50/0, got %+v", s)
	}
	if CalorieShare(models.Totals{}) != (MacroShare{}) {
		t.Fatal("expected zero share for empty totals")
	}
}
