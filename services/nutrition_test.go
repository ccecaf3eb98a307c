package services

import (
	"errors"
	"testing"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
)

func TestNetCarbsFloor(t *testing.T) {
	tests := []struct {
		carbs, fibre, want float64
	}{
		{10, 15, 0},
		{45, 12, 33},
		{0, 0, 0},
		{20, 20, 0},
	}
	for _, tt := range tests {
		if got := NetCarbs(tt.carbs, tt.fibre); got != tt.want {
			t.Fatalf("NetCarbs(%v, %v): expected %v, got %v", tt.carbs, tt.fibre, tt.want, got)
		}
	}
}

func TestCalorieDerivation(t *testing.T) {
	if got := CaloriesFromMacros(25, 45, 12); got != 388 {
		t.Fatalf("expected 388 kcal, got %v", got)
	}
	if got := RoundCalories(25, 45, 12); got != 388 {
		t.Fatalf("expected 388 kcal, got %d", got)
	}
	// 6*4 + 0.6*4 + 5*9 = 71.4
	if got := RoundCalories(6, 0.6, 5); got != 71 {
		t.Fatalf("expected 71 kcal, got %d", got)
	}
	// 1*4 + 23*4 + 0.3*9 = 98.7
	if got := RoundCalories(1, 23, 0.3); got != 99 {
		t.Fatalf("expected 99 kcal, got %d", got)
	}
}

func TestDailyTotals(t *testing.T) {
	meals := seedMeals()
	got := DailyTotals(meals)
	want := models.Totals{Calories: 1200, Protein: 98, Carbs: 70, Fats: 44, Fibre: 14}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if again := DailyTotals(meals); again != got {
		t.Fatalf("expected identical results on repeated calls, got %+v then %+v", got, again)
	}
	if empty := DailyTotals(nil); empty != (models.Totals{}) {
		t.Fatalf("expected zero totals for an empty log, got %+v", empty)
	}
}

func TestProgressRejectsZeroGoal(t *testing.T) {
	if _, err := Progress(10, 0); !errors.Is(err, ErrZeroGoal) {
		t.Fatalf("expected ErrZeroGoal, got %v", err)
	}
	if apperrors.CodeOf(ErrZeroGoal) != apperrors.CodeDivideByZero {
		t.Fatalf("expected divide-by-zero code")
	}
	got, err := Progress(2500, 2000)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if got != 1.25 {
		t.Fatalf("expected unclamped ratio 1.25, got %v", got)
	}
}

func TestGoalProgress(t *testing.T) {
	totals := models.Totals{Calories: 1000, Protein: 70, Carbs: 125, Fats: 13, Fibre: 15}
	r, err := GoalProgress(totals, models.DefaultGoals)
	if err != nil {
		t.Fatalf("goal progress: %v", err)
	}
	if r.Calories != 0.5 || r.Protein != 0.5 || r.Carbs != 0.5 || r.Fats != 0.2 || r.Fibre != 0.5 {
		t.Fatalf("unexpected report %+v", r)
	}

	goals := models.DefaultGoals
	goals.Fibre = 0
	if _, err := GoalProgress(totals, goals); !errors.Is(err, ErrZeroGoal) {
		t.Fatalf("expected ErrZeroGoal, got %v", err)
	}
}

func TestOverGoal(t *testing.T) {
	if OverGoal(1800, 200, 2000) {
		t.Fatal("expected exactly reaching the goal not to be over")
	}
	if !OverGoal(1800, 201, 2000) {
		t.Fatal("expected exceeding the goal to be over")
	}
}

func TestClampPercent(t *testing.T) {
	if got := ClampPercent(1.5); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := ClampPercent(0.5); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := ClampPercent(-1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDraftTotalsOverride(t *testing.T) {
	d := models.MealDraft{Protein: 25, Carbs: 45, Fats: 12}
	if got := DraftTotals(d).Calories; got != 388 {
		t.Fatalf("expected derived 388, got %v", got)
	}
	kcal := 420
	d.Calories = &kcal
	if got := DraftTotals(d).Calories; got != 420 {
		t.Fatalf("expected override 420, got %v", got)
	}
}

func TestFibreRatio(t *testing.T) {
	if got := FibreRatio(45, 12); got != 27 {
		t.Fatalf("expected 27, got %v", got)
	}
	if got := FibreRatio(0, 3); got != 300 {
		t.Fatalf("expected zero carbs to count as 1g, got %v", got)
	}
}
