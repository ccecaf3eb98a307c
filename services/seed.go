package services

import "github.com/Jordo960/VibePulse/models"

// MockUser is the identity every stub login starts from.
var MockUser = models.User{
	ID:         "user-123",
	Name:       "Alex Johnson",
	Email:      "alex.j@example.com",
	Avatar:     "https://picsum.photos/seed/alex/200",
	Level:      12,
	IsPro:      true,
	Weight:     85,
	WeightGoal: 78,
}

// DefaultPresets seeds the preset collection when nothing is persisted.
func DefaultPresets() []models.MealPreset {
	return []models.MealPreset{
		{ID: "p1", Name: "Bulletproof Coffee", Calories: 250, Protein: 1, Carbs: 0, Fats: 28, Fibre: 0, Emoji: "☕"},
		{ID: "p2", Name: "Overnight Oats", Calories: 350, Protein: 12, Carbs: 55, Fats: 8, Fibre: 10, Emoji: "🥣"},
	}
}

// seedMeals is the session log used when the log is not persisted.
func seedMeals() []models.Meal {
	return []models.Meal{
		{ID: "1", Name: "Healthy Bowl", Calories: 420, Protein: 25, Carbs: 45, Fats: 12, Fibre: 12, Time: "8:45 AM", Type: models.Breakfast, Emoji: "🥑"},
		{ID: "2", Name: "Protein Steak", Calories: 580, Protein: 55, Carbs: 10, Fats: 28, Fibre: 2, Time: "1:30 PM", Type: models.Lunch, Emoji: "🥩"},
		{ID: "3", Name: "Greek Yogurt", Calories: 200, Protein: 18, Carbs: 15, Fats: 4, Fibre: 0, Time: "4:00 PM", Type: models.Snack, Emoji: "🫐"},
	}
}

func seedWeightHistory() []models.WeightEntry {
	return []models.WeightEntry{
		{Date: "Jan", Weight: 92},
		{Date: "Feb", Weight: 89.5},
		{Date: "Mar", Weight: 88},
		{Date: "Apr", Weight: 87.2},
		{Date: "May", Weight: 86.1},
		{Date: "Jun", Weight: 85.0},
	}
}
