package services

import (
	"strings"

	"github.com/Jordo960/VibePulse/models"
)

// CatalogService serves the quick-add food catalog.
type CatalogService struct {
	categories []models.FoodCategory
}

func NewCatalogService() *CatalogService {
	return &CatalogService{categories: quickAddCatalog()}
}

// Categories returns the catalog grouped for display.
func (s *CatalogService) Categories() []models.FoodCategory {
	out := make([]models.FoodCategory, len(s.categories))
	for i, c := range s.categories {
		out[i] = models.FoodCategory{
			Category: c.Category,
			Items:    append([]models.NutrientItem(nil), c.Items...),
		}
	}
	return out
}

// Search returns items whose name contains query, case-insensitively.
func (s *CatalogService) Search(query string) []models.NutrientItem {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.NutrientItem
	for _, c := range s.categories {
		for _, it := range c.Items {
			if q == "" || strings.Contains(strings.ToLower(it.Name), q) {
				out = append(out, it)
			}
		}
	}
	return out
}

// ApplyItem fills a draft from a catalog item. Calories are left to the
// macro derivation.
func ApplyItem(it models.NutrientItem) models.MealDraft {
	emoji := it.Emoji
	if emoji == "" {
		emoji = "🍱"
	}
	return models.MealDraft{
		Name:    it.Name,
		Protein: it.Protein,
		Carbs:   it.Carbs,
		Fats:    it.Fats,
		Fibre:   it.Fibre,
		Emoji:   emoji,
	}
}

func quickAddCatalog() []models.FoodCategory {
	return []models.FoodCategory{
		{Category: "High Protein", Items: []models.NutrientItem{
			{Name: "Chicken Breast", Emoji: "🍗", Protein: 31, Carbs: 0, Fats: 4, Fibre: 0},
			{Name: "Salmon Fillet", Emoji: "🐟", Protein: 25, Carbs: 0, Fats: 15, Fibre: 0},
			{Name: "Greek Yogurt", Emoji: "🥣", Protein: 18, Carbs: 10, Fats: 0, Fibre: 0},
			{Name: "Hard Boiled Egg", Emoji: "🥚", Protein: 6, Carbs: 0.6, Fats: 5, Fibre: 0},
		}},
		{Category: "Healthy Carbs", Items: []models.NutrientItem{
			{Name: "Brown Rice", Emoji: "🍚", Protein: 3, Carbs: 25, Fats: 1, Fibre: 3.5},
			{Name: "Quinoa Bowl", Emoji: "🥗", Protein: 4, Carbs: 21, Fats: 2, Fibre: 2.8},
			{Name: "Sweet Potato", Emoji: "🍠", Protein: 2, Carbs: 20, Fats: 0, Fibre: 3.3},
			{Name: "Banana", Emoji: "🍌", Protein: 1, Carbs: 23, Fats: 0.3, Fibre: 2.6},
		}},
		{Category: "Healthy Fats", Items: []models.NutrientItem{
			{Name: "Half Avocado", Emoji: "🥑", Protein: 2, Carbs: 9, Fats: 15, Fibre: 7},
			{Name: "Handful Almonds", Emoji: "🥜", Protein: 6, Carbs: 6, Fats: 14, Fibre: 3.5},
			{Name: "Olive Oil (tbsp)", Emoji: "🫒", Protein: 0, Carbs: 0, Fats: 14, Fibre: 0},
			{Name: "Chia Seeds", Emoji: "🌱", Protein: 5, Carbs: 12, Fats: 9, Fibre: 10},
		}},
	}
}
