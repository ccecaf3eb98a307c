package services

import (
	"strings"
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// DefaultMealName is used when a draft is committed without a name.
const DefaultMealName = "Custom Entry"

// MealTimeLayout formats the display time stamped on committed meals.
const MealTimeLayout = "3:04 PM"

// LogStore owns the day's meals and the preset collection. Both are kept
// newest first. Reads return copies.
type LogStore struct {
	mu      sync.RWMutex
	meals   []models.Meal
	presets []models.MealPreset
	repo    *StateRepository
	now     func() time.Time
	newID   func() string
}

// NewLogStore seeds the store. repo may be nil, in which case nothing is
// persisted.
func NewLogStore(repo *StateRepository, meals []models.Meal, presets []models.MealPreset) *LogStore {
	return &LogStore{
		meals:   append([]models.Meal(nil), meals...),
		presets: append([]models.MealPreset(nil), presets...),
		repo:    repo,
		now:     time.Now,
		newID:   utils.NewID,
	}
}

// Meals returns a snapshot of the log, newest first.
func (s *LogStore) Meals() []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// Presets returns a snapshot of the presets, newest first.
func (s *LogStore) Presets() []models.MealPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MealPreset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Totals sums the current log.
func (s *LogStore) Totals() models.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DailyTotals(s.meals)
}

// AddMeal prepends meal, assigning a fresh id when it has none or collides.
// With savePreset a preset with its own id is derived from the meal and
// prepended too.
func (s *LogStore) AddMeal(meal models.Meal, savePreset bool) (models.Meal, *models.MealPreset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meal.ID == "" || s.mealIDTaken(meal.ID) {
		meal.ID = s.uniqueMealID()
	}
	s.meals = append([]models.Meal{meal}, s.meals...)
	s.persistMeals()

	if !savePreset {
		return meal, nil
	}
	p := models.MealPreset{
		ID:       s.uniquePresetID(),
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fats:     meal.Fats,
		Fibre:    meal.Fibre,
		Emoji:    meal.Emoji,
	}
	s.presets = append([]models.MealPreset{p}, s.presets...)
	s.persistPresets()
	return meal, &p
}

// CommitDraft turns a draft into a logged meal. An empty name defaults to
// DefaultMealName, calories follow the override or the rounded macro
// derivation, and an empty timeLabel is stamped with the current time. A
// draft with neither a name nor calories is rejected without mutating.
func (s *LogStore) CommitDraft(d models.MealDraft, mealType models.MealType, timeLabel string, savePreset bool) (models.Meal, *models.MealPreset, error) {
	if !mealType.Valid() {
		return models.Meal{}, nil, apperrors.New(apperrors.CodeValidation, "unknown meal type "+string(mealType))
	}
	if err := utils.ValidateStruct(d); err != nil {
		return models.Meal{}, nil, apperrors.Wrap(apperrors.CodeValidation, "invalid meal", err)
	}

	name := strings.TrimSpace(d.Name)
	kcal := int(DraftTotals(d).Calories)
	if name == "" && kcal == 0 {
		return models.Meal{}, nil, apperrors.New(apperrors.CodeEmptyDraft, "meal needs a name or calories")
	}
	if name == "" {
		name = DefaultMealName
	}
	if timeLabel == "" {
		timeLabel = s.now().Format(MealTimeLayout)
	}

	meal, preset := s.AddMeal(models.Meal{
		Name:     name,
		Calories: kcal,
		Protein:  d.Protein,
		Carbs:    d.Carbs,
		Fats:     d.Fats,
		Fibre:    d.Fibre,
		Time:     timeLabel,
		Type:     mealType,
		Emoji:    d.Emoji,
	}, savePreset)
	return meal, preset, nil
}

// DeleteMeal removes the meal with id. Absent ids are a no-op.
func (s *LogStore) DeleteMeal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.meals {
		if m.ID == id {
			s.meals = append(s.meals[:i:i], s.meals[i+1:]...)
			s.persistMeals()
			return
		}
	}
}

// AddPreset prepends preset, assigning a fresh id when needed.
func (s *LogStore) AddPreset(p models.MealPreset) models.MealPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" || s.presetIDTaken(p.ID) {
		p.ID = s.uniquePresetID()
	}
	s.presets = append([]models.MealPreset{p}, s.presets...)
	s.persistPresets()
	return p
}

// CreatePreset stores a draft as a preset. A name is required.
func (s *LogStore) CreatePreset(d models.MealDraft) (models.MealPreset, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.MealPreset{}, apperrors.New(apperrors.CodeValidation, "preset name is required")
	}
	if err := utils.ValidateStruct(d); err != nil {
		return models.MealPreset{}, apperrors.Wrap(apperrors.CodeValidation, "invalid preset", err)
	}
	return s.AddPreset(models.MealPreset{
		Name:     name,
		Calories: int(DraftTotals(d).Calories),
		Protein:  d.Protein,
		Carbs:    d.Carbs,
		Fats:     d.Fats,
		Fibre:    d.Fibre,
		Emoji:    d.Emoji,
	}), nil
}

// DeletePreset removes the preset with id. Absent ids are a no-op.
func (s *LogStore) DeletePreset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.presets {
		if p.ID == id {
			s.presets = append(s.presets[:i:i], s.presets[i+1:]...)
			s.persistPresets()
			return
		}
	}
}

// ApplyPreset copies a preset into a fresh draft. The store is untouched.
func (s *LogStore) ApplyPreset(p models.MealPreset) models.MealDraft {
	kcal := p.Calories
	return models.MealDraft{
		Name:     p.Name,
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fats:     p.Fats,
		Fibre:    p.Fibre,
		Emoji:    p.Emoji,
		Calories: &kcal,
	}
}

// ApplyPresetByID looks the preset up and applies it.
func (s *LogStore) ApplyPresetByID(id string) (models.MealDraft, error) {
	s.mu.RLock()
	var found *models.MealPreset
	for i := range s.presets {
		if s.presets[i].ID == id {
			p := s.presets[i]
			found = &p
			break
		}
	}
	s.mu.RUnlock()
	if found == nil {
		return models.MealDraft{}, apperrors.New(apperrors.CodeNotFound, "preset not found")
	}
	return s.ApplyPreset(*found), nil
}

func (s *LogStore) mealIDTaken(id string) bool {
	for _, m := range s.meals {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *LogStore) presetIDTaken(id string) bool {
	for _, p := range s.presets {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *LogStore) uniqueMealID() string {
	for {
		id := s.newID()
		if !s.mealIDTaken(id) {
			return id
		}
	}
}

func (s *LogStore) uniquePresetID() string {
	for {
		id := s.newID()
		if !s.presetIDTaken(id) {
			return id
		}
	}
}

// persist* run with mu held so writes reach storage in mutation order.
func (s *LogStore) persistMeals() {
	if s.repo != nil {
		s.repo.SaveMeals(s.meals)
	}
}

func (s *LogStore) persistPresets() {
	if s.repo != nil {
		s.repo.SavePresets(s.presets)
	}
}
