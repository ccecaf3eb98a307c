package services

import (
	"math"
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// WeightSummary is the read model of the weight screen.
type WeightSummary struct {
	History     []models.WeightEntry `json:"history"`
	Current     float64              `json:"current"`
	Baseline    float64              `json:"baseline"`
	TotalChange float64              `json:"totalChange"`
	Goal        float64              `json:"goal"`
	ToGoal      float64              `json:"toGoal"`
}

// WeightService keeps the append-only body-weight series. The last entry
// is the current weight and the first is the baseline.
type WeightService struct {
	mu      sync.RWMutex
	history []models.WeightEntry
	repo    *StateRepository
	now     func() time.Time
}

func NewWeightService(repo *StateRepository, history []models.WeightEntry) *WeightService {
	return &WeightService{
		history: append([]models.WeightEntry(nil), history...),
		repo:    repo,
		now:     time.Now,
	}
}

// Add appends a sample labelled with the current month abbreviation.
func (s *WeightService) Add(weight float64) (models.WeightEntry, error) {
	e := models.WeightEntry{Date: s.now().Format("Jan"), Weight: weight}
	if err := utils.ValidateStruct(e); err != nil {
		return models.WeightEntry{}, apperrors.Wrap(apperrors.CodeValidation, "invalid weight", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
	if s.repo != nil {
		s.repo.SaveWeightHistory(s.history)
	}
	return e, nil
}

// History returns a copy of the series, oldest first.
func (s *WeightService) History() []models.WeightEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WeightEntry(nil), s.history...)
}

// Current is the latest weight, zero when the series is empty.
func (s *WeightService) Current() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return 0
	}
	return s.history[len(s.history)-1].Weight
}

// Baseline is the first weight, zero when the series is empty.
func (s *WeightService) Baseline() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return 0
	}
	return s.history[0].Weight
}

// TotalChange is current minus baseline; negative means weight lost.
func (s *WeightService) TotalChange() float64 {
	return round2(s.Current() - s.Baseline())
}

// ToGoal is the absolute distance from the current weight to goal.
func (s *WeightService) ToGoal(goal float64) float64 {
	return round2(math.Abs(s.Current() - goal))
}

// Summary bundles the series with its derived figures.
func (s *WeightService) Summary(goal float64) WeightSummary {
	return WeightSummary{
		History:     s.History(),
		Current:     s.Current(),
		Baseline:    s.Baseline(),
		TotalChange: s.TotalChange(),
		Goal:        goal,
		ToGoal:      s.ToGoal(goal),
	}
}
