package services

import (
	"fmt"
	"sync"

	"github.com/Jordo960/VibePulse/apperrors"
)

const (
	WaterGlasses      = 8
	DefaultWaterCount = 3
)

// WaterService tracks glasses of water drunk today, 0..WaterGlasses.
type WaterService struct {
	mu    sync.Mutex
	count int
}

func NewWaterService(initial int) *WaterService {
	if initial < 0 || initial > WaterGlasses {
		initial = DefaultWaterCount
	}
	return &WaterService{count: initial}
}

func (s *WaterService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Set replaces the count.
func (s *WaterService) Set(n int) error {
	if n < 0 || n > WaterGlasses {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("water must be between 0 and %d glasses", WaterGlasses))
	}
	s.mu.Lock()
	s.count = n
	s.mu.Unlock()
	return nil
}

// Toggle handles a tap on glass i (zero-based). Tapping the last filled
// glass empties it; any other glass fills up to and including it.
func (s *WaterService) Toggle(i int) (int, error) {
	if i < 0 || i >= WaterGlasses {
		return 0, apperrors.New(apperrors.CodeValidation, fmt.Sprintf("glass must be between 0 and %d", WaterGlasses-1))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i+1 == s.count {
		s.count = i
	} else {
		s.count = i + 1
	}
	return s.count, nil
}
