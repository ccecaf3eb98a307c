package services

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
)

// EstimateFailedMessage is shown when an estimate cannot be produced.
const EstimateFailedMessage = "Failed to analyze food. Please try again or enter manually."

// EstimateResult pairs the raw estimate with the draft it fills in.
type EstimateResult struct {
	Estimate models.Estimate  `json:"estimate"`
	Draft    models.MealDraft `json:"draft"`
}

// EstimationService guards the estimator with an in-flight flag. It never
// touches the log or the goals.
type EstimationService struct {
	estimator Estimator
	inFlight  atomic.Bool
}

func NewEstimationService(e Estimator) *EstimationService {
	return &EstimationService{estimator: e}
}

// Pending reports whether an estimate is running.
func (s *EstimationService) Pending() bool { return s.inFlight.Load() }

func (s *EstimationService) Estimate(ctx context.Context, description string) (EstimateResult, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return EstimateResult{}, apperrors.New(apperrors.CodeValidation, "description is required")
	}
	if s.estimator == nil {
		return EstimateResult{}, apperrors.New(apperrors.CodeEstimateFailed, EstimateFailedMessage)
	}
	if !s.acquire() {
		return EstimateResult{}, errEstimateBusy()
	}
	defer s.inFlight.Store(false)
	return s.run(ctx, description)
}

// EstimateWith resolves the description with describe while holding the
// guard, so a photo lookup and its estimate count as one estimate.
func (s *EstimationService) EstimateWith(ctx context.Context, describe func(context.Context) (string, error)) (EstimateResult, error) {
	if s.estimator == nil {
		return EstimateResult{}, apperrors.New(apperrors.CodeEstimateFailed, EstimateFailedMessage)
	}
	if !s.acquire() {
		return EstimateResult{}, errEstimateBusy()
	}
	defer s.inFlight.Store(false)

	description, err := describe(ctx)
	if err != nil {
		return EstimateResult{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return EstimateResult{}, apperrors.New(apperrors.CodeEstimateFailed, EstimateFailedMessage)
	}
	return s.run(ctx, description)
}

func (s *EstimationService) acquire() bool { return s.inFlight.CompareAndSwap(false, true) }

func errEstimateBusy() error {
	return apperrors.New(apperrors.CodeEstimateInProgress, "an estimate is already running")
}

func (s *EstimationService) run(ctx context.Context, description string) (EstimateResult, error) {
	e, err := s.estimator.Estimate(ctx, description)
	if err != nil {
		log.Printf("estimate %q failed: %v", description, err)
		return EstimateResult{}, apperrors.Wrap(apperrors.CodeEstimateFailed, EstimateFailedMessage, err)
	}
	return EstimateResult{Estimate: e, Draft: e.Draft()}, nil
}
