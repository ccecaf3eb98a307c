package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// SyncStatus summarizes local goals against the last synced snapshot.
type SyncStatus string

const (
	SyncNever     SyncStatus = "never_synced"
	SyncInSync    SyncStatus = "in_sync"
	SyncOutOfSync SyncStatus = "out_of_sync"
)

// GoalRemote is the remote store goals are pushed to.
type GoalRemote interface {
	PushGoals(ctx context.Context, goals models.NutritionalGoals) error
}

// ErrRemoteUnavailable is what SimulatedRemote fails with.
var ErrRemoteUnavailable = errors.New("remote goal store unavailable")

// SimulatedRemote stands in for a backend: it waits Delay and fails with
// probability FailureRate.
type SimulatedRemote struct {
	Delay       time.Duration
	FailureRate float64
}

func (r SimulatedRemote) PushGoals(ctx context.Context, _ models.NutritionalGoals) error {
	if r.Delay > 0 {
		t := time.NewTimer(r.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if r.FailureRate > 0 && rand.Float64() < r.FailureRate {
		return ErrRemoteUnavailable
	}
	return nil
}

// GoalSyncStatus is the read model served to the UI.
type GoalSyncStatus struct {
	Local        models.NutritionalGoals  `json:"local"`
	Backend      *models.NutritionalGoals `json:"backend"`
	LastSyncedAt *time.Time               `json:"lastSyncedAt"`
	LastSynced   string                   `json:"lastSynced,omitempty"`
	Status       SyncStatus               `json:"status"`
	OutOfSync    bool                     `json:"outOfSync"`
	Syncing      bool                     `json:"syncing"`
}

// GoalSyncService owns the local goals, the backend snapshot and the time
// of the last successful sync.
type GoalSyncService struct {
	mu           sync.RWMutex
	local        models.NutritionalGoals
	backend      *models.NutritionalGoals
	lastSyncedAt *time.Time
	syncing      bool

	remote GoalRemote
	repo   *StateRepository
	now    func() time.Time
}

// NewGoalSyncService seeds the reconciler from repo (defaults when nothing
// is stored). repo may be nil.
func NewGoalSyncService(ctx context.Context, repo *StateRepository, remote GoalRemote) *GoalSyncService {
	s := &GoalSyncService{
		local:  models.DefaultGoals,
		remote: remote,
		repo:   repo,
		now:    time.Now,
	}
	if repo != nil {
		s.local = repo.LoadGoals(ctx)
		s.backend = repo.LoadBackendGoals(ctx)
		s.lastSyncedAt = repo.LoadLastSynced(ctx)
	}
	return s
}

// LocalGoals returns the editable goals.
func (s *GoalSyncService) LocalGoals() models.NutritionalGoals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.local
}

// BackendGoals returns a copy of the last synced snapshot, nil if never synced.
func (s *GoalSyncService) BackendGoals() *models.NutritionalGoals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.backend == nil {
		return nil
	}
	g := *s.backend
	return &g
}

// LastSyncedAt returns the time of the last successful sync, nil if never.
func (s *GoalSyncService) LastSyncedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastSyncedAt == nil {
		return nil
	}
	t := *s.lastSyncedAt
	return &t
}

// UpdateLocalGoals replaces the local goals wholesale. Every field must be
// positive. The backend snapshot and timestamp are untouched.
func (s *GoalSyncService) UpdateLocalGoals(g models.NutritionalGoals) error {
	if err := utils.ValidateStruct(g); err != nil {
		return apperrors.Wrap(apperrors.CodeValidation, "invalid goals", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = g
	if s.repo != nil {
		s.repo.SaveGoals(g)
	}
	return nil
}

// Syncing reports whether a sync is pending.
func (s *GoalSyncService) Syncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncing
}

// Sync pushes a snapshot of the local goals. On success the snapshot
// becomes the backend goals and the sync time is recorded; on failure
// nothing changes. Only one sync may be in flight.
func (s *GoalSyncService) Sync(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return time.Time{}, apperrors.New(apperrors.CodeSyncInProgress, "sync already in progress")
	}
	s.syncing = true
	snapshot := s.local
	s.mu.Unlock()

	err := s.remote.PushGoals(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncing = false
	if err != nil {
		log.Printf("goal sync failed: %v", err)
		return time.Time{}, apperrors.Wrap(apperrors.CodeSyncFailed, "Sync failed. Check connection.", err)
	}

	at := s.now()
	backend := snapshot
	s.backend = &backend
	s.lastSyncedAt = &at
	if s.repo != nil {
		s.repo.SaveBackendGoals(backend)
		s.repo.SaveLastSynced(at)
	}
	return at, nil
}

// IsOutOfSync is true only when a snapshot exists and differs from local.
func (s *GoalSyncService) IsOutOfSync() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend != nil && s.local.Differs(*s.backend)
}

// Status distinguishes never synced from in sync.
func (s *GoalSyncService) Status() SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.backend == nil:
		return SyncNever
	case s.local.Differs(*s.backend):
		return SyncOutOfSync
	default:
		return SyncInSync
	}
}

// Snapshot returns the full read model in one consistent view.
func (s *GoalSyncService) Snapshot() GoalSyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := GoalSyncStatus{Local: s.local, Syncing: s.syncing, Status: SyncNever}
	if s.backend != nil {
		b := *s.backend
		out.Backend = &b
		out.Status = SyncInSync
		if s.local.Differs(b) {
			out.Status = SyncOutOfSync
			out.OutOfSync = true
		}
	}
	if s.lastSyncedAt != nil {
		t := *s.lastSyncedAt
		out.LastSyncedAt = &t
		out.LastSynced = t.In(time.Local).Format(LastSyncedLayout)
	}
	return out
}
