package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/storage"
)

// Persisted keys.
const (
	KeyTheme         = "vibe_pulse_theme"
	KeySession       = "vibe_pulse_session"
	KeyGoals         = "vibe_pulse_goals"
	KeyPresets       = "vibe_pulse_presets"
	KeyBackendGoals  = "vibe_pulse_backend_goals"
	KeyLastSynced    = "vibe_pulse_last_synced"
	KeyMeals         = "vibe_pulse_meals"
	KeyWeightHistory = "vibe_pulse_weight_history"
)

// LastSyncedLayout is how the last sync time is displayed and stored.
const LastSyncedLayout = "1/2/2006, 3:04:05 PM"

const persistTimeout = 5 * time.Second

// StateRepository loads and saves typed state over a storage.KV.
//
// Loads never fail: a missing value yields the default and a corrupt one
// is logged and replaced by the default. Saves are fire-and-forget and
// only log their errors.
type StateRepository struct {
	kv         storage.KV
	persistLog bool
}

// NewStateRepository wraps kv. Meals and weight history are only written
// when persistLog is set.
func NewStateRepository(kv storage.KV, persistLog bool) *StateRepository {
	return &StateRepository{kv: kv, persistLog: persistLog}
}

// PersistLog reports whether meals and weight history survive restarts.
func (r *StateRepository) PersistLog() bool { return r.persistLog }

func (r *StateRepository) raw(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("state: read %s: %v", key, err)
		}
		return nil, false
	}
	return b, true
}

func loadJSON[T any](ctx context.Context, r *StateRepository, key string, def T) (T, bool) {
	b, ok := r.raw(ctx, key)
	if !ok {
		return def, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		log.Printf("state: corrupt value under %s, using default: %v", key, err)
		return def, false
	}
	return v, true
}

func (r *StateRepository) put(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := r.kv.Set(ctx, key, value); err != nil {
		log.Printf("state: write %s: %v", key, err)
	}
}

func (r *StateRepository) saveJSON(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("state: encode %s: %v", key, err)
		return
	}
	r.put(key, b)
}

func (r *StateRepository) remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := r.kv.Delete(ctx, key); err != nil {
		log.Printf("state: delete %s: %v", key, err)
	}
}

// LoadTheme returns the stored theme or def.
func (r *StateRepository) LoadTheme(ctx context.Context, def models.Theme) models.Theme {
	b, ok := r.raw(ctx, KeyTheme)
	if !ok {
		return def
	}
	t := models.Theme(b)
	if !t.Valid() {
		// Accept a JSON-quoted value too.
		var s string
		if json.Unmarshal(b, &s) == nil && models.Theme(s).Valid() {
			return models.Theme(s)
		}
		log.Printf("state: unknown theme %q, using %s", b, def)
		return def
	}
	return t
}

func (r *StateRepository) SaveTheme(t models.Theme) { r.put(KeyTheme, []byte(t)) }

// LoadSession returns the signed-in user, or nil when logged out.
func (r *StateRepository) LoadSession(ctx context.Context) *models.User {
	u, ok := loadJSON[*models.User](ctx, r, KeySession, nil)
	if !ok {
		return nil
	}
	return u
}

func (r *StateRepository) SaveSession(u models.User) { r.saveJSON(KeySession, u) }
func (r *StateRepository) ClearSession()             { r.remove(KeySession) }

// LoadGoals returns the local goals, falling back to the defaults when
// absent, corrupt or not all positive.
func (r *StateRepository) LoadGoals(ctx context.Context) models.NutritionalGoals {
	g, ok := loadJSON(ctx, r, KeyGoals, models.DefaultGoals)
	if ok && !g.Positive() {
		log.Printf("state: stored goals are not all positive, using defaults")
		return models.DefaultGoals
	}
	return g
}

func (r *StateRepository) SaveGoals(g models.NutritionalGoals) { r.saveJSON(KeyGoals, g) }

// LoadBackendGoals returns the last synced snapshot, or nil if never synced.
// A snapshot that is not all positive is treated as never synced.
func (r *StateRepository) LoadBackendGoals(ctx context.Context) *models.NutritionalGoals {
	g, _ := loadJSON[*models.NutritionalGoals](ctx, r, KeyBackendGoals, nil)
	if g != nil && !g.Positive() {
		log.Printf("state: stored backend goals are not all positive, ignoring them")
		return nil
	}
	return g
}

func (r *StateRepository) SaveBackendGoals(g models.NutritionalGoals) {
	r.saveJSON(KeyBackendGoals, g)
}

// LoadLastSynced parses the stored display timestamp, or nil if never synced.
func (r *StateRepository) LoadLastSynced(ctx context.Context) *time.Time {
	b, ok := r.raw(ctx, KeyLastSynced)
	if !ok {
		return nil
	}
	t, err := time.ParseInLocation(LastSyncedLayout, string(b), time.Local)
	if err != nil {
		log.Printf("state: corrupt last synced %q: %v", b, err)
		return nil
	}
	return &t
}

func (r *StateRepository) SaveLastSynced(t time.Time) {
	r.put(KeyLastSynced, []byte(t.In(time.Local).Format(LastSyncedLayout)))
}

// LoadPresets returns the stored presets or the two seed presets.
func (r *StateRepository) LoadPresets(ctx context.Context) []models.MealPreset {
	p, _ := loadJSON(ctx, r, KeyPresets, DefaultPresets())
	if p == nil {
		p = []models.MealPreset{}
	}
	return p
}

func (r *StateRepository) SavePresets(p []models.MealPreset) { r.saveJSON(KeyPresets, p) }

// LoadMeals returns the persisted log, or the seed meals when the log is
// not persisted or nothing is stored yet.
func (r *StateRepository) LoadMeals(ctx context.Context) []models.Meal {
	if !r.persistLog {
		return seedMeals()
	}
	m, _ := loadJSON(ctx, r, KeyMeals, seedMeals())
	if m == nil {
		m = []models.Meal{}
	}
	return m
}

func (r *StateRepository) SaveMeals(m []models.Meal) {
	if r.persistLog {
		r.saveJSON(KeyMeals, m)
	}
}

// LoadWeightHistory mirrors LoadMeals for the weight series.
func (r *StateRepository) LoadWeightHistory(ctx context.Context) []models.WeightEntry {
	if !r.persistLog {
		return seedWeightHistory()
	}
	h, _ := loadJSON(ctx, r, KeyWeightHistory, seedWeightHistory())
	if h == nil {
		h = []models.WeightEntry{}
	}
	return h
}

func (r *StateRepository) SaveWeightHistory(h []models.WeightEntry) {
	if r.persistLog {
		r.saveJSON(KeyWeightHistory, h)
	}
}
