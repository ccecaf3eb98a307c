package services

import (
	"context"
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// Options tunes the application container.
type Options struct {
	JWTSecret    []byte
	AuthDelay    time.Duration
	ToastTTL     time.Duration
	DefaultTheme models.Theme
	Remote       GoalRemote
	Estimator    Estimator
	Labels       LabelDetector
}

// App is the explicit application state: every service the UI talks to,
// built once at startup from persisted state or defaults.
type App struct {
	Repo       *StateRepository
	Log        *LogStore
	Goals      *GoalSyncService
	Stats      *StatsService
	Weight     *WeightService
	Water      *WaterService
	Catalog    *CatalogService
	Session    *SessionService
	Estimation *EstimationService
	Photos     *PhotoService
	Notifier   *Notifier
	Hub        *RealtimeHub

	mu    sync.RWMutex
	theme models.Theme
}

// NewApp loads persisted state through repo and wires the services.
func NewApp(ctx context.Context, repo *StateRepository, opts Options) *App {
	if !opts.DefaultTheme.Valid() {
		opts.DefaultTheme = models.ThemeDark
	}
	if opts.Remote == nil {
		opts.Remote = SimulatedRemote{Delay: 1500 * time.Millisecond}
	}

	hub := NewRealtimeHub()
	logStore := NewLogStore(repo, repo.LoadMeals(ctx), repo.LoadPresets(ctx))
	goals := NewGoalSyncService(ctx, repo, opts.Remote)
	return &App{
		Repo:       repo,
		Log:        logStore,
		Goals:      goals,
		Stats:      NewStatsService(logStore, goals),
		Weight:     NewWeightService(repo, repo.LoadWeightHistory(ctx)),
		Water:      NewWaterService(DefaultWaterCount),
		Catalog:    NewCatalogService(),
		Session:    NewSessionService(ctx, repo, opts.JWTSecret, opts.AuthDelay),
		Estimation: NewEstimationService(opts.Estimator),
		Photos:     NewPhotoService(opts.Labels),
		Notifier:   NewNotifier(opts.ToastTTL, hub),
		Hub:        hub,
		theme:      repo.LoadTheme(ctx, opts.DefaultTheme),
	}
}

func (a *App) Theme() models.Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

func (a *App) SetTheme(t models.Theme) error {
	if !t.Valid() {
		return apperrors.New(apperrors.CodeValidation, "theme must be light or dark")
	}
	a.mu.Lock()
	a.theme = t
	a.Repo.SaveTheme(t)
	a.mu.Unlock()
	a.Hub.Broadcast("theme.changed", t)
	return nil
}

func (a *App) ToggleTheme() models.Theme {
	a.mu.Lock()
	if a.theme == models.ThemeLight {
		a.theme = models.ThemeDark
	} else {
		a.theme = models.ThemeLight
	}
	t := a.theme
	a.Repo.SaveTheme(t)
	a.mu.Unlock()
	a.Hub.Broadcast("theme.changed", t)
	return t
}

// LoginEmail signs in and greets the user.
func (a *App) LoginEmail(ctx context.Context, email, name string, signup bool) (Session, error) {
	s, err := a.Session.LoginEmail(ctx, email, name, signup)
	if err != nil {
		return Session{}, err
	}
	a.Notifier.Success("Welcome back, %s!", s.User.Name)
	return s, nil
}

func (a *App) LoginSocial(ctx context.Context, provider string) (Session, error) {
	s, err := a.Session.LoginSocial(ctx, provider)
	if err != nil {
		return Session{}, err
	}
	a.Notifier.Success("Welcome back, %s!", s.User.Name)
	return s, nil
}

// Logout clears only the session. Theme, goals and presets are kept.
func (a *App) Logout() {
	a.Session.Logout()
	a.Notifier.Info("Logged out successfully")
}

// CommitMeal logs a draft and announces it.
func (a *App) CommitMeal(d models.MealDraft, mealType models.MealType, timeLabel string, savePreset bool) (models.Meal, *models.MealPreset, error) {
	m, p, err := a.Log.CommitDraft(d, mealType, timeLabel, savePreset)
	if err != nil {
		return models.Meal{}, nil, err
	}
	a.Notifier.Success("%s added to your log!", m.Name)
	a.Hub.Broadcast("meals.changed", a.Log.Meals())
	if p != nil {
		a.Hub.Broadcast("presets.changed", a.Log.Presets())
	}
	return m, p, nil
}

func (a *App) DeleteMeal(id string) {
	a.Log.DeleteMeal(id)
	a.Notifier.Info("Meal removed")
	a.Hub.Broadcast("meals.changed", a.Log.Meals())
}

func (a *App) CreatePreset(d models.MealDraft) (models.MealPreset, error) {
	p, err := a.Log.CreatePreset(d)
	if err != nil {
		return models.MealPreset{}, err
	}
	a.Notifier.Success("Preset %q created!", p.Name)
	a.Hub.Broadcast("presets.changed", a.Log.Presets())
	return p, nil
}

func (a *App) DeletePreset(id string) {
	a.Log.DeletePreset(id)
	a.Notifier.Info("Preset deleted")
	a.Hub.Broadcast("presets.changed", a.Log.Presets())
}

func (a *App) LogWeight(w float64) (models.WeightEntry, error) {
	e, err := a.Weight.Add(w)
	if err != nil {
		return models.WeightEntry{}, err
	}
	a.Notifier.Success("Weight logged: %vkg", e.Weight)
	return e, nil
}

func (a *App) UpdateGoals(g models.NutritionalGoals) error {
	if err := a.Goals.UpdateLocalGoals(g); err != nil {
		return err
	}
	a.Notifier.Success("Nutrition goals updated locally!")
	a.Hub.Broadcast("goals.changed", a.Goals.Snapshot())
	return nil
}

// SyncGoals runs one sync and reports progress through toasts.
func (a *App) SyncGoals(ctx context.Context) (GoalSyncStatus, error) {
	if a.Goals.Syncing() {
		return a.Goals.Snapshot(), apperrors.New(apperrors.CodeSyncInProgress, "sync already in progress")
	}
	a.Notifier.Info("Syncing with cloud...")
	if _, err := a.Goals.Sync(ctx); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeSyncFailed {
			a.Notifier.Error("Sync failed. Check connection.")
		}
		return a.Goals.Snapshot(), err
	}
	a.Notifier.Success("Successfully synced with backend!")
	snap := a.Goals.Snapshot()
	a.Hub.Broadcast("goals.changed", snap)
	return snap, nil
}

// EstimateText asks the estimator about a description.
func (a *App) EstimateText(ctx context.Context, description string) (EstimateResult, error) {
	res, err := a.Estimation.Estimate(ctx, description)
	if err != nil && apperrors.CodeOf(err) == apperrors.CodeEstimateFailed {
		a.Notifier.Error(EstimateFailedMessage)
	}
	return res, err
}

// EstimatePhoto names the food in a photo and estimates it. The label
// lookup runs under the same in-flight guard as the estimate.
func (a *App) EstimatePhoto(ctx context.Context, dataURI string) (EstimateResult, error) {
	res, err := a.Estimation.EstimateWith(ctx, func(ctx context.Context) (string, error) {
		return a.Photos.Describe(ctx, dataURI)
	})
	if err != nil && apperrors.CodeOf(err) == apperrors.CodeEstimateFailed {
		a.Notifier.Error(EstimateFailedMessage)
	}
	return res, err
}

// PreviewDraft projects a draft onto today's totals and local goals.
func (a *App) PreviewDraft(d models.MealDraft) (DraftPreview, error) {
	if err := utils.ValidateStruct(d); err != nil {
		return DraftPreview{}, apperrors.Wrap(apperrors.CodeValidation, "invalid meal", err)
	}
	return PreviewDraft(a.Log.Totals(), a.Goals.LocalGoals(), d), nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Repo.kv.Close()
}
