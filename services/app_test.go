package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/storage"
	"github.com/Jordo960/VibePulse/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type recordingBroadcaster struct {
	kinds []string
}

func (r *recordingBroadcaster) Broadcast(kind string, _ any) { r.kinds = append(r.kinds, kind) }

func TestNotifierExpiresAndReplaces(t *testing.T) {
	rb := &recordingBroadcaster{}
	n := NewNotifier(0, rb)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return now }

	n.Success("%s added to your log!", "Toast")
	n.Info("Meal removed")
	cur := n.Current()
	if cur == nil || cur.Message != "Meal removed" || cur.Kind != models.NotifyInfo {
		t.Fatalf("expected newest toast, got %+v", cur)
	}
	if len(rb.kinds) != 2 || rb.kinds[0] != "toast" {
		t.Fatalf("expected two toast broadcasts, got %v", rb.kinds)
	}

	now = now.Add(DefaultToastTTL)
	if n.Current() != nil {
		t.Fatal("expected toast to expire after the ttl")
	}
}

func TestNotifierFormatsNumbers(t *testing.T) {
	n := NewNotifier(time.Second, nil)
	if got := n.Success("%d kcal logged", 2140).Message; got != "2,140 kcal logged" {
		t.Fatalf("expected grouped number, got %q", got)
	}
}

func TestSessionLogins(t *testing.T) {
	ctx := context.Background()
	secret := []byte("test-secret")
	s := NewSessionService(ctx, nil, secret, 0)

	sess, err := s.LoginEmail(ctx, "sam.k@example.com", "", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.Name != "sam.k" || sess.User.Level != 12 || sess.User.ID != MockUser.ID {
		t.Fatalf("unexpected login user %+v", sess.User)
	}
	if id, email, err := utils.ParseJWT(secret, sess.Token); err != nil || id != MockUser.ID || email != "sam.k@example.com" {
		t.Fatalf("expected valid token, got %q %q %v", id, email, err)
	}

	sess, err = s.LoginEmail(ctx, "new@example.com", "Robin", true)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if sess.User.Name != "Robin" || sess.User.Level != 1 {
		t.Fatalf("unexpected signup user %+v", sess.User)
	}

	sess, err = s.LoginSocial(ctx, "Google")
	if err != nil {
		t.Fatalf("social: %v", err)
	}
	if sess.User.Name != "Google User" || sess.User.Email != "google@example.com" {
		t.Fatalf("unexpected social user %+v", sess.User)
	}
	if sess, _ = s.LoginSocial(ctx, "Apple"); sess.User.Name != "Apple User" {
		t.Fatalf("expected Apple User, got %q", sess.User.Name)
	}

	if _, err := s.LoginEmail(ctx, "", "", false); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("expected VALIDATION without email, got %v", err)
	}
	s.Logout()
	if s.Current() != nil {
		t.Fatal("expected logged out")
	}
}

func TestSessionLoginHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSessionService(context.Background(), nil, []byte("k"), time.Minute)
	_, err := s.LoginSocial(ctx, "Google")
	if apperrors.CodeOf(err) != apperrors.CodeCanceled {
		t.Fatalf("expected CANCELED, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the context error in the chain, got %v", err)
	}
	if s.Current() != nil {
		t.Fatal("expected no session after cancelled login")
	}
}

func newTestApp(t *testing.T, remote GoalRemote) *App {
	t.Helper()
	repo := NewStateRepository(storage.NewMemory(), false)
	return NewApp(context.Background(), repo, Options{
		JWTSecret: []byte("test-secret"),
		Remote:    remote,
		Estimator: &fakeEstimator{},
	})
}

func TestAppLogoutKeepsSettings(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, &stubRemote{})
	if _, err := a.LoginEmail(ctx, "alex.j@example.com", "", false); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := a.Notifier.Current(); got == nil || got.Message != "Welcome back, alex.j!" {
		t.Fatalf("expected welcome toast, got %+v", got)
	}
	a.ToggleTheme()
	g := models.DefaultGoals
	g.Calories = 1800
	if err := a.UpdateGoals(g); err != nil {
		t.Fatalf("update goals: %v", err)
	}

	a.Logout()
	if a.Session.Current() != nil {
		t.Fatal("expected session cleared")
	}
	if a.Theme() != models.ThemeLight {
		t.Fatalf("expected theme kept, got %s", a.Theme())
	}
	if a.Goals.LocalGoals().Calories != 1800 {
		t.Fatal("expected goals kept")
	}
	if got := a.Notifier.Current(); got == nil || got.Message != "Logged out successfully" {
		t.Fatalf("expected logout toast, got %+v", got)
	}

	reloaded := NewApp(ctx, a.Repo, Options{})
	if reloaded.Theme() != models.ThemeLight || reloaded.Session.Current() != nil {
		t.Fatal("expected persisted theme and no session after reload")
	}
}

func TestAppSyncFailureToast(t *testing.T) {
	a := newTestApp(t, &stubRemote{err: ErrRemoteUnavailable})
	if _, err := a.SyncGoals(context.Background()); apperrors.CodeOf(err) != apperrors.CodeSyncFailed {
		t.Fatalf("expected SYNC_FAILED, got %v", err)
	}
	cur := a.Notifier.Current()
	if cur == nil || cur.Kind != models.NotifyError || cur.Message != "Sync failed. Check connection." {
		t.Fatalf("expected sync failure toast, got %+v", cur)
	}
	if a.Goals.Status() != SyncNever {
		t.Fatal("expected still never synced")
	}
}

func TestAppCommitMealToast(t *testing.T) {
	a := newTestApp(t, &stubRemote{})
	m, _, err := a.CommitMeal(models.MealDraft{Name: "Oats", Protein: 12, Carbs: 55, Fats: 8, Fibre: 10}, models.Breakfast, "", false)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := a.Notifier.Current(); got == nil || got.Message != "Oats added to your log!" {
		t.Fatalf("expected added toast, got %+v", got)
	}
	if a.Stats.Daily().MealCount != 4 {
		t.Fatalf("expected 4 meals, got %d", a.Stats.Daily().MealCount)
	}
	a.DeleteMeal(m.ID)
	if a.Stats.Daily().Totals.Calories != 1200 {
		t.Fatalf("expected seed total after delete, got %v", a.Stats.Daily().Totals.Calories)
	}
}

func TestAppEstimateFailureToast(t *testing.T) {
	a := newTestApp(t, &stubRemote{})
	a.Estimation = NewEstimationService(&fakeEstimator{err: ErrRemoteUnavailable})
	if _, err := a.EstimateText(context.Background(), "toast"); apperrors.CodeOf(err) != apperrors.CodeEstimateFailed {
		t.Fatalf("expected ESTIMATE_FAILED, got %v", err)
	}
	if cur := a.Notifier.Current(); cur == nil || cur.Message != EstimateFailedMessage {
		t.Fatalf("expected failure toast, got %+v", cur)
	}
	if len(a.Log.Meals()) != 3 {
		t.Fatal("expected the log untouched")
	}
}

func TestAppPreviewRejectsOversizedDraft(t *testing.T) {
	a := newTestApp(t, &stubRemote{})
	if _, err := a.PreviewDraft(models.MealDraft{Name: "x", Protein: 1e308}); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
	p, err := a.PreviewDraft(models.MealDraft{Name: "Bowl", Protein: 25, Carbs: 45, Fats: 12})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if p.DerivedCalories != 388 {
		t.Fatalf("expected 388 kcal, got %d", p.DerivedCalories)
	}
}

type blockingLabels struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingLabels) DetectLabels(context.Context, *rekognition.DetectLabelsInput, ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	close(b.started)
	<-b.release
	return &rekognition.DetectLabelsOutput{Labels: []types.Label{{Name: aws.String("Banana"), Confidence: aws.Float32(95)}}}, nil
}

func TestAppPhotoEstimateIsGuarded(t *testing.T) {
	est, _ := ValidateEstimate([]byte(bananaJSON))
	labels := &blockingLabels{started: make(chan struct{}), release: make(chan struct{})}
	a := NewApp(context.Background(), NewStateRepository(storage.NewMemory(), false), Options{
		JWTSecret: []byte("test-secret"),
		Remote:    &stubRemote{},
		Estimator: &fakeEstimator{est: est},
		Labels:    labels,
	})

	const photo = "data:image/png;base64,aGVsbG8="
	done := make(chan error, 1)
	go func() {
		_, err := a.EstimatePhoto(context.Background(), photo)
		done <- err
	}()
	<-labels.started

	if _, err := a.EstimatePhoto(context.Background(), photo); apperrors.CodeOf(err) != apperrors.CodeEstimateInProgress {
		t.Fatalf("expected ESTIMATE_IN_PROGRESS for a second photo, got %v", err)
	}
	close(labels.release)
	if err := <-done; err != nil {
		t.Fatalf("first photo: %v", err)
	}
}
