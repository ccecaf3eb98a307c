package services

import (
	"sync"
	"time"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/utils"
)

// DefaultToastTTL is how long a toast stays visible.
const DefaultToastTTL = 3 * time.Second

// Notifier holds the single visible toast. A newer toast replaces the
// current one; an expired toast reads as none.
type Notifier struct {
	mu      sync.Mutex
	current *models.Notification
	ttl     time.Duration
	rt      Broadcaster
	now     func() time.Time
}

// NewNotifier builds a notifier. rt may be nil.
func NewNotifier(ttl time.Duration, rt Broadcaster) *Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Notifier{ttl: ttl, rt: rt, now: time.Now}
}

// Notify formats the message and shows it, replacing any current toast.
func (n *Notifier) Notify(kind models.NotificationKind, format string, args ...any) models.Notification {
	at := n.now()
	note := models.Notification{
		Kind:      kind,
		Message:   utils.Sprintf(format, args...),
		CreatedAt: at,
		ExpiresAt: at.Add(n.ttl),
	}
	n.mu.Lock()
	n.current = &note
	n.mu.Unlock()

	if n.rt != nil {
		n.rt.Broadcast("toast", note)
	}
	return note
}

func (n *Notifier) Success(format string, args ...any) models.Notification {
	return n.Notify(models.NotifySuccess, format, args...)
}

func (n *Notifier) Info(format string, args ...any) models.Notification {
	return n.Notify(models.NotifyInfo, format, args...)
}

func (n *Notifier) Error(format string, args ...any) models.Notification {
	return n.Notify(models.NotifyError, format, args...)
}

// Current returns the visible toast, or nil once it has expired.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	c := *n.current
	return &c
}

// Dismiss clears the visible toast.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	n.current = nil
	n.mu.Unlock()
}
