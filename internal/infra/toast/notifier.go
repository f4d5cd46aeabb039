// Package toast implements the process-wide notification queue.
package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"churchadmin/config"
	"churchadmin/internal/domain/service"

	"go.uber.org/fx"
)

const subscriberBuffer = 64

type item struct {
	toast       service.Toast
	hideTimer   Timer
	removeTimer Timer
}

func (it *item) stopTimers() {
	if it.hideTimer != nil {
		it.hideTimer.Stop()
	}
	if it.removeTimer != nil {
		it.removeTimer.Stop()
	}
}

// Notifier keeps toasts in insertion order. Each toast is hidden after
// visibleFor and removed exitDelay later; the timers of different toasts are
// independent.
type Notifier struct {
	mu          sync.Mutex
	clock       Clock
	logger      *slog.Logger
	visibleFor  time.Duration
	exitDelay   time.Duration
	maxQueue    int
	nextID      int64
	items       []*item
	subscribers map[int]chan service.ToastEvent
	nextSubID   int
	closed      bool
}

// New builds a Notifier. A nil clock uses wall time.
func New(cfg *config.ToastConfig, clock Clock, logger *slog.Logger) *Notifier {
	if clock == nil {
		clock = realClock{}
	}

	return &Notifier{
		clock:       clock,
		logger:      logger,
		visibleFor:  cfg.VisibleFor,
		exitDelay:   cfg.ExitDelay,
		maxQueue:    cfg.MaxQueue,
		subscribers: make(map[int]chan service.ToastEvent),
	}
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier provides the shared Notifier and closes it on shutdown.
func NewNotifier(params NotifierParams) service.Notifier {
	n := New(params.Config.Toast, nil, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing toast notifier")
			n.Close()

			return nil
		},
	})

	return n
}

// Show appends a visible toast. Unknown kinds are shown as info.
func (n *Notifier) Show(message string, kind service.ToastKind) service.Toast {
	if !kind.IsValid() {
		kind = service.ToastInfo
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	t := service.Toast{
		ID:        n.nextID,
		Message:   message,
		Kind:      kind,
		Visible:   true,
		CreatedAt: n.clock.Now(),
	}
	if n.closed {
		return t
	}

	if n.maxQueue > 0 && len(n.items) >= n.maxQueue {
		oldest := n.items[0]
		oldest.stopTimers()
		n.items = n.items[1:]
		n.emit(service.ToastRemoved, oldest.toast)
	}

	it := &item{toast: t}
	n.items = append(n.items, it)
	n.emit(service.ToastShown, t)

	id := t.ID
	it.hideTimer = n.clock.AfterFunc(n.visibleFor, func() { n.hide(id) })

	return t
}

// Dismiss hides the toast now, cancelling its auto-hide.
func (n *Notifier) Dismiss(id int64) bool {
	return n.hide(id)
}

// List returns a snapshot of the queue.
func (n *Notifier) List() []service.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]service.Toast, 0, len(n.items))
	for _, it := range n.items {
		out = append(out, it.toast)
	}

	return out
}

// Subscribe registers a lifecycle listener. Events are dropped for a
// subscriber whose buffer is full.
func (n *Notifier) Subscribe() (<-chan service.ToastEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan service.ToastEvent, subscriberBuffer)
	if n.closed {
		close(ch)

		return ch, func() {}
	}

	id := n.nextSubID
	n.nextSubID++
	n.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subscribers[id]; ok {
				delete(n.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Close stops every timer and closes all subscriber channels.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for _, it := range n.items {
		it.stopTimers()
	}
	for id, ch := range n.subscribers {
		delete(n.subscribers, id)
		close(ch)
	}
}

func (n *Notifier) hide(id int64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return false
	}
	it := n.find(id)
	if it == nil || !it.toast.Visible {
		return false
	}

	if it.hideTimer != nil {
		it.hideTimer.Stop()
	}
	it.toast.Visible = false
	n.emit(service.ToastHidden, it.toast)
	it.removeTimer = n.clock.AfterFunc(n.exitDelay, func() { n.remove(id) })

	return true
}

func (n *Notifier) remove(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	for i, it := range n.items {
		if it.toast.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			n.emit(service.ToastRemoved, it.toast)

			return
		}
	}
}

func (n *Notifier) find(id int64) *item {
	for _, it := range n.items {
		if it.toast.ID == id {
			return it
		}
	}

	return nil
}

// emit must be called with mu held.
func (n *Notifier) emit(eventType service.ToastEventType, t service.Toast) {
	event := service.ToastEvent{Type: eventType, Toast: t}
	for id, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
			n.logger.Warn("Toast subscriber is slow, dropping event",
				slog.Int("subscriber", id),
				slog.Int64("toast_id", t.ID),
				slog.String("event", string(eventType)))
		}
	}
}
