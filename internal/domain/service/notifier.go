package service

import "time"

// ToastKind classifies a notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastWarning ToastKind = "warning"
	ToastInfo    ToastKind = "info"
)

// IsValid checks if the ToastKind is a valid value.
func (k ToastKind) IsValid() bool {
	switch k {
	case ToastSuccess, ToastError, ToastWarning, ToastInfo:
		return true
	default:
		return false
	}
}

// Toast is a short-lived user-facing message.
type Toast struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      ToastKind `json:"kind"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToastEventType is a lifecycle transition of a toast.
type ToastEventType string

const (
	ToastShown   ToastEventType = "shown"
	ToastHidden  ToastEventType = "hidden"
	ToastRemoved ToastEventType = "removed"
)

// ToastEvent is emitted to subscribers on every lifecycle transition.
type ToastEvent struct {
	Type  ToastEventType `json:"type"`
	Toast Toast          `json:"toast"`
}

// Notifier queues, shows and auto-dismisses toasts.
type Notifier interface {
	// Show enqueues a visible toast and starts its lifecycle timers.
	Show(message string, kind ToastKind) Toast

	// Dismiss hides a toast now and removes it after the exit delay.
	// It reports false when the toast is unknown or already hidden.
	Dismiss(id int64) bool

	// List returns the queued toasts in insertion order.
	List() []Toast

	// Subscribe streams lifecycle events until cancel is called or the
	// notifier is closed.
	Subscribe() (events <-chan ToastEvent, cancel func())
}
