package domain

import "context"

// NotificationType classifies a notification for display purposes.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
	NotifyError   NotificationType = "error"
)

// Notification is a user-displayable message accumulated during one logical
// operation. It is a side channel distinct from Result.
type Notification struct {
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// Notifier is the sink pipelines and hooks emit notifications into.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Info(message string)
	Error(message string)
}

// Collector is a Notifier that accumulates notifications for later
// transmission, e.g. in a response envelope. A fresh Collector is created
// per logical operation, so no locking is needed.
type Collector struct {
	notifications []Notification
}

func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Success(message string) { c.add(message, NotifySuccess) }
func (c *Collector) Warning(message string) { c.add(message, NotifyWarning) }
func (c *Collector) Info(message string)    { c.add(message, NotifyInfo) }
func (c *Collector) Error(message string)   { c.add(message, NotifyError) }

func (c *Collector) add(message string, t NotificationType) {
	if message == "" {
		return
	}
	c.notifications = append(c.notifications, Notification{Message: message, Type: t})
}

// Notifications returns the accumulated notifications, never nil.
func (c *Collector) Notifications() []Notification {
	if c.notifications == nil {
		return []Notification{}
	}
	return c.notifications
}

type notifierKey struct{}

// silentNotifier drops everything. NotifierFrom falls back to it so hooks
// can always notify without a nil check.
type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Warning(string) {}
func (silentNotifier) Info(string)    {}
func (silentNotifier) Error(string)   {}

// WithNotifier attaches the per-operation notification sink to the context.
// Hook and validator registrations are long-lived while the sink belongs to
// a single call, so the sink travels with the context instead of living on
// the registration.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

// NotifierFrom returns the sink attached to the context, or a sink that
// discards everything when none is attached.
func NotifierFrom(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierKey{}).(Notifier); ok && n != nil {
		return n
	}
	return silentNotifier{}
}

// Replay forwards a batch of notifications into another notifier, keeping
// their types. Used by the REST-backed repository to surface server-side
// notifications locally.
func Replay(n Notifier, notifications []Notification) {
	for _, notification := range notifications {
		switch notification.Type {
		case NotifySuccess:
			n.Success(notification.Message)
		case NotifyInfo:
			n.Info(notification.Message)
		case NotifyWarning:
			n.Warning(notification.Message)
		default:
			n.Error(notification.Message)
		}
	}
}
