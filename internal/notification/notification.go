// Package notification carries user-facing outcome messages as structured
// values. Rendering is the caller's concern; the core never formats toasts.
package notification

import (
	"errors"
	"log/slog"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
)

// Kind classifies a notification the way the booking UI colors its toasts.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

// Notification is a single dismissible user message.
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Info builds an informational notification.
func Info(message string) Notification { return Notification{Kind: KindInfo, Message: message} }

// Success builds a success notification.
func Success(message string) Notification { return Notification{Kind: KindSuccess, Message: message} }

// Warning builds a warning notification.
func Warning(message string) Notification { return Notification{Kind: KindWarning, Message: message} }

// Danger builds a failure notification.
func Danger(message string) Notification { return Notification{Kind: KindDanger, Message: message} }

// FromError maps an error to the notification the original UI would show:
// validation problems are warnings except for failed lookups, everything
// else is a danger toast.
func FromError(err error) Notification {
	var verr *domainErrors.ValidationError
	if errors.As(err, &verr) {
		switch verr.Kind {
		case domainErrors.KindCourseNotFound, domainErrors.KindOrderNotFound, domainErrors.KindCourseNotSelected:
			return Danger(verr.Message)
		default:
			return Warning(verr.Message)
		}
	}
	return Danger(err.Error())
}

// LogNotifier writes notifications to the structured log, for non-interactive
// callers and as a tee alongside terminal rendering.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(msg Notification) {
	switch msg.Kind {
	case KindDanger:
		n.logger.Error(msg.Message)
	case KindWarning:
		n.logger.Warn(msg.Message)
	default:
		n.logger.Info(msg.Message)
	}
}
