// internal/domain/storefront/notifier.go
package storefront

import "github.com/sirupsen/logrus"

// Notifier shows toast messages to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// LogNotifier writes toasts to a logger; used when no page is listening
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (n LogNotifier) Notify(message string) {
	n.Log.WithField("toast", message).Debug("Toast")
}
