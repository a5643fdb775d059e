// Package notify tells users about their new token balance.
package notify

import "github.com/sirupsen/logrus"

// Notifier sends the top-up email for one user. Implementations must not
// block the batch or fail it; delivery problems are theirs to absorb.
type Notifier interface {
	Notify(email string, newTokenBalance int64)
}

// Func adapts a plain function to Notifier.
type Func func(email string, newTokenBalance int64)

func (f Func) Notify(email string, newTokenBalance int64) { f(email, newTokenBalance) }

// Noop drops every notification. Email delivery is not wired up yet.
type Noop struct{}

func (Noop) Notify(string, int64) {}

// Logging records each notification before handing it to Next.
type Logging struct {
	Next   Notifier
	Logger logrus.FieldLogger
}

// WithLogging wraps next so every dispatch is logged at debug level.
func WithLogging(next Notifier, logger logrus.FieldLogger) *Logging {
	return &Logging{Next: next, Logger: logger}
}

func (l *Logging) Notify(email string, newTokenBalance int64) {
	l.Logger.WithFields(logrus.Fields{
		"email":             email,
		"new_token_balance": newTokenBalance,
	}).Debug("Dispatching top-up email")
	if l.Next != nil {
		l.Next.Notify(email, newTokenBalance)
	}
}
