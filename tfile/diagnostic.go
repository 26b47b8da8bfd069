package tfile

import "go.uber.org/zap"

// Severity grades a diagnostic emitted while reading a file.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a non-fatal condition observed while reading a transform
// file, such as extra records being ignored.
type Diagnostic struct {
	Severity Severity
	Message  string
	File     string
}

// Observer receives diagnostics from Read.
type Observer interface {
	OnDiagnostic(Diagnostic)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Diagnostic)

func (f ObserverFunc) OnDiagnostic(d Diagnostic) {
	f(d)
}

// Option configures a Read call.
type Option func(*config)

type config struct {
	observers []Observer
}

// WithObserver registers an observer for diagnostics emitted during the
// read.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

func (c *config) notify(d Diagnostic) {
	Logger().Warn("transform file diagnostic",
		zap.String("file", d.File),
		zap.String("message", d.Message),
	)
	for _, o := range c.observers {
		o.OnDiagnostic(d)
	}
}
