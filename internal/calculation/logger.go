package calculation

// Logger is the minimal logging hook the engine emits step traces through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the engine default so that library
// users opt in to logging explicitly.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
