package logger

type nopLogger struct{}

// NewNop returns a logger that discards everything. Tests use it where the
// logged output is irrelevant.
func NewNop() Interface {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...any)           {}
func (nopLogger) Info(string, ...any)            {}
func (nopLogger) Warn(string, ...any)            {}
func (nopLogger) Error(string, ...any)           {}
func (n nopLogger) With(...any) Interface        { return n }
func (n nopLogger) Named(string) Interface       { return n }
func (nopLogger) Debugw(string, ...interface{})  {}
func (nopLogger) Infow(string, ...interface{})   {}
func (nopLogger) Warnw(string, ...interface{})   {}
func (nopLogger) Errorw(string, ...interface{})  {}
