// Package fatal centralizes the handful of conditions that the interning
// service treats as unrecoverable: a corrupt invariant is a programming
// error, not something a caller can meaningfully catch and retry.
package fatal

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used for the cold and fatal paths. A nil
// logger is ignored, matching the teacher's WithLogger option semantics.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the currently installed logger, for packages that also
// want to emit non-fatal diagnostics (e.g. arena block growth).
func Logger() *zap.Logger { return logger }

// Abort logs msg at fatal level and terminates the process. zap's Fatal
// core calls os.Exit(1) after writing the entry, so this never returns.
func Abort(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
	panic(msg) // unreachable unless logger is a test double that doesn't exit
}
