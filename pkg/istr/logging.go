package istr

import (
	"go.uber.org/zap"

	"github.com/arcanehash/istr/internal/fatal"
)

// SetLogger installs l for the cold and fatal diagnostic paths: arena
// block growth (debug level) and the unrecoverable conditions in
// internal/payload and internal/proclocal (fatal level). Nothing on the
// Intern/Lookup hot path logs, by design — matching the teacher lineage's
// own WithLogger policy of only instrumenting slow or exceptional events.
func SetLogger(l *zap.Logger) {
	fatal.SetLogger(l)
}
