// Package storage defines store-level sentinel errors shared by repository
// implementations and the persistence gateway.
package storage

import "errors"

// ErrNotConfigured is reported by the no-op store when no backing store is
// configured. The gateway treats it as the first-class offline mode rather
// than a failure.
var ErrNotConfigured = errors.New("no backing store configured")
