package core

import "sync/atomic"

// Process-wide identity of a dynamic native or closure. Ordinals are
// strictly increasing in allocation order and never reused.
type Ordinal uint64

// Dynamic natives and closures draw from the same counter, so no two
// entities ever share an ordinal.
var lastOrdinal atomic.Uint64

// Allocates a fresh ordinal. Safe for concurrent use.
func NextOrdinal() Ordinal {
	return Ordinal(lastOrdinal.Add(1))
}
