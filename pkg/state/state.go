package state

import (
	gametypes "github.com/cbodonnell/tetris/pkg/game/types"
)

// SnapshotStore hands the latest game snapshot from the frame loop to
// renderers. Implementations must be thread-safe.
type SnapshotStore interface {
	// Get returns a copy of the latest snapshot, or nil if none was set.
	Get() *gametypes.Snapshot
	// Set replaces the latest snapshot.
	Set(snapshot *gametypes.Snapshot) error
}
