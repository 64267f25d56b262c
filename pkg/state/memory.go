package state

import (
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/tetris/pkg/game/types"
)

type InMemorySnapshotStore struct {
	lock     sync.RWMutex
	snapshot *gametypes.Snapshot
}

var _ SnapshotStore = &InMemorySnapshotStore{}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{}
}

func (m *InMemorySnapshotStore) Get() *gametypes.Snapshot {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.snapshot == nil {
		return nil
	}
	return m.snapshot.Copy()
}

// Set stores the snapshot. The store keeps its own copy so the caller may
// keep mutating the original.
func (m *InMemorySnapshotStore) Set(snapshot *gametypes.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	c := snapshot.Copy()
	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = c
	return nil
}
