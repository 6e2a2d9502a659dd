// Package backup serializes the full tournament list into a compact
// binary snapshot suitable for file export and later restore.
package backup

import (
	"fmt"
	"time"

	"github.com/MainigB/optcgjourney/internal/tracker"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// Snapshot is the envelope written to export files.
type Snapshot struct {
	Version     int                  `msgpack:"version"`
	ExportedAt  int64                `msgpack:"exportedAt"`
	Tournaments []tracker.Tournament `msgpack:"tournaments"`
}

// Export packs the tournament list into a msgpack snapshot.
func Export(list []tracker.Tournament) ([]byte, error) {
	snap := Snapshot{
		Version:     snapshotVersion,
		ExportedAt:  time.Now().UnixMilli(),
		Tournaments: list,
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("backup: marshal snapshot: %w", err)
	}
	return data, nil
}

// Import unpacks a snapshot produced by Export and returns its
// tournament list. Snapshots from unknown future versions are rejected.
func Import(data []byte) ([]tracker.Tournament, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("backup: unmarshal snapshot: %w", err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("backup: unsupported snapshot version %d", snap.Version)
	}
	if snap.Tournaments == nil {
		return []tracker.Tournament{}, nil
	}
	return snap.Tournaments, nil
}
