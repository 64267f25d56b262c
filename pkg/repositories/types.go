package repositories

import (
	"sort"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
)

const (
	// DefaultRecordLimit is the number of records listed when no limit is given
	DefaultRecordLimit = 10
	// MaxRecordLimit caps the number of records returned by one listing
	MaxRecordLimit = 100
)

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// NormalizeLimit clamps a listing limit into [1, MaxRecordLimit], using
// DefaultRecordLimit for non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecordLimit
	}
	return min(limit, MaxRecordLimit)
}

// sortRecords orders records the way every backend lists them: highest
// score first, most recent first among equal scores.
func sortRecords(records []*models.GameRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].EndedAt.After(records[j].EndedAt)
	})
}
