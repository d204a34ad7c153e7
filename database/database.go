package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// SeededAdminDigest is the legacy SHA-256 digest of the bootstrap
// admin password ("admin"). It exists so a fresh data directory is
// usable at all; rotate it with reset-password before real use.
const SeededAdminDigest = "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918"

// Store owns the data directory and hands out the four collection
// tables, the way a DB client hands out collections.
type Store struct {
	Users      *Table[types.User]
	Tasks      *Table[types.Task]
	Leaves     *Table[types.LeaveRequest]
	Timesheets *Table[types.TimesheetEntry]
}

// NewStore opens (or initializes) the data directory. On first
// initialization users is seeded with the admin account and the
// other collections are created with headers only.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", types.ErrStorageUnavailable, dataDir, err)
	}

	users, err := NewTable[types.User](filepath.Join(dataDir, "users.csv"), []types.User{
		{
			Username: "admin",
			Password: SeededAdminDigest,
			Role:     types.USER_ROLE_ADMIN,
		},
	})
	if err != nil {
		return nil, err
	}
	tasks, err := NewTable[types.Task](filepath.Join(dataDir, "tasks.csv"), nil)
	if err != nil {
		return nil, err
	}
	leaves, err := NewTable[types.LeaveRequest](filepath.Join(dataDir, "leaves.csv"), nil)
	if err != nil {
		return nil, err
	}
	timesheets, err := NewTable[types.TimesheetEntry](filepath.Join(dataDir, "timesheets.csv"), nil)
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:      users,
		Tasks:      tasks,
		Leaves:     leaves,
		Timesheets: timesheets,
	}, nil
}
