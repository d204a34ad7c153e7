package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/gofrs/flock"

	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// Table is one headered CSV file holding a whole collection. Every
// read loads the full file and every write rewrites it; at this
// scale that is the entire storage engine.
//
// Mutations serialize on an in-process mutex plus an advisory flock
// on a sidecar .lock file, so concurrent server processes sharing a
// data directory cannot interleave their reload+rewrite cycles.
type Table[T any] struct {
	path string
	mu   sync.Mutex
	fl   *flock.Flock
}

// NewTable opens the table at path, materializing the file with its
// header row (plus any seed records) if it has never been created.
func NewTable[T any](path string, seed []T) (*Table[T], error) {
	t := &Table[T]{
		path: path,
		fl:   flock.New(path + ".lock"),
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if seed == nil {
			seed = []T{}
		}
		if err := t.Save(seed); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", types.ErrStorageUnavailable, path, err)
	}
	return t, nil
}

// Load reads the whole collection. A header-only file yields an empty
// slice; an unreadable or malformed file is ErrStorageUnavailable.
func (t *Table[T]) Load() ([]T, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Never initialized; treat as empty and recreate lazily.
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", types.ErrStorageUnavailable, t.path, err)
	}
	records := []T{}
	if len(data) == 0 {
		return records, nil
	}
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", types.ErrStorageUnavailable, t.path, err)
	}
	return records, nil
}

// Save rewrites the whole collection atomically: marshal, write to a
// temp file in the same directory, fsync, rename over the original.
// Readers never observe a partially written file.
func (t *Table[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := gocsv.MarshalBytes(&records)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", types.ErrStorageUnavailable, t.path, err)
	}
	if err := writeFileAtomic(t.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", types.ErrStorageUnavailable, t.path, err)
	}
	return nil
}

// Append reloads the collection and rewrites it with one record added,
// under the table's write lock.
func (t *Table[T]) Append(record T) error {
	return t.Update(func(records []T) ([]T, error) {
		return append(records, record), nil
	})
}

// Update runs one locked reload+mutate+rewrite cycle. The reload
// happens after the lock is held, so apply always sees the latest
// durable state. If apply returns an error nothing is written.
func (t *Table[T]) Update(apply func(records []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.fl.Lock(); err != nil {
		return fmt.Errorf("%w: lock %s: %v", types.ErrStorageUnavailable, t.path, err)
	}
	defer t.fl.Unlock()

	records, err := t.Load()
	if err != nil {
		return err
	}
	updated, err := apply(records)
	if err != nil {
		return err
	}
	return t.Save(updated)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
