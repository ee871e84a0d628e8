package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"smoothbux-be/internal/order"
)

// Storage is the save/load boundary that keeps an in-progress cart
// across restarts. Only the cart package touches it.
type Storage interface {
	Save(items []order.NewOrderItem) error
	Load() ([]order.NewOrderItem, error)
}

// FileStore persists the cart as a JSON file, the CLI equivalent of the
// browser's localStorage entry.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Save(items []order.NewOrderItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (f *FileStore) Load() ([]order.NewOrderItem, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []order.NewOrderItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Restore loads a previously saved cart into c, replacing its contents.
func (c *Cart) Restore(s Storage) error {
	items, err := s.Load()
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// Persist writes the current cart through the storage boundary.
func (c *Cart) Persist(s Storage) error {
	return s.Save(c.items)
}
