package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	randomgenerator "github.com/mikiasgoitom/likeboard/internal/infrastructure/random_generator"
)

const identitySuffixLen = 9

// Storage persists the client identifier between runs.
type Storage interface {
	// Load returns the stored identifier; ok is false when nothing is stored.
	Load() (id string, ok bool, err error)
	Save(id string) error
}

// IdentityResolver hands out one stable anonymous identifier per storage.
// The first call generates user_<unix-millis>_<9 base36 chars> and persists
// it; later calls return the stored value.
type IdentityResolver struct {
	mu      sync.Mutex
	storage Storage
	rand    contract.IRandomGenerator
	now     func() time.Time
	cached  string
}

func NewIdentityResolver(storage Storage) *IdentityResolver {
	return &IdentityResolver{
		storage: storage,
		rand:    randomgenerator.NewRandomGenerator(),
		now:     time.Now,
	}
}

// Resolve returns the persisted identifier, creating it on first use.
func (r *IdentityResolver) Resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}
	id, ok, err := r.storage.Load()
	if err != nil {
		return "", fmt.Errorf("load identity: %w", err)
	}
	if ok && id != "" {
		r.cached = id
		return id, nil
	}

	suffix, err := r.rand.GenerateBase36(identitySuffixLen)
	if err != nil {
		return "", fmt.Errorf("generate identity: %w", err)
	}
	id = fmt.Sprintf("user_%d_%s", r.now().UnixMilli(), suffix)
	if err := r.storage.Save(id); err != nil {
		return "", fmt.Errorf("save identity: %w", err)
	}
	r.cached = id
	return id, nil
}

// MemoryStorage keeps the identifier for the life of the process.
type MemoryStorage struct {
	mu sync.Mutex
	id string
}

func (m *MemoryStorage) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.id != "", nil
}

func (m *MemoryStorage) Save(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
	return nil
}

// FileStorage keeps the identifier in a small JSON file.
type FileStorage struct {
	Path string
}

type identityFile struct {
	UserID string `json:"userId"`
}

// NewFileStorage stores the identifier under the user's config directory.
func NewFileStorage() (*FileStorage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileStorage{Path: filepath.Join(dir, "likeboard", "identity.json")}, nil
}

func (f *FileStorage) Load() (string, bool, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	var v identityFile
	if err := json.Unmarshal(b, &v); err != nil {
		return "", false, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return v.UserID, v.UserID != "", nil
}

func (f *FileStorage) Save(id string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(identityFile{UserID: id})
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, b, 0o600)
}
