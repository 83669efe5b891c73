// Package store keeps validation results on disk, keyed by an opaque token,
// and hands out yearly document sequence numbers.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// ErrNotFound indicates no result exists for a token.
var ErrNotFound = errors.New("result not found")

// Record is a stored validation result.
type Record struct {
	// Token identifies the record. Set by Save.
	Token string `json:"token"`
	// Filename is the name of the validated file.
	Filename string `json:"filename"`
	// ValidatedAt is when validation ran.
	ValidatedAt time.Time `json:"validated_at"`
	// Observations are the findings per category.
	Observations models.ObservationSet `json:"observations"`
}

// FileStore writes one JSON file per record under Dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save stores rec under a new token and returns the token.
func (s *FileStore) Save(ctx context.Context, rec Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec.Token = uuid.NewString()
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	if err := writeFileAtomic(s.resultPath(rec.Token), data); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return rec.Token, nil
}

// Load returns the record stored under token, or ErrNotFound.
func (s *FileStore) Load(ctx context.Context, token string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	// Tokens are UUIDs; anything else cannot name a stored file.
	id, err := uuid.Parse(token)
	if err != nil {
		return Record{}, ErrNotFound
	}

	data, err := os.ReadFile(s.resultPath(id.String()))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("read result: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode result %s: %w", token, err)
	}
	return rec, nil
}

// NextSequence increments the counter for year and returns the formatted
// document number, e.g. "DGDTP.-0007-2026".
func (s *FileStore) NextSequence(ctx context.Context, prefix string, year int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counters := make(map[string]int)
	data, err := os.ReadFile(s.counterPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return "", fmt.Errorf("read counter: %w", err)
	default:
		if err := json.Unmarshal(data, &counters); err != nil {
			return "", fmt.Errorf("decode counter: %w", err)
		}
	}

	key := strconv.Itoa(year)
	counters[key]++
	n := counters[key]

	data, err = json.Marshal(counters)
	if err != nil {
		return "", fmt.Errorf("encode counter: %w", err)
	}
	if err := writeFileAtomic(s.counterPath(), data); err != nil {
		return "", fmt.Errorf("write counter: %w", err)
	}

	return FormatSequence(prefix, n, year), nil
}

// FormatSequence formats a document number as "<prefix>.-NNNN-YYYY".
func FormatSequence(prefix string, n, year int) string {
	return fmt.Sprintf("%s.-%04d-%d", prefix, n, year)
}

func (s *FileStore) resultPath(token string) string {
	return filepath.Join(s.dir, "result_"+token+".json")
}

func (s *FileStore) counterPath() string {
	return filepath.Join(s.dir, "sequence.json")
}

// writeFileAtomic writes through a temporary file so readers never see a partial record.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
