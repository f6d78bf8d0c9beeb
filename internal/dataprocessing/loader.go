package dataprocessing

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"siacli/pkg/contracts/domain"
)

// Upload is an in-memory byte stream supplied when no file-system source
// is available. ID is assigned by the receiving layer and becomes part
// of the cache identity.
type Upload struct {
	ID   string
	Name string
	Data []byte
}

// Source describes where a dataset may come from: an ordered list of
// candidate paths probed first, then an optional upload stream.
type Source struct {
	Candidates []string
	Upload     *Upload
}

// Identity returns the cache key for this source. Path candidates are
// identified by name, uploads by their assigned ID. A file that changes
// on disk under the same path is served stale until process restart;
// callers needing freshness must present a new identity.
func (s Source) Identity() string {
	key := strings.Join(s.Candidates, "|")
	if s.Upload != nil {
		key += "|upload:" + s.Upload.ID
	}
	return key
}

// Loader resolves and caches datasets. Cached entries are immutable
// after insertion, so concurrent readers never coordinate beyond the
// map lock; concurrent first loads of the same identity are collapsed
// into one parse.
type Loader struct {
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*domain.Dataset
	group singleflight.Group
}

// NewLoader creates a dataset loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger: logger.With(slog.String("component", "dataset_loader")),
		cache:  make(map[string]*domain.Dataset),
	}
}

// Load resolves the source into a Dataset, serving a cached instance
// when the identity has been loaded before. Candidate paths are probed
// in order; the first existing one wins. The upload stream is parsed
// only when no path exists. Neither resolving is ErrSourceNotFound.
func (l *Loader) Load(ctx context.Context, src Source) (*domain.Dataset, error) {
	key := src.Identity()

	l.mu.RLock()
	ds, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		return ds, nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		// Re-check under the group: a concurrent caller may have
		// populated the cache between the read lock and here.
		l.mu.RLock()
		ds, ok := l.cache[key]
		l.mu.RUnlock()
		if ok {
			return ds, nil
		}

		ds, err := l.resolve(ctx, src)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cache[key] = ds
		l.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

// Cached returns the dataset for a source identity without triggering a
// load.
func (l *Loader) Cached(key string) (*domain.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ds, ok := l.cache[key]
	return ds, ok
}

// resolve performs the actual probe-and-parse for a source.
func (l *Loader) resolve(ctx context.Context, src Source) (*domain.Dataset, error) {
	for _, candidate := range src.Candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		l.logger.InfoContext(ctx, "loading dataset from path",
			slog.String("path", candidate))

		f, err := os.Open(candidate)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrParseFailure, candidate, err)
		}
		defer f.Close()

		if isWorkbook(candidate) {
			return ParseWorkbook(f, candidate)
		}
		return ParseCSV(f, candidate)
	}

	if src.Upload != nil {
		l.logger.InfoContext(ctx, "loading dataset from upload",
			slog.String("upload_id", src.Upload.ID),
			slog.String("name", src.Upload.Name),
			slog.Int("bytes", len(src.Upload.Data)))

		source := "upload:" + src.Upload.Name
		if isWorkbook(src.Upload.Name) {
			return ParseWorkbook(bytes.NewReader(src.Upload.Data), source)
		}
		return ParseCSV(bytes.NewReader(src.Upload.Data), source)
	}

	return nil, fmt.Errorf("%w: candidates %v", ErrSourceNotFound, src.Candidates)
}

// isWorkbook reports whether the name points at an Excel workbook rather
// than delimited text.
func isWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}
