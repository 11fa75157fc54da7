// Package file provides the curated reference catalog, loaded from
// embedded JSON and optionally overridden by files on disk that are
// reloaded on change.
package file

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driven.ReferenceCatalog = (*Catalog)(nil)

//go:embed data/*.json
var embeddedData embed.FS

// Catalog data file names. Override files in the configured
// directory must use the same names.
const (
	finesFile    = "boetes.json"
	articlesFile = "artikelen.json"
	topicsFile   = "wetten.json"
	tablesFile   = "trefwoorden.json"
)

// snapshot is one immutable load of the catalog. Reloads swap the
// whole snapshot so readers never see a half-loaded state.
type snapshot struct {
	byID   map[string]domain.Reference
	order  []domain.Reference
	tables []domain.KeywordTable
	topics []domain.StatuteTopic
}

// Catalog serves the curated collections: fine codes, the article
// knowledge table, statute topics and keyword tables.
type Catalog struct {
	mu      sync.RWMutex
	current *snapshot

	overrideDir string
	watcher     *fsnotify.Watcher
	done        chan struct{}
}

// NewCatalog loads the embedded catalog. When overrideDir is
// non-empty, JSON files found there replace their embedded
// counterparts and are watched for changes.
func NewCatalog(overrideDir string) (*Catalog, error) {
	c := &Catalog{
		overrideDir: overrideDir,
		done:        make(chan struct{}),
	}

	snap, err := c.load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c.current = snap

	if overrideDir != "" {
		if err := c.watch(); err != nil {
			// A broken watcher degrades to load-once behaviour.
			logger.Warn("Catalog watcher unavailable: %v", err)
		}
	}

	return c, nil
}

// Lookup resolves an identifier to its curated reference.
func (c *Catalog) Lookup(identifier string) (domain.Reference, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ref, ok := c.current.byID[strings.ToUpper(identifier)]
	if !ok {
		return domain.Reference{}, domain.ErrNotFound
	}
	return ref, nil
}

// All returns every curated reference, in catalog order.
func (c *Catalog) All() []domain.Reference {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Reference, len(c.current.order))
	copy(out, c.current.order)
	return out
}

// KeywordTables returns the keyword-to-identifier tables.
func (c *Catalog) KeywordTables() []domain.KeywordTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.tables
}

// StatuteTopics returns the curated statute deep links.
func (c *Catalog) StatuteTopics() []domain.StatuteTopic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.topics
}

// Close stops the override watcher.
func (c *Catalog) Close() error {
	if c.watcher == nil {
		return nil
	}
	close(c.done)
	return c.watcher.Close()
}

// load builds a fresh snapshot from embedded data plus overrides.
func (c *Catalog) load() (*snapshot, error) {
	snap := &snapshot{byID: make(map[string]domain.Reference)}

	var fines, articles []domain.Reference
	if err := c.readJSON(finesFile, &fines); err != nil {
		return nil, err
	}
	if err := c.readJSON(articlesFile, &articles); err != nil {
		return nil, err
	}
	if err := c.readJSON(topicsFile, &snap.topics); err != nil {
		return nil, err
	}
	if err := c.readJSON(tablesFile, &snap.tables); err != nil {
		return nil, err
	}

	for _, ref := range append(fines, articles...) {
		ref.Origin = domain.OriginStructuredDB
		key := strings.ToUpper(ref.Identifier)
		if _, dup := snap.byID[key]; dup {
			logger.Warn("Catalog: duplicate identifier %s skipped", ref.Identifier)
			continue
		}
		snap.byID[key] = ref
		snap.order = append(snap.order, ref)
	}

	// Keyword tables must point at known identifiers; dangling ones
	// are tolerated (the matcher ignores them) but worth logging.
	for _, table := range snap.tables {
		for keyword, ids := range table.Entries {
			for _, id := range ids {
				if _, ok := snap.byID[strings.ToUpper(id)]; !ok {
					logger.Debug("Catalog: table %s keyword %q references unknown %s",
						table.Name, keyword, id)
				}
			}
		}
	}

	return snap, nil
}

// readJSON reads one data file, preferring the override directory
// over the embedded copy.
func (c *Catalog) readJSON(name string, v any) error {
	data, err := c.readFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) readFile(name string) ([]byte, error) {
	if c.overrideDir != "" {
		path := filepath.Join(c.overrideDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return fs.ReadFile(embeddedData, "data/"+name)
}

// watch reloads the catalog when an override file changes. A failed
// reload keeps the previous snapshot.
func (c *Catalog) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(c.overrideDir); err != nil {
		watcher.Close()
		return err
	}
	c.watcher = watcher

	go func() {
		for {
			select {
			case <-c.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if filepath.Ext(event.Name) != ".json" {
					continue
				}
				logger.Info("Catalog override changed: %s", event.Name)
				snap, err := c.load()
				if err != nil {
					logger.Warn("Catalog reload failed, keeping previous snapshot: %v", err)
					continue
				}
				c.mu.Lock()
				c.current = snap
				c.mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Catalog watcher error: %v", err)
			}
		}
	}()

	return nil
}
