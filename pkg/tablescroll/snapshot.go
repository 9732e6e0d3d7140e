package tablescroll

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablefit/pkg/cache"
)

// Snapshot persists committed heights between runs.
type Snapshot interface {
	// Load returns the last height saved for table.
	Load(ctx context.Context, table string) (int, bool)
	// Save records height for table. Failures are the snapshot's problem.
	Save(ctx context.Context, table string, height int)
}

// CacheSnapshot is a Snapshot stored in a cache. Heights are keyed by the
// table and the environment they were measured in, so a height from a
// larger terminal is never reused in a smaller one.
type CacheSnapshot struct {
	cache  cache.Cache
	keyer  cache.Keyer
	env    cache.HeightKeyOpts
	ttl    time.Duration
	logger *log.Logger
}

// DefaultSnapshotTTL is how long a saved height stays valid.
const DefaultSnapshotTTL = 30 * 24 * time.Hour

// NewCacheSnapshot creates a snapshot over c. A nil keyer uses the default
// keyer; a nil logger uses log.Default().
func NewCacheSnapshot(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *CacheSnapshot {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CacheSnapshot{cache: c, keyer: keyer, ttl: DefaultSnapshotTTL, logger: logger}
}

// SetEnv sets the environment used in keys from now on.
func (s *CacheSnapshot) SetEnv(env cache.HeightKeyOpts) { s.env = env }

// Env returns the current key environment.
func (s *CacheSnapshot) Env() cache.HeightKeyOpts { return s.env }

// Load implements Snapshot.
func (s *CacheSnapshot) Load(ctx context.Context, table string) (int, bool) {
	var h int
	err := cache.GetJSON(ctx, s.cache, "height", s.keyer.HeightKey(table, s.env), &h)
	if errors.Is(err, cache.ErrCacheMiss) {
		return 0, false
	}
	if err != nil {
		s.logger.Warn("load saved height", "table", table, "err", err)
		return 0, false
	}
	return h, true
}

// Save implements Snapshot.
func (s *CacheSnapshot) Save(ctx context.Context, table string, height int) {
	if err := cache.SetJSON(ctx, s.cache, "height", s.keyer.HeightKey(table, s.env), height, s.ttl); err != nil {
		s.logger.Warn("save height", "table", table, "err", err)
	}
}
