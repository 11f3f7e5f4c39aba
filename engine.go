// Package quakerisk classifies earthquakes against country polygons, derives
// magnitude-scaled threat circles and drives the focus/unfocus visibility
// protocol between earthquakes and cities.
//
// Regions are loaded once and never change. Events and cities are loaded
// once per session; classification tags events once, and each selection
// action rewrites visibility flags. Nothing here is safe for concurrent
// mutation: the host runs one action at a time.
//
//	regions, err := quakerisk.BuildRegions(records)
//	eng, err := quakerisk.NewEngine(regions, quakerisk.WithLogger(logger))
//	tally := eng.ClassifyAll(events)
//	sess := eng.NewSession(events, cities)
//	sess.Select(quakerisk.Target{Event: events[0]})
package quakerisk

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config contains the engine options.
type Config struct {
	CacheDir string // Directory for the region cache (default: "./quakerisk-cache")
	Logger   *zap.Logger
	Metrics  *Metrics
	Clock    clockwork.Clock
}

// Option is a functional option for configuring an Engine.
type Option func(*Config)

// WithCacheDir sets the directory for the region cache.
func WithCacheDir(dir string) Option {
	return func(c *Config) {
		c.CacheDir = dir
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithClock sets the time source used to stamp tallies.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		CacheDir: "./quakerisk-cache",
		Logger:   zap.NewNop(),
		Clock:    clockwork.NewRealClock(),
	}
}

// Engine holds an immutable region set and the ambient collaborators.
type Engine struct {
	regions []*Region
	config  *Config
	log     *zap.Logger
}

// NewEngine creates an engine over regions, which are tested in the given
// order during classification.
func NewEngine(regions []*Region, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := ValidateRegions(regions); err != nil {
		return nil, err
	}

	e := &Engine{regions: regions, config: cfg, log: cfg.Logger}
	if cfg.Metrics != nil {
		cfg.Metrics.RegionsLoaded.Set(float64(len(regions)))
	}
	e.log.Debug("engine ready", zap.Int("regions", len(regions)))
	return e, nil
}

// NewEngineFromCache creates an engine from the region cache written by
// RegenerateCache.
func NewEngineFromCache(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	regions, err := loadRegions(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load region cache: %w", err)
	}
	return NewEngine(regions, opts...)
}

// RegenerateCache decodes a GeoJSON country file, validates it and writes
// the region cache. It returns the regions that were stored.
func RegenerateCache(geojsonPath string, opts ...Option) ([]*Region, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	fh, err := os.Open(geojsonPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", geojsonPath, err)
	}
	defer fh.Close()

	records, err := DecodeRegions(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to decode regions: %w", err)
	}
	regions, err := BuildRegions(records)
	if err != nil {
		return nil, err
	}
	if err := ValidateRegions(regions); err != nil {
		return nil, err
	}
	if err := storeRegions(cfg.CacheDir, regions); err != nil {
		return nil, fmt.Errorf("failed to store cache: %w", err)
	}
	cfg.Logger.Info("region cache regenerated",
		zap.String("source", geojsonPath),
		zap.String("cache_dir", cfg.CacheDir),
		zap.Int("regions", len(regions)))
	return regions, nil
}

// ValidateRegions checks a region set before it is used: it must be
// non-empty, IDs must be unique and every region must hold at least one
// polygon with a non-empty bound.
func ValidateRegions(regions []*Region) error {
	if len(regions) == 0 {
		return malformed("region", -1, "set", "no regions")
	}
	seen := make(map[string]bool, len(regions))
	for i, r := range regions {
		if r == nil {
			return malformed("region", i, "set", "nil region")
		}
		if seen[r.ID] {
			return malformed("region", i, "id", "duplicate region id %q", r.ID)
		}
		seen[r.ID] = true
		if len(r.Polygons) == 0 {
			return malformed("region", i, "polygons", "region %q has no polygons", r.ID)
		}
		for j, pg := range r.Polygons {
			if pg.Bound().IsEmpty() {
				return malformed("region", i, "polygons", "region %q polygon %d has an empty bound", r.ID, j)
			}
		}
	}
	return nil
}

// Regions returns the engine's regions in classification order.
func (e *Engine) Regions() []*Region {
	return e.regions
}

// Classify classifies a single event against the engine's regions.
func (e *Engine) Classify(ev *Event) (string, bool) {
	id, ok := Classify(ev, e.regions)
	if ok {
		e.log.Debug("event on land", zap.String("title", ev.Title), zap.String("region", id))
	} else {
		e.log.Debug("event oceanic", zap.String("title", ev.Title))
	}
	return id, ok
}

// ClassifyAll tags every event and returns a fresh, timestamped tally.
func (e *Engine) ClassifyAll(events []*Event) RiskTally {
	start := e.config.Clock.Now()
	for _, ev := range events {
		e.Classify(ev)
	}
	t := Aggregate(events, e.regions)
	t.GeneratedAt = e.config.Clock.Now()

	if m := e.config.Metrics; m != nil {
		for _, ev := range events {
			m.EventsClassified.WithLabelValues(ev.Kind().String()).Inc()
		}
		m.ClassifyDuration.Observe(t.GeneratedAt.Sub(start).Seconds())
	}
	e.log.Info("classification pass complete",
		zap.Int("events", t.Total),
		zap.Int("land", t.Landed()),
		zap.Int("ocean", t.Oceanic()),
		zap.Int("regions_hit", len(t.Counts)))
	return t
}

// Severity returns the severity figures for an event.
func (e *Engine) Severity(ev *Event) Severity {
	return SeverityOf(ev)
}

// OnSelect applies a selection action; see the package-level OnSelect.
func (e *Engine) OnSelect(sel Selection, target Target, events []*Event, cities []*City) Selection {
	next := OnSelect(sel, target, events, cities)
	e.recordTransition(transitionOf(sel, target), next)
	return next
}

// OnDeselect clears all hidden flags.
func (e *Engine) OnDeselect(events []*Event, cities []*City) Selection {
	next := OnDeselect(events, cities)
	e.recordTransition(transitionDeselect, next)
	return next
}

const (
	transitionFocusEvent = "focus_event"
	transitionFocusCity  = "focus_city"
	transitionDeselect   = "deselect"
	transitionNoop       = "noop"
)

// transitionOf names the transition OnSelect takes from sel on target.
func transitionOf(sel Selection, target Target) string {
	switch {
	case sel.State() == Focused:
		return transitionDeselect
	case target.Event != nil:
		return transitionFocusEvent
	case target.City != nil:
		return transitionFocusCity
	default:
		return transitionNoop
	}
}

func (e *Engine) recordTransition(transition string, next Selection) {
	e.log.Debug("selection", zap.String("transition", transition), zap.Stringer("state", next.State()))
	if m := e.config.Metrics; m != nil {
		m.SelectionTransitions.WithLabelValues(transition).Inc()
	}
}
