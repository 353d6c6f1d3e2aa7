// SPDX-License-Identifier: MIT

package memo

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/lvlset/catalog"
	"github.com/katalvlaran/lvlset/lebesgue"
	"github.com/katalvlaran/lvlset/levelset"
	"github.com/katalvlaran/lvlset/measure"
	"github.com/katalvlaran/lvlset/riemann"
	"github.com/katalvlaran/lvlset/sampler"
)

const (
	// DefaultTTL is how long a cached result lives.
	DefaultTTL = 10 * time.Minute

	// DefaultCleanupInterval is how often expired entries are purged.
	DefaultCleanupInterval = 20 * time.Minute
)

// Stats counts cache traffic since the Engine was created.
type Stats struct {
	Hits   uint64
	Misses uint64
	Items  int
}

// Engine is a memoizing front for the riemann, measure, levelset and lebesgue packages.
type Engine struct {
	store     *cache.Cache
	logger    *slog.Logger
	tolerance float64
	hits      atomic.Uint64
	misses    atomic.Uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithTolerance sets the relative band tolerance passed to levelset
// (levelset.DefaultTolerance by default).
func WithTolerance(rel float64) Option {
	return func(e *Engine) { e.tolerance = rel }
}

// New returns an Engine whose entries expire after ttl (DefaultTTL when ≤ 0).
// A nil logger discards log output.
func New(ttl time.Duration, logger *slog.Logger, opts ...Option) *Engine {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cleanup := DefaultCleanupInterval
	if ttl > cleanup {
		cleanup = ttl
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		store:     cache.New(ttl, cleanup),
		logger:    logger.With("component", "memo"),
		tolerance: levelset.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Stats returns a snapshot of the hit/miss counters and the live item count.
func (e *Engine) Stats() Stats {
	return Stats{Hits: e.hits.Load(), Misses: e.misses.Load(), Items: e.store.ItemCount()}
}

// Flush drops every cached result.
func (e *Engine) Flush() { e.store.Flush() }

// RiemannSum memoizes riemann.Sum over spec.Domain.
func (e *Engine) RiemannSum(spec catalog.FunctionSpec, partitions int, rule riemann.Rule, res sampler.Resolution, rectangles bool) (riemann.Result, error) {
	key := makeKey("riemann", spec, partitions, rule, res, rectangles)

	return memoize(e, spec, key, cloneResult, func() (riemann.Result, error) {
		opts := []riemann.Option{riemann.WithResolution(res)}
		if !rectangles {
			opts = append(opts, riemann.WithoutRectangles())
		}

		return riemann.Sum(spec.Fn, spec.Domain, partitions, rule, opts...)
	})
}

// Superlevel memoizes measure.Superlevel over spec.Domain.
func (e *Engine) Superlevel(spec catalog.FunctionSpec, t float64, samples int) (float64, error) {
	key := makeKey("superlevel", spec, t, samples)

	return memoize(e, spec, key, identity[float64], func() (float64, error) {
		return measure.Superlevel(spec.Fn, spec.Domain, t, measure.WithSamples(samples))
	})
}

// LevelSlices memoizes levelset.LevelSlices over spec.Domain.
func (e *Engine) LevelSlices(spec catalog.FunctionSpec, valueRange sampler.Domain, levels, samples int) ([]levelset.Slice, error) {
	key := makeKey("levels", spec, valueRange, levels, samples, e.tolerance)

	return memoize(e, spec, key, cloneSlices, func() ([]levelset.Slice, error) {
		return levelset.LevelSlices(spec.Fn, spec.Domain, valueRange, levels, levelset.WithSamples(samples), levelset.WithTolerance(e.tolerance))
	})
}

// LayerCake memoizes levelset.LayerCake over spec.Domain.
func (e *Engine) LayerCake(spec catalog.FunctionSpec, valueRange sampler.Domain, levels, samples int) ([]levelset.Slice, error) {
	key := makeKey("layercake", spec, valueRange, levels, samples, e.tolerance)

	return memoize(e, spec, key, cloneSlices, func() ([]levelset.Slice, error) {
		return levelset.LayerCake(spec.Fn, spec.Domain, valueRange, levels, levelset.WithSamples(samples), levelset.WithTolerance(e.tolerance))
	})
}

// SliceAt memoizes levelset.SliceAt over spec.Domain.
func (e *Engine) SliceAt(spec catalog.FunctionSpec, t, dt float64, samples int) (levelset.Slice, error) {
	key := makeKey("probe", spec, t, dt, samples)

	return memoize(e, spec, key, levelset.Slice.Clone, func() (levelset.Slice, error) {
		return levelset.SliceAt(spec.Fn, spec.Domain, t, dt, levelset.WithSamples(samples))
	})
}

// MeasureCurve memoizes lebesgue.MeasureCurve over spec.Domain.
func (e *Engine) MeasureCurve(spec catalog.FunctionSpec, valueRange sampler.Domain, steps, samples int) ([]lebesgue.CurvePoint, error) {
	key := makeKey("curve", spec, valueRange, steps, samples)

	return memoize(e, spec, key, cloneCurve, func() ([]lebesgue.CurvePoint, error) {
		return lebesgue.MeasureCurve(spec.Fn, spec.Domain, valueRange, steps, lebesgue.WithSamples(samples))
	})
}

// IntegrateMeasureCurve memoizes lebesgue.IntegrateMeasureCurve over spec.Domain.
func (e *Engine) IntegrateMeasureCurve(spec catalog.FunctionSpec, valueRange sampler.Domain, samples int) (float64, error) {
	key := makeKey("integral", spec, valueRange, samples)

	return memoize(e, spec, key, identity[float64], func() (float64, error) {
		return lebesgue.IntegrateMeasureCurve(spec.Fn, spec.Domain, valueRange, lebesgue.WithSamples(samples))
	})
}

// SignedIntegral memoizes lebesgue.SignedIntegral over spec.Domain.
func (e *Engine) SignedIntegral(spec catalog.FunctionSpec, valueRange sampler.Domain, samples int) (float64, error) {
	key := makeKey("signed", spec, valueRange, samples)

	return memoize(e, spec, key, identity[float64], func() (float64, error) {
		return lebesgue.SignedIntegral(spec.Fn, spec.Domain, valueRange, lebesgue.WithSamples(samples))
	})
}

// memoize validates spec, serves key from the store or computes, stores and
// returns a clone of the value.
func memoize[T any](e *Engine, spec catalog.FunctionSpec, key string, clone func(T) T, compute func() (T, error)) (T, error) {
	var zero T
	if err := spec.Validate(); err != nil {
		e.logger.Warn("refusing to sample", "function", spec.Name, "error", err)

		return zero, err
	}

	if v, ok := e.store.Get(key); ok {
		if cached, ok := v.(T); ok {
			e.hits.Add(1)
			e.logger.Debug("cache hit", "key", key)

			return clone(cached), nil
		}
	}

	e.misses.Add(1)
	v, err := compute()
	if err != nil {
		e.logger.Debug("compute failed", "key", key, "error", err)

		return zero, err
	}
	e.store.Set(key, clone(v), cache.DefaultExpiration)
	e.logger.Debug("cache miss", "key", key)

	return v, nil
}

// makeKey renders op|id|domain|params with %v; float params print exactly via %v.
func makeKey(op string, spec catalog.FunctionSpec, params ...any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s", op, spec.ID, spec.Domain)
	for _, p := range params {
		fmt.Fprintf(&b, "|%v", p)
	}

	return b.String()
}

func identity[T any](v T) T { return v }

func cloneResult(r riemann.Result) riemann.Result {
	if r.Rectangles != nil {
		r.Rectangles = append([]riemann.Rectangle(nil), r.Rectangles...)
	}
	if r.Failures != nil {
		r.Failures = append([]*sampler.EvalError(nil), r.Failures...)
	}

	return r
}

func cloneSlices(in []levelset.Slice) []levelset.Slice {
	out := make([]levelset.Slice, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}

	return out
}

func cloneCurve(in []lebesgue.CurvePoint) []lebesgue.CurvePoint {
	return append([]lebesgue.CurvePoint(nil), in...)
}
