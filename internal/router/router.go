// Package router implements the three-tier routing pipeline: a deterministic
// direct matcher (Tier 1), a deterministic trigger matcher (Tier 2), and an
// LLM-backed discovery fallback (Tier 3). A query resolves at the first
// tier that produces a match; later tiers are never invoked once an earlier
// one succeeds — LLM calls cost money and latency, and that cost is only
// paid when the deterministic tiers both decline.
package router

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/klauern/skillrouter/internal/dependency"
	"github.com/klauern/skillrouter/internal/discovery"
	"github.com/klauern/skillrouter/internal/logging"
	"github.com/klauern/skillrouter/internal/match"
	"github.com/klauern/skillrouter/internal/model"
	"github.com/klauern/skillrouter/internal/normalize"
)

// Config tunes the deterministic tiers. Zero values fall back to the
// package defaults.
type Config struct {
	// DirectPatterns overrides match.DefaultPatterns for Tier 1.
	DirectPatterns []string
	// TriggerThreshold overrides match.DefaultThreshold for Tier 2.
	TriggerThreshold float64
}

func (c Config) patterns() []string {
	if c.DirectPatterns != nil {
		return c.DirectPatterns
	}
	return match.DefaultPatterns()
}

func (c Config) threshold() float64 {
	if c.TriggerThreshold == 0 {
		return match.DefaultThreshold
	}
	return c.TriggerThreshold
}

// Router holds an atomically-swappable catalog snapshot and routes queries
// against it. It is safe for concurrent use: routing a query never mutates
// shared state, and Swap replaces the snapshot pointer in a single atomic
// store. Swap does not load or validate; its caller passes a catalog that
// has already loaded and validated.
type Router struct {
	cfg      Config
	logger   *slog.Logger
	discover *discovery.Discoverer
	catalog  atomic.Pointer[model.Catalog]
}

// New constructs a Router over an initial catalog. provider may be nil, in
// which case Tier 3 is skipped entirely and an undecided query resolves
// straight to Error — useful for deployments that never configure an LLM
// credential.
func New(cat *model.Catalog, provider discovery.Provider, cfg Config, logger *slog.Logger) *Router {
	r := &Router{
		cfg:    cfg,
		logger: logger.With("component", "router"),
	}
	if provider != nil {
		r.discover = discovery.New(provider)
	}
	r.catalog.Store(cat)
	return r
}

// Catalog returns the current catalog snapshot.
func (r *Router) Catalog() *model.Catalog {
	return r.catalog.Load()
}

// Swap atomically replaces the catalog snapshot. An in-flight Route call
// observes either the old or the new snapshot in its entirety, never a mix.
func (r *Router) Swap(cat *model.Catalog) {
	r.catalog.Store(cat)
}

// Route resolves a single raw query into a RouteResult. Tier k's output is
// observable only after Tier k-1 has declined to match.
func (r *Router) Route(ctx context.Context, rawQuery string) model.RouteResult {
	start := time.Now()
	cat := r.catalog.Load()

	normalized := normalize.Query(rawQuery)
	if normalized == "" {
		r.logger.Debug("empty query after normalization", logging.Query(rawQuery))
		return model.ErrorRoute()
	}

	if dm, ok := match.Direct(normalized, cat.SkillList(), r.cfg.patterns()); ok {
		result := r.resolveSkill(cat, dm.Skill, 1, dm.Confidence)
		r.log(result, rawQuery, start)
		return result
	}

	if tm, ok := match.Trigger(normalized, cat.TaskList(), r.cfg.threshold()); ok {
		result := r.resolveTask(cat, tm.Task, tm.Skills, 2, 1.0)
		r.log(result, rawQuery, start)
		return result
	}

	if r.discover == nil {
		r.logger.Debug("no discovery provider configured, falling through to error", logging.Query(rawQuery))
		return model.ErrorRoute()
	}

	result := r.routeDiscovery(ctx, cat, rawQuery)
	r.log(result, rawQuery, start)
	return result
}

// routeDiscovery invokes Tier 3 and interprets its top match. A name the
// LLM proposes that is not actually in the catalog is never accepted — that
// is treated as a hallucination and degrades to Error, the same as a
// transport failure or an empty match list.
func (r *Router) routeDiscovery(ctx context.Context, cat *model.Catalog, rawQuery string) model.RouteResult {
	result, err := r.discover.Discover(ctx, rawQuery, cat)
	if err != nil {
		r.logger.Warn("discovery call failed", logging.Err(err))
		return model.ErrorRoute()
	}
	if result.Err != nil {
		r.logger.Warn("discovery response unusable", logging.Err(result.Err))
		return model.ErrorRoute()
	}

	top, ok := result.Top()
	if !ok {
		return model.ErrorRoute()
	}

	switch top.Type {
	case discovery.MatchSkill:
		if !cat.HasSkill(top.Name) {
			r.logger.Warn("discovery proposed an unknown skill", logging.Skill(top.Name))
			return model.ErrorRoute()
		}
		return r.resolveSkill(cat, top.Name, 3, top.Confidence)
	case discovery.MatchTask:
		task, ok := cat.Tasks[top.Name]
		if !ok {
			r.logger.Warn("discovery proposed an unknown task", logging.Task(top.Name))
			return model.ErrorRoute()
		}
		return r.resolveTask(cat, task.Name, task.Skills, 3, top.Confidence)
	default:
		return model.ErrorRoute()
	}
}

// resolveSkill resolves a single skill's dependency closure into a route
// result. The skill itself is the sole primary. A Tier 3 call is labeled
// Discovery, never Skill, so a consumer can always tell an LLM guess apart
// from a deterministic match.
func (r *Router) resolveSkill(cat *model.Catalog, name string, tier int, confidence float64) model.RouteResult {
	dep := dependency.Resolve(cat, name)
	routeType := model.RouteSkill
	if tier == 3 {
		routeType = model.RouteDiscovery
	}
	return model.RouteResult{
		Type:           routeType,
		Matched:        name,
		Skills:         []string{name},
		ExecutionOrder: dep.Order,
		Tier:           tier,
		Confidence:     confidence,
		Warnings:       dep.Warnings,
		HasCycle:       dep.HasCycle,
	}
}

// resolveTask resolves a task's declared skill set into a route result.
// Primary is always the task's own declared skill list, never the expanded
// execution order. A Tier 3 call is labeled Discovery, never Task, so a
// consumer can always tell an LLM guess apart from a deterministic match.
func (r *Router) resolveTask(cat *model.Catalog, name string, skills []string, tier int, confidence float64) model.RouteResult {
	dep := dependency.ResolveMulti(cat, skills)
	routeType := model.RouteTask
	if tier == 3 {
		routeType = model.RouteDiscovery
	}
	return model.RouteResult{
		Type:           routeType,
		Matched:        name,
		Skills:         skills,
		ExecutionOrder: dep.Order,
		Tier:           tier,
		Confidence:     confidence,
		Warnings:       dep.Warnings,
		HasCycle:       dep.HasCycle,
	}
}

func (r *Router) log(result model.RouteResult, rawQuery string, start time.Time) {
	r.logger.Info("routed query",
		logging.RouteType(string(result.Type)),
		slog.String("matched", result.Matched),
		logging.Tier(result.Tier),
		slog.Duration(logging.KeyDuration, time.Since(start)),
	)
	for _, w := range result.Warnings {
		r.logger.Warn("routing warning", logging.Warning(w.Message))
	}
}
