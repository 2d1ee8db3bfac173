// Package loader aggregates many independent, unreliable resource fetches into
// application-data snapshots using a two-stage, partial-failure-tolerant protocol.
package loader

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/krisalay/folio-data/loader"

// Section names accepted by PrefetchSection.
const (
	SectionAbout    = "about"
	SectionResume   = "resume"
	SectionProjects = "projects"
	SectionBlog     = "blog"
)

var sections = map[string][]Name{
	SectionAbout:    {Profile, Services, FunFacts},
	SectionResume:   {Experiences, Education, Skills},
	SectionProjects: {Projects},
	SectionBlog:     {BlogPosts},
}

// SectionNames lists the resources behind a section, or nil for an unknown section.
func SectionNames(section string) []Name {
	return append([]Name(nil), sections[section]...)
}

// Loader is the Data Loader.
type Loader struct {
	registry *Registry
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures a Loader.
type Option func(*Loader)

func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(ld *Loader) {
		if tp != nil {
			ld.tracer = tp.Tracer(tracerName)
		}
	}
}

func New(reg *Registry, opts ...Option) *Loader {
	l := &Loader{
		registry: reg,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Registry returns the declared resources.
func (l *Loader) Registry() *Registry { return l.registry }

/*
PrefetchEssential fetches the profile and social links concurrently and waits
for both to settle. Unlike the full stage nothing is replaced by a fallback:
the first paint depends on these, so any failure is returned. When both fail
the profile error is the one reported.
*/
func (l *Loader) PrefetchEssential(ctx context.Context) (Snapshot, error) {
	ctx, span := l.tracer.Start(ctx, "loader.essential")
	defer span.End()

	descs, err := l.registry.Lookup(EssentialNames...)
	if err != nil {
		return nil, l.stageFailed(ctx, span, "essential", err)
	}

	start := time.Now()
	l.logger.DebugContext(ctx, "prefetching essential data")

	outcomes := Settle(ctx, descs)
	snap := make(Snapshot, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			return nil, l.stageFailed(ctx, span, "essential", o.Err)
		}
		snap[o.Name] = o.Value
	}

	l.logger.InfoContext(ctx, "essential data ready", "elapsed", time.Since(start))
	return snap, nil
}

/*
PrefetchAll fetches every declared resource concurrently. A failed resource
is logged and replaced by its fallback, so the snapshot always carries every
key. The only error is a context that is already done, i.e. the
orchestration could not run at all.
*/
func (l *Loader) PrefetchAll(ctx context.Context) (Snapshot, error) {
	ctx, span := l.tracer.Start(ctx, "loader.full")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, l.stageFailed(ctx, span, "full", err)
	}

	start := time.Now()
	l.logger.DebugContext(ctx, "prefetching all data")

	snap, failed := l.resolve(ctx, l.registry.All())

	span.SetAttributes(attribute.Int("loader.failed", failed))
	l.logger.InfoContext(ctx, "prefetch completed",
		"elapsed", time.Since(start),
		"resources", len(snap),
		"failed", failed,
	)
	return snap, nil
}

/*
PrefetchSection fetches only the resources behind one section, with the
same fallback rules as PrefetchAll. An unknown section is logged and yields
an empty snapshot, not an error.
*/
func (l *Loader) PrefetchSection(ctx context.Context, section string) (Snapshot, error) {
	ctx, span := l.tracer.Start(ctx, "loader.section", trace.WithAttributes(attribute.String("loader.section", section)))
	defer span.End()

	names, ok := sections[section]
	if !ok {
		l.logger.WarnContext(ctx, "unknown section", "section", section)
		return Snapshot{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, l.stageFailed(ctx, span, "section", err)
	}
	descs, err := l.registry.Lookup(names...)
	if err != nil {
		l.logger.ErrorContext(ctx, "section not declared in registry", "section", section, "error", err)
		return Snapshot{}, nil
	}

	snap, _ := l.resolve(ctx, descs)
	return snap, nil
}

// resolve settles descs and swaps every failure for its fallback.
func (l *Loader) resolve(ctx context.Context, descs []Descriptor) (Snapshot, int) {
	outcomes := Settle(ctx, descs)

	snap := make(Snapshot, len(descs))
	failed := 0
	for i, o := range outcomes {
		if o.Err != nil {
			failed++
			l.logger.WarnContext(ctx, "failed to load resource, using fallback",
				"resource", string(o.Name),
				"error", o.Err,
			)
			snap[o.Name] = descs[i].Fallback
			continue
		}
		snap[o.Name] = o.Value
	}
	return snap, failed
}

func (l *Loader) stageFailed(ctx context.Context, span trace.Span, stage string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	l.logger.ErrorContext(ctx, "prefetch failed", "stage", stage, "error", err)
	return err
}
