// Package folio implements the folio command: run one loader session against
// the content service and report what each stage produced.
package folio

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	cache "github.com/krisalay/folio-data"
	"github.com/krisalay/folio-data/config"
	"github.com/krisalay/folio-data/gateway"
	"github.com/krisalay/folio-data/loader"
	"github.com/krisalay/folio-data/resource"
	"github.com/krisalay/folio-data/telemetry"
	"github.com/krisalay/folio-data/types"
)

// Config holds the folio command configuration.
type Config struct {
	APIURL       string
	Section      string
	Timeout      time.Duration
	Coalesce     bool
	LogLevel     slog.Level
	OTelEndpoint string
}

// ParseConfig starts from the environment and lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	envCfg, err := config.Load()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		APIURL:       envCfg.APIURL,
		Timeout:      gateway.DefaultTimeout,
		LogLevel:     envCfg.Level(),
		OTelEndpoint: envCfg.OTelEndpoint,
	}

	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "content service base URL")
	fs.StringVar(&cfg.Section, "section", "", "prefetch a single section (about, resume, projects, blog) instead of a full session")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	fs.BoolVar(&cfg.Coalesce, "coalesce", false, "share one network call between concurrent reads of the same URL")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run wires cache, gateway, fetchers and loader, then runs one session (or one section).
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))

	shutdown, err := telemetry.Setup(ctx, "folio-data", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	metrics := &types.Counters{}
	store, err := cache.NewShardedCache(cache.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	gw := gateway.New(cfg.APIURL, store,
		gateway.WithTimeout(cfg.Timeout),
		gateway.WithCoalescing(cfg.Coalesce),
		gateway.WithLogger(logger),
	)
	ld := loader.New(loader.DefaultRegistry(resource.NewClient(gw)), loader.WithLogger(logger))

	if cfg.Section != "" {
		snap, err := ld.PrefetchSection(ctx, cfg.Section)
		if err != nil {
			return err
		}
		printSnapshot(out, "SECTION "+cfg.Section, snap)
		printMetrics(out, metrics.Snapshot())
		return nil
	}

	session := ld.NewSession(func(state loader.State, snap loader.Snapshot) {
		switch state {
		case loader.StateEssentialReady, loader.StateFullReady:
			printSnapshot(out, state.String(), snap)
		default:
			fmt.Fprintf(out, "SESSION → %s\n", state)
		}
	})
	if err := session.Run(ctx); err != nil {
		fmt.Fprintln(out, loader.PublicMessage(err))
		return fmt.Errorf("session %s: %w", session.ID(), err)
	}

	// A second pass is served from the cache.
	if _, err := ld.PrefetchAll(ctx); err != nil {
		return err
	}
	printMetrics(out, metrics.Snapshot())
	return nil
}

func printSnapshot(out io.Writer, title string, snap loader.Snapshot) {
	fmt.Fprintf(out, "\n==================== %s ====================\n", title)
	if _, ok := snap[loader.Profile]; ok {
		if p := snap.Profile(); p != nil {
			fmt.Fprintf(out, "%-13s: %s (%s)\n", loader.Profile, p.FullName, p.Title)
		} else {
			fmt.Fprintf(out, "%-13s: none\n", loader.Profile)
		}
	}
	for _, name := range snap.Names() {
		if name == loader.Profile {
			continue
		}
		fmt.Fprintf(out, "%-13s: %d\n", name, count(snap[name]))
	}
}

func count(v any) int {
	switch items := v.(type) {
	case []resource.SocialLink:
		return len(items)
	case []resource.Service:
		return len(items)
	case []resource.FunFact:
		return len(items)
	case []resource.Experience:
		return len(items)
	case []resource.Education:
		return len(items)
	case []resource.Skill:
		return len(items)
	case []resource.Project:
		return len(items)
	case []resource.BlogPost:
		return len(items)
	case []resource.SidenavItem:
		return len(items)
	case []resource.Testimonial:
		return len(items)
	}
	return 0
}

func printMetrics(out io.Writer, m types.CounterSnapshot) {
	fmt.Fprintln(out, "\n==================== CACHE ====================")
	fmt.Fprintf(out, "HITS      : %d\n", m.Hits)
	fmt.Fprintf(out, "MISSES    : %d\n", m.Misses)
	fmt.Fprintf(out, "EVICTIONS : %d\n", m.Evictions)
	fmt.Fprintf(out, "EXPIRED   : %d\n", m.Expired)
}
