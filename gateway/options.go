package gateway

import (
	"log/slog"
	"time"

	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds every network call the gateway makes.
const DefaultTimeout = 30 * time.Second

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithClient replaces the fasthttp client, e.g. to tune connection pooling.
func WithClient(c *fasthttp.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// WithDialer makes the default client dial through d. Tests pass an in-memory listener.
func WithDialer(d fasthttp.DialFunc) Option {
	return func(g *Gateway) { g.dial = d }
}

// WithCacheTTL sets the TTL used when writing responses back to the cache.
// Zero keeps the cache's own default.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Gateway) { g.ttl = ttl }
}

/*
WithCoalescing makes concurrent cacheable reads of the same URL share one
network call. It is off by default: without it, overlapping reads of an
uncached URL each hit the network and the last response written wins the
cache slot.
*/
func WithCoalescing(enabled bool) Option {
	return func(g *Gateway) { g.coalesce = enabled }
}

// WithLogger sets the logger for request failures.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gateway) {
		if tp != nil {
			g.tracer = tp.Tracer(tracerName)
		}
	}
}
