// Package gateway turns logical resource requests into normalised responses,
// reading and writing the shared response cache along the way.
package gateway

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/krisalay/folio-data/api"
)

const tracerName = "github.com/krisalay/folio-data/gateway"

/*
Gateway is the Request Gateway.

For a cacheable read it first looks up the fully built URL in the cache and
returns the stored Payload without touching the network. On a miss it issues
the call under a bounded timeout, classifies failures into TimeoutError,
HTTPError, NetworkError or DecodeError, and writes a successful response back
to the cache before returning it.

The gateway never mutates anything but the cache it was given.
*/
type Gateway struct {
	host   string
	cache  api.Cache
	client *fasthttp.Client
	dial   fasthttp.DialFunc

	timeout  time.Duration
	ttl      time.Duration
	coalesce bool
	group    singleflight.Group

	logger *slog.Logger
	tracer trace.Tracer
}

/*
New builds a gateway for host. store may be nil, in which case every read
goes to the network.
*/
func New(host string, store api.Cache, opts ...Option) *Gateway {
	g := &Gateway{
		host:    trimHost(host),
		cache:   store,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = &fasthttp.Client{
			Name:                "folio-data",
			ReadTimeout:         g.timeout,
			WriteTimeout:        g.timeout,
			MaxIdleConnDuration: 90 * time.Second,
			Dial:                g.dial,
		}
	}
	return g
}

// Host is the normalised base host.
func (g *Gateway) Host() string { return g.host }

// Request executes one logical request against endpoint.
func (g *Gateway) Request(ctx context.Context, endpoint string, opts ...RequestOption) (*Payload, error) {
	call := newCallOptions(opts)
	url := g.BuildURL(endpoint)

	if !call.cacheable() || g.cache == nil {
		return g.do(ctx, url, call)
	}

	if v, ok := g.cache.Get(url); ok {
		if p, ok := v.(*Payload); ok {
			return p, nil
		}
	}

	if !g.coalesce {
		return g.fetchAndStore(ctx, url, call)
	}
	v, err, _ := g.group.Do(url, func() (any, error) {
		return g.fetchAndStore(ctx, url, call)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Payload), nil
}

// Get is Request with the default read options.
func (g *Gateway) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*Payload, error) {
	return g.Request(ctx, endpoint, opts...)
}

// Invalidate drops the cached read for endpoint, typically after a write to it.
func (g *Gateway) Invalidate(endpoint string) {
	if g.cache != nil {
		g.cache.Clear(g.BuildURL(endpoint))
	}
}

func (g *Gateway) fetchAndStore(ctx context.Context, url string, call callOptions) (*Payload, error) {
	p, err := g.do(ctx, url, call)
	if err != nil {
		return nil, err
	}
	g.cache.SetWithTTL(url, p, g.ttl)
	return p, nil
}

func (g *Gateway) do(ctx context.Context, url string, call callOptions) (*Payload, error) {
	ctx, span := g.tracer.Start(ctx, "gateway "+call.method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", call.method),
			attribute.String("url.full", url),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, g.fail(ctx, span, call.method, classify(url, 0, err))
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(call.method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if call.body != nil {
		req.Header.SetContentType(call.contentType)
		req.SetBody(call.body)
	}
	for k, v := range call.headers {
		req.Header.Set(k, v)
	}

	deadline := time.Now().Add(g.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	budget := time.Until(deadline)

	if err := g.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, g.fail(ctx, span, call.method, classify(url, budget, err))
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, g.fail(ctx, span, call.method, &HTTPError{
			Status: status,
			URL:    url,
			Body:   bytes.Clone(resp.Body()),
		})
	}

	p := &Payload{
		URL:         url,
		Status:      status,
		ContentType: string(resp.Header.ContentType()),
		Body:        bytes.Clone(resp.Body()),
	}
	if p.Structured() && len(bytes.TrimSpace(p.Body)) > 0 && !gjson.ValidBytes(p.Body) {
		return nil, g.fail(ctx, span, call.method, &DecodeError{URL: url, Err: errMalformedJSON})
	}
	return p, nil
}

func (g *Gateway) fail(ctx context.Context, span trace.Span, method string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	g.logger.ErrorContext(ctx, "api call failed", "method", method, "url", urlOf(err), "error", err)
	return err
}

func urlOf(err error) string {
	switch e := err.(type) {
	case *TimeoutError:
		return e.URL
	case *HTTPError:
		return e.URL
	case *NetworkError:
		return e.URL
	case *DecodeError:
		return e.URL
	}
	return ""
}

type gatewayError string

func (e gatewayError) Error() string { return string(e) }

const errMalformedJSON = gatewayError("malformed JSON payload")

func trimHost(h string) string {
	for len(h) > 0 && h[len(h)-1] == '/' {
		h = h[:len(h)-1]
	}
	return h
}
