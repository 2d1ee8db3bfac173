package gateway

import "github.com/valyala/fasthttp"

type callOptions struct {
	method      string
	cache       bool
	body        []byte
	contentType string
	headers     map[string]string
}

func newCallOptions(opts []RequestOption) callOptions {
	r := callOptions{
		method: fasthttp.MethodGet,
		cache:  true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// cacheable is true only for GETs that did not opt out. The cache key is the URL
// alone, so any other method would shadow the GET body stored under it.
func (r callOptions) cacheable() bool {
	return r.cache && r.method == fasthttp.MethodGet
}

// RequestOption configures one call to Gateway.Request.
type RequestOption func(*callOptions)

// Method sets the HTTP method. The default is GET.
func Method(m string) RequestOption {
	return func(r *callOptions) { r.method = m }
}

// NoCache makes a read bypass the cache in both directions.
func NoCache() RequestOption {
	return func(r *callOptions) { r.cache = false }
}

// Body attaches a raw request body with its content type.
func Body(b []byte, contentType string) RequestOption {
	return func(r *callOptions) {
		r.body = b
		r.contentType = contentType
	}
}

// Header adds a request header.
func Header(key, value string) RequestOption {
	return func(r *callOptions) {
		if r.headers == nil {
			r.headers = make(map[string]string)
		}
		r.headers[key] = value
	}
}
