package gateway

import "strings"

const mediaSegment = "media"

// BuildURL joins endpoint to the base host. See JoinURL.
func (g *Gateway) BuildURL(endpoint string) string {
	return JoinURL(g.host, endpoint)
}

// BuildMediaURL resolves an asset path under the host's media root. See JoinMediaURL.
func (g *Gateway) BuildMediaURL(path string) string {
	return JoinMediaURL(g.host, path)
}

/*
JoinURL normalises endpoint and joins it to host.

Leading and repeated separators are dropped and the path gets exactly one
trailing separator, so "/api/profile", "api/profile/" and "api/profile" all
yield host + "/api/profile/". A query string is kept after the trailing
separator. Absolute URLs only have their path normalised, which makes JoinURL
idempotent on its own output. An empty endpoint yields host + "/".
*/
func JoinURL(host, endpoint string) string {
	host = strings.TrimRight(host, "/")

	origin := host
	if rest, ok := cutOrigin(host, endpoint); ok {
		endpoint = rest
	} else if o, rest, ok := splitAbsolute(endpoint); ok {
		origin, endpoint = o, rest
	}

	path, query, hasQuery := strings.Cut(endpoint, "?")

	var b strings.Builder
	b.WriteString(origin)
	b.WriteByte('/')
	if p := cleanPath(path); p != "" {
		b.WriteString(p)
		b.WriteByte('/')
	}
	if hasQuery {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return b.String()
}

/*
JoinMediaURL resolves path under host + "/media/".

Absolute http(s) URLs pass through unchanged. A relative path that already
starts with the media segment does not get a second one.
*/
func JoinMediaURL(host, path string) string {
	if path == "" {
		return ""
	}
	if isAbsolute(path) {
		return path
	}
	clean := strings.TrimLeft(path, "/")
	clean = strings.TrimPrefix(clean, mediaSegment+"/")
	return strings.TrimRight(host, "/") + "/" + mediaSegment + "/" + clean
}

// cutOrigin strips host from endpoint when endpoint is a URL on that host.
func cutOrigin(host, endpoint string) (string, bool) {
	if host == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(endpoint, host)
	if !ok {
		return "", false
	}
	if rest == "" || rest[0] == '/' || rest[0] == '?' {
		return rest, true
	}
	return "", false
}

// splitAbsolute splits "scheme://authority/rest" into origin and rest.
func splitAbsolute(s string) (origin, rest string, ok bool) {
	if !isAbsolute(s) {
		return "", "", false
	}
	i := strings.Index(s, "://") + len("://")
	j := strings.IndexAny(s[i:], "/?")
	if j < 0 {
		return s, "", true
	}
	return s[:i+j], s[i+j:], true
}

func isAbsolute(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func cleanPath(p string) string {
	parts := strings.Split(p, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "/")
}
