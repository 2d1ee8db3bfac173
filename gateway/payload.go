package gateway

import (
	"mime"
	"strings"

	json "github.com/goccy/go-json"
)

/*
Payload is a successful response.

A cached Payload is shared by every caller that reads the same URL, so it
must be treated as read-only, Body included.
*/
type Payload struct {
	URL         string
	Status      int
	ContentType string
	Body        []byte
}

// Structured reports whether the response declared a JSON content type.
func (p *Payload) Structured() bool {
	return isStructured(p.ContentType)
}

// Decode unmarshals a structured body into v.
func (p *Payload) Decode(v any) error {
	if !p.Structured() {
		return &DecodeError{URL: p.URL, Err: errNotStructured(p.ContentType)}
	}
	if err := json.Unmarshal(p.Body, v); err != nil {
		return &DecodeError{URL: p.URL, Err: err}
	}
	return nil
}

type errNotStructured string

func (e errNotStructured) Error() string {
	return "content type " + string(e) + " is not structured"
}

func isStructured(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
