package resource

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/krisalay/folio-data/gateway"
)

// resultsField is where paginated list responses carry their items.
const resultsField = "results"

/*
List is the one place list responses are normalised.

It accepts either a bare JSON array or an object carrying the array under
"results", and always returns a non-nil slice. An empty or null body, or an
object with no "results", is an empty list. Anything else is a
*gateway.DecodeError.
*/
func List[T any](p *gateway.Payload) ([]T, error) {
	raw, err := listRaw(p)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &gateway.DecodeError{URL: p.URL, Err: err}
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

/*
One resolves a response to a single entity. The backend may answer with the
object itself or with a list holding it; a list resolves to its first
element and an empty list resolves to nil.
*/
func One[T any](p *gateway.Payload) (*T, error) {
	doc, err := parse(p)
	if err != nil {
		return nil, err
	}
	switch {
	case !doc.Exists() || doc.Type == gjson.Null:
		return nil, nil
	case doc.IsArray():
		first := doc.Get("0")
		if !first.Exists() || first.Type == gjson.Null {
			return nil, nil
		}
		doc = first
	case !doc.IsObject():
		return nil, &gateway.DecodeError{URL: p.URL, Err: errors.Errorf("expected object or list, got %s", doc.Type)}
	}

	var v T
	if err := json.Unmarshal([]byte(doc.Raw), &v); err != nil {
		return nil, &gateway.DecodeError{URL: p.URL, Err: err}
	}
	return &v, nil
}

func listRaw(p *gateway.Payload) (string, error) {
	doc, err := parse(p)
	if err != nil {
		return "", err
	}
	switch {
	case !doc.Exists() || doc.Type == gjson.Null:
		return "", nil
	case doc.IsArray():
		return doc.Raw, nil
	case doc.IsObject():
		results := doc.Get(resultsField)
		if !results.Exists() || results.Type == gjson.Null {
			return "", nil
		}
		if !results.IsArray() {
			return "", &gateway.DecodeError{URL: p.URL, Err: errors.Errorf("%q is not a list", resultsField)}
		}
		return results.Raw, nil
	default:
		return "", &gateway.DecodeError{URL: p.URL, Err: errors.Errorf("expected list, got %s", doc.Type)}
	}
}

func parse(p *gateway.Payload) (gjson.Result, error) {
	if p == nil {
		return gjson.Result{}, nil
	}
	if !p.Structured() {
		return gjson.Result{}, &gateway.DecodeError{URL: p.URL, Err: errors.Errorf("content type %q is not structured", p.ContentType)}
	}
	if len(bytes.TrimSpace(p.Body)) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(p.Body) {
		return gjson.Result{}, &gateway.DecodeError{URL: p.URL, Err: errors.New("malformed JSON payload")}
	}
	return gjson.ParseBytes(p.Body), nil
}
