package gateway

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"mime/multipart"
	"net/textproto"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// Post sends v as a JSON body. Writes never consult or populate the cache.
func (g *Gateway) Post(ctx context.Context, endpoint string, v any) (*Payload, error) {
	return g.sendJSON(ctx, fasthttp.MethodPost, endpoint, v)
}

// Put sends v as a JSON body.
func (g *Gateway) Put(ctx context.Context, endpoint string, v any) (*Payload, error) {
	return g.sendJSON(ctx, fasthttp.MethodPut, endpoint, v)
}

// Patch sends v as a JSON body.
func (g *Gateway) Patch(ctx context.Context, endpoint string, v any) (*Payload, error) {
	return g.sendJSON(ctx, fasthttp.MethodPatch, endpoint, v)
}

// Delete issues a DELETE with no body.
func (g *Gateway) Delete(ctx context.Context, endpoint string) (*Payload, error) {
	return g.Request(ctx, endpoint, Method(fasthttp.MethodDelete))
}

func (g *Gateway) sendJSON(ctx context.Context, method, endpoint string, v any) (*Payload, error) {
	opts := []RequestOption{Method(method)}
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s body for %s", method, endpoint)
		}
		opts = append(opts, Body(b, "application/json"))
	}
	return g.Request(ctx, endpoint, opts...)
}

// Attachment is one binary part of a multipart upload.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

/*
PostMultipart uploads fields and files as multipart/form-data.
Fields are written in key order so the body is deterministic.
*/
func (g *Gateway) PostMultipart(ctx context.Context, endpoint string, fields map[string]string, files ...Attachment) (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, errors.Wrapf(err, "write field %s", k)
		}
	}
	for _, f := range files {
		part, err := w.CreatePart(fileHeader(f))
		if err != nil {
			return nil, errors.Wrapf(err, "create part %s", f.Field)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, errors.Wrapf(err, "write part %s", f.Field)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart body")
	}

	return g.Request(ctx, endpoint,
		Method(fasthttp.MethodPost),
		Body(buf.Bytes(), w.FormDataContentType()),
	)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func fileHeader(f Attachment) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	return h
}
