package resource

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/krisalay/folio-data/gateway"
)

/*
Collection is a backend list resource: one cached list endpoint plus
item-level writes under it. Every successful write invalidates the cached
list so the next read goes back to the backend.
*/
type Collection[T any] struct {
	gw       *gateway.Gateway
	name     string
	endpoint string
}

func newCollection[T any](gw *gateway.Gateway, name, path string) *Collection[T] {
	return &Collection[T]{gw: gw, name: name, endpoint: endpoint(path)}
}

// Name is the resource name used in logs and errors.
func (c *Collection[T]) Name() string { return c.name }

// Endpoint is the list endpoint relative to the host.
func (c *Collection[T]) Endpoint() string { return c.endpoint }

// List fetches every item. The response is cached by URL.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.list(ctx, c.endpoint)
}

// Query fetches a filtered list, e.g. ?search=. Each distinct query is its own cache entry.
func (c *Collection[T]) Query(ctx context.Context, q url.Values) ([]T, error) {
	ep := c.endpoint
	if enc := q.Encode(); enc != "" {
		ep += "?" + enc
	}
	return c.list(ctx, ep)
}

// Get fetches one item by id.
func (c *Collection[T]) Get(ctx context.Context, id int) (*T, error) {
	p, err := c.gw.Get(ctx, c.item(id))
	if err != nil {
		return nil, errors.Wrapf(err, "get %s %d", c.name, id)
	}
	v, err := One[T](p)
	return v, errors.Wrapf(err, "get %s %d", c.name, id)
}

// Create posts v and returns the created item as the backend echoes it.
func (c *Collection[T]) Create(ctx context.Context, v any) (*T, error) {
	p, err := c.gw.Post(ctx, c.endpoint, v)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", c.name)
	}
	c.gw.Invalidate(c.endpoint)
	out, err := One[T](p)
	return out, errors.Wrapf(err, "create %s", c.name)
}

// Update replaces item id with v.
func (c *Collection[T]) Update(ctx context.Context, id int, v any) (*T, error) {
	p, err := c.gw.Put(ctx, c.item(id), v)
	if err != nil {
		return nil, errors.Wrapf(err, "update %s %d", c.name, id)
	}
	c.invalidate(id)
	out, err := One[T](p)
	return out, errors.Wrapf(err, "update %s %d", c.name, id)
}

// Delete removes item id.
func (c *Collection[T]) Delete(ctx context.Context, id int) error {
	if _, err := c.gw.Delete(ctx, c.item(id)); err != nil {
		return errors.Wrapf(err, "delete %s %d", c.name, id)
	}
	c.invalidate(id)
	return nil
}

func (c *Collection[T]) list(ctx context.Context, ep string) ([]T, error) {
	p, err := c.gw.Get(ctx, ep)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", c.name)
	}
	items, err := List[T](p)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", c.name)
	}
	return items, nil
}

func (c *Collection[T]) item(id int) string {
	return c.endpoint + strconv.Itoa(id) + "/"
}

func (c *Collection[T]) invalidate(id int) {
	c.gw.Invalidate(c.endpoint)
	c.gw.Invalidate(c.item(id))
}
