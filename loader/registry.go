package loader

import (
	"context"

	"github.com/pkg/errors"

	"github.com/krisalay/folio-data/resource"
)

// Name identifies one resource in a snapshot.
type Name string

const (
	Profile      Name = "profile"
	SocialLinks  Name = "socialLinks"
	Services     Name = "services"
	FunFacts     Name = "funFacts"
	Experiences  Name = "experiences"
	Education    Name = "education"
	Skills       Name = "skills"
	Projects     Name = "projects"
	BlogPosts    Name = "blogPosts"
	SidenavItems Name = "sidenavItems"
	Testimonials Name = "testimonials"
)

// EssentialNames are the resources the first paint cannot do without.
var EssentialNames = []Name{Profile, SocialLinks}

/*
Descriptor is a static registry entry: how to fetch one resource and what to
use in its place when the fetch fails. Descriptors are built once at start-up
and never mutated.
*/
type Descriptor struct {
	Name     Name
	Fetch    func(context.Context) (any, error)
	Fallback any
}

// Resource builds a Descriptor from a typed fetcher so the fallback and the fetched value share a type.
func Resource[T any](name Name, fetch func(context.Context) (T, error), fallback T) Descriptor {
	return Descriptor{
		Name: name,
		Fetch: func(ctx context.Context) (any, error) {
			return fetch(ctx)
		},
		Fallback: fallback,
	}
}

// Registry is the ordered, immutable set of declared resources.
type Registry struct {
	descs  []Descriptor
	byName map[Name]int
}

// NewRegistry rejects empty or duplicate names and nil fetchers.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		descs:  make([]Descriptor, 0, len(descs)),
		byName: make(map[Name]int, len(descs)),
	}
	for _, d := range descs {
		if d.Name == "" {
			return nil, errors.New("descriptor with empty name")
		}
		if d.Fetch == nil {
			return nil, errors.Errorf("descriptor %q has no fetch function", d.Name)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, errors.Errorf("descriptor %q declared twice", d.Name)
		}
		r.byName[d.Name] = len(r.descs)
		r.descs = append(r.descs, d)
	}
	return r, nil
}

/*
DefaultRegistry declares the eleven backend resources. Every list resource
falls back to an empty list; the profile falls back to no profile.
*/
func DefaultRegistry(c *resource.Client) *Registry {
	r, err := NewRegistry(
		Resource(Profile, c.Profile, (*resource.Profile)(nil)),
		Resource(SocialLinks, c.SocialLinks, []resource.SocialLink{}),
		Resource(Services, c.Services, []resource.Service{}),
		Resource(FunFacts, c.FunFacts, []resource.FunFact{}),
		Resource(Experiences, c.Experiences, []resource.Experience{}),
		Resource(Education, c.Education, []resource.Education{}),
		Resource(Skills, c.Skills, []resource.Skill{}),
		Resource(Projects, c.Projects, []resource.Project{}),
		Resource(BlogPosts, c.BlogPosts, []resource.BlogPost{}),
		Resource(SidenavItems, c.SidenavItems, []resource.SidenavItem{}),
		Resource(Testimonials, c.Testimonials, []resource.Testimonial{}),
	)
	if err != nil {
		// the declarations above are static
		panic(err)
	}
	return r
}

// Names lists declared names in declaration order.
func (r *Registry) Names() []Name {
	out := make([]Name, len(r.descs))
	for i, d := range r.descs {
		out[i] = d.Name
	}
	return out
}

// All returns every descriptor in declaration order.
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.descs...)
}

// Lookup returns the descriptors for names, in the order given.
func (r *Registry) Lookup(names ...Name) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(names))
	for _, n := range names {
		i, ok := r.byName[n]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownResource, "%q", n)
		}
		out = append(out, r.descs[i])
	}
	return out, nil
}

// Fallbacks is the snapshot every resource would have if all fetches failed.
func (r *Registry) Fallbacks() Snapshot {
	s := make(Snapshot, len(r.descs))
	for _, d := range r.descs {
		s[d.Name] = d.Fallback
	}
	return s
}
