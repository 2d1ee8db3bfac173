// Package resource holds one fetcher per backend resource. Each fetcher is a
// single gateway call followed by shape normalisation.
package resource

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/krisalay/folio-data/gateway"
)

// apiRoot prefixes every resource path on the backend.
const apiRoot = "api"

// Resource paths under apiRoot.
const (
	PathProfile      = "profile"
	PathSocialLinks  = "social-links"
	PathServices     = "services"
	PathFunFacts     = "fun-facts"
	PathExperiences  = "experiences"
	PathEducation    = "education"
	PathSkills       = "skills"
	PathProjects     = "projects"
	PathBlogPosts    = "blog-posts"
	PathSidenavItems = "sidenav-items"
	PathTestimonials = "testimonials"
	PathContact      = "contact"
)

func endpoint(path string) string {
	return "/" + apiRoot + "/" + path + "/"
}

// Collections groups the list resources for callers that need writes.
type Collections struct {
	SocialLinks  *Collection[SocialLink]
	Services     *Collection[Service]
	FunFacts     *Collection[FunFact]
	Experiences  *Collection[Experience]
	Education    *Collection[Education]
	Skills       *Collection[Skill]
	Projects     *Collection[Project]
	BlogPosts    *Collection[BlogPost]
	SidenavItems *Collection[SidenavItem]
	Testimonials *Collection[Testimonial]
}

/*
Client exposes one read per backend resource. Reads go through the gateway
and are served from its cache when fresh.
*/
type Client struct {
	gw *gateway.Gateway

	// Manage gives access to create/update/delete on list resources.
	Manage Collections
}

func NewClient(gw *gateway.Gateway) *Client {
	return &Client{
		gw: gw,
		Manage: Collections{
			SocialLinks:  newCollection[SocialLink](gw, "social links", PathSocialLinks),
			Services:     newCollection[Service](gw, "services", PathServices),
			FunFacts:     newCollection[FunFact](gw, "fun facts", PathFunFacts),
			Experiences:  newCollection[Experience](gw, "experiences", PathExperiences),
			Education:    newCollection[Education](gw, "education", PathEducation),
			Skills:       newCollection[Skill](gw, "skills", PathSkills),
			Projects:     newCollection[Project](gw, "projects", PathProjects),
			BlogPosts:    newCollection[BlogPost](gw, "blog posts", PathBlogPosts),
			SidenavItems: newCollection[SidenavItem](gw, "sidenav items", PathSidenavItems),
			Testimonials: newCollection[Testimonial](gw, "testimonials", PathTestimonials),
		},
	}
}

// Gateway returns the gateway the client issues requests through.
func (c *Client) Gateway() *gateway.Gateway { return c.gw }

/*
Profile fetches the site owner. The backend answers with either the object
or a one-element list; both resolve to the object. No profile yields nil.
*/
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	p, err := c.gw.Get(ctx, endpoint(PathProfile))
	if err != nil {
		return nil, errors.Wrap(err, "get profile")
	}
	prof, err := One[Profile](p)
	return prof, errors.Wrap(err, "get profile")
}

// UpdateProfile posts profile changes and drops the cached profile.
func (c *Client) UpdateProfile(ctx context.Context, v any) (*Profile, error) {
	p, err := c.gw.Post(ctx, endpoint(PathProfile), v)
	if err != nil {
		return nil, errors.Wrap(err, "update profile")
	}
	c.gw.Invalidate(endpoint(PathProfile))
	prof, err := One[Profile](p)
	return prof, errors.Wrap(err, "update profile")
}

func (c *Client) SocialLinks(ctx context.Context) ([]SocialLink, error) {
	return c.Manage.SocialLinks.List(ctx)
}

func (c *Client) Services(ctx context.Context) ([]Service, error) {
	return c.Manage.Services.List(ctx)
}

func (c *Client) FunFacts(ctx context.Context) ([]FunFact, error) {
	return c.Manage.FunFacts.List(ctx)
}

func (c *Client) Experiences(ctx context.Context) ([]Experience, error) {
	return c.Manage.Experiences.List(ctx)
}

func (c *Client) Education(ctx context.Context) ([]Education, error) {
	return c.Manage.Education.List(ctx)
}

func (c *Client) Skills(ctx context.Context) ([]Skill, error) {
	return c.Manage.Skills.List(ctx)
}

// SearchSkills filters skills server-side. An empty term is the plain list.
func (c *Client) SearchSkills(ctx context.Context, term string) ([]Skill, error) {
	if term == "" {
		return c.Skills(ctx)
	}
	return c.Manage.Skills.Query(ctx, url.Values{"search": {term}})
}

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	return c.Manage.Projects.List(ctx)
}

func (c *Client) BlogPosts(ctx context.Context) ([]BlogPost, error) {
	return c.Manage.BlogPosts.List(ctx)
}

// BlogPost fetches one post by slug. It always goes to the backend so view counts stay current.
func (c *Client) BlogPost(ctx context.Context, slug string) (*BlogPost, error) {
	p, err := c.gw.Get(ctx, blogPostEndpoint(slug), gateway.NoCache())
	if err != nil {
		return nil, errors.Wrapf(err, "get blog post %q", slug)
	}
	post, err := One[BlogPost](p)
	return post, errors.Wrapf(err, "get blog post %q", slug)
}

// TrackBlogView records one view of slug and returns the new count.
func (c *Client) TrackBlogView(ctx context.Context, slug string) (int, error) {
	p, err := c.gw.Post(ctx, blogPostEndpoint(slug)+"view/", nil)
	if err != nil {
		return 0, errors.Wrapf(err, "track view of %q", slug)
	}
	c.gw.Invalidate(endpoint(PathBlogPosts))

	var out struct {
		ViewsCount int `json:"views_count"`
	}
	if err := p.Decode(&out); err != nil {
		return 0, errors.Wrapf(err, "track view of %q", slug)
	}
	return out.ViewsCount, nil
}

func (c *Client) SidenavItems(ctx context.Context) ([]SidenavItem, error) {
	return c.Manage.SidenavItems.List(ctx)
}

func (c *Client) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return c.Manage.Testimonials.List(ctx)
}

func blogPostEndpoint(slug string) string {
	return endpoint(PathBlogPosts) + url.PathEscape(slug) + "/"
}
