package loader

import (
	"slices"

	"github.com/krisalay/folio-data/resource"
)

/*
Snapshot maps every declared resource of a stage to its value: either what
the fetcher returned or the resource's fallback. A snapshot never holds
errors or pending values, and its key set is exactly the declared set.
*/
type Snapshot map[Name]any

// Names returns the keys sorted, for stable output.
func (s Snapshot) Names() []Name {
	out := make([]Name, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Value reads name as T. A missing key or a type mismatch yields the zero value.
func Value[T any](s Snapshot, name Name) T {
	v, _ := s[name].(T)
	return v
}

func (s Snapshot) Profile() *resource.Profile { return Value[*resource.Profile](s, Profile) }

func (s Snapshot) SocialLinks() []resource.SocialLink {
	return Value[[]resource.SocialLink](s, SocialLinks)
}

func (s Snapshot) Services() []resource.Service { return Value[[]resource.Service](s, Services) }

func (s Snapshot) FunFacts() []resource.FunFact { return Value[[]resource.FunFact](s, FunFacts) }

func (s Snapshot) Experiences() []resource.Experience {
	return Value[[]resource.Experience](s, Experiences)
}

func (s Snapshot) Education() []resource.Education {
	return Value[[]resource.Education](s, Education)
}

func (s Snapshot) Skills() []resource.Skill { return Value[[]resource.Skill](s, Skills) }

func (s Snapshot) Projects() []resource.Project { return Value[[]resource.Project](s, Projects) }

func (s Snapshot) BlogPosts() []resource.BlogPost { return Value[[]resource.BlogPost](s, BlogPosts) }

func (s Snapshot) SidenavItems() []resource.SidenavItem {
	return Value[[]resource.SidenavItem](s, SidenavItems)
}

func (s Snapshot) Testimonials() []resource.Testimonial {
	return Value[[]resource.Testimonial](s, Testimonials)
}
