package resource

import (
	"time"

	json "github.com/goccy/go-json"
)

// Profile is the site owner. Image and CV fields are absolute URLs or empty.
type Profile struct {
	ID              int       `json:"id"`
	FullName        string    `json:"full_name"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Title           string    `json:"title"`
	Bio             string    `json:"bio"`
	ProfileImage    string    `json:"profile_image"`
	CVFile          string    `json:"cv_file"`
	Qualification   string    `json:"qualification"`
	Residence       string    `json:"residence"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	FreelanceStatus string    `json:"freelance_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SocialLink struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type Service struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type FunFact struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Description  string `json:"description"`
	Value        *int   `json:"value"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type Experience struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	JobTitle     string `json:"job_title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	TimePeriod   string `json:"time_period"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type Education struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	Location     string `json:"location"`
	TimePeriod   string `json:"time_period"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// Skill categories used by the backend.
const (
	SkillDesign    = "Design"
	SkillLanguages = "Languages"
	SkillCoding    = "Coding"
	SkillKnowledge = "Knowledge"
)

type Skill struct {
	ID               int    `json:"id"`
	User             int    `json:"user"`
	Category         string `json:"category"`
	SkillName        string `json:"skill_name"`
	ProficiencyLevel *int   `json:"proficiency_level"`
	Description      string `json:"description"`
	DisplayOrder     int    `json:"display_order"`
	IsActive         bool   `json:"is_active"`
}

// Project.Technologies is free-form JSON on the backend, kept raw.
type Project struct {
	ID           int             `json:"id"`
	User         int             `json:"user"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	ProjectURL   string          `json:"project_url"`
	GithubURL    string          `json:"github_url"`
	Technologies json.RawMessage `json:"technologies"`
	DisplayOrder int             `json:"display_order"`
	IsFeatured   bool            `json:"is_featured"`
	IsActive     bool            `json:"is_active"`
}

type BlogPost struct {
	ID            int    `json:"id"`
	User          int    `json:"user"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featured_image"`
	PublishedDate string `json:"published_date"`
	Slug          string `json:"slug"`
	ViewsCount    int    `json:"views_count"`
	IsPublished   bool   `json:"is_published"`
}

type SidenavItem struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Category     string `json:"category"`
	ItemText     string `json:"item_text"`
	ItemURL      string `json:"item_url"`
	DisplayOrder int    `json:"display_order"`
}

type Testimonial struct {
	ID           int    `json:"id"`
	User         int    `json:"user"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	Message      string `json:"message"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
