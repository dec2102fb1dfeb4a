// internal/profile/profile.go
package profile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServiceIcon is the closed set of icons the frontend knows how to render.
// Unknown values are rejected at load time instead of silently falling back.
type ServiceIcon string

const (
	IconHome       ServiceIcon = "home"
	IconBuilding   ServiceIcon = "building"
	IconChefHat    ServiceIcon = "chef-hat"
	IconPaintbrush ServiceIcon = "paintbrush"
	IconPalette    ServiceIcon = "palette"
)

func (i ServiceIcon) Valid() bool {
	switch i {
	case IconHome, IconBuilding, IconChefHat, IconPaintbrush, IconPalette:
		return true
	}
	return false
}

type Location struct {
	City         string `yaml:"city" json:"city"`
	State        string `yaml:"state" json:"state"`
	FullLocation string `yaml:"full_location" json:"fullLocation"`
}

type Business struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Description string   `yaml:"description" json:"description"`
	Established string   `yaml:"established" json:"established"`
	Experience  string   `yaml:"experience" json:"experience"`
	Location    Location `yaml:"location" json:"location"`
}

type BusinessHours struct {
	Weekdays string `yaml:"weekdays" json:"weekdays"`
	Weekend  string `yaml:"weekend" json:"weekend"`
}

type Contact struct {
	Phone         string        `yaml:"phone" json:"phone" validate:"required"`
	Email         string        `yaml:"email" json:"email" validate:"required,email"`
	Website       string        `yaml:"website" json:"website"`
	BusinessHours BusinessHours `yaml:"business_hours" json:"businessHours"`
}

type Owner struct {
	Name           string   `yaml:"name" json:"name"`
	Title          string   `yaml:"title" json:"title"`
	Experience     string   `yaml:"experience" json:"experience"`
	Certifications []string `yaml:"certifications" json:"certifications"`
}

type Service struct {
	Name        string      `yaml:"name" json:"name" validate:"required"`
	Description string      `yaml:"description" json:"description"`
	Icon        ServiceIcon `yaml:"icon" json:"icon"`
	Features    []string    `yaml:"features" json:"features"`
}

type Testimonial struct {
	Name     string `yaml:"name" json:"name"`
	Location string `yaml:"location" json:"location"`
	Rating   int    `yaml:"rating" json:"rating" validate:"min=0,max=5"`
	Text     string `yaml:"text" json:"text"`
	Service  string `yaml:"service" json:"service"`
}

type GalleryPhoto struct {
	Src         string `yaml:"src" json:"src"`
	Alt         string `yaml:"alt" json:"alt"`
	Category    string `yaml:"category" json:"category"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Gallery struct {
	Categories []string       `yaml:"categories" json:"categories"`
	Photos     []GalleryPhoto `yaml:"photos" json:"photos"`
}

// Colors holds the brand palette. Primary and secondary drive the email
// header and accent styling, so they are required.
type Colors struct {
	Primary   string `yaml:"primary" json:"primary" validate:"required"`
	Secondary string `yaml:"secondary" json:"secondary" validate:"required"`
	Accent    string `yaml:"accent" json:"accent"`
}

type SEO struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords" json:"keywords"`
	OGImage     string `yaml:"og_image" json:"ogImage"`
}

type Logo struct {
	Src    string `yaml:"src" json:"src"`
	Alt    string `yaml:"alt" json:"alt"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

type Branding struct {
	Logo    Logo   `yaml:"logo" json:"logo"`
	Favicon string `yaml:"favicon" json:"favicon"`
}

type CTAButton struct {
	Text   string `yaml:"text" json:"text"`
	Type   string `yaml:"type" json:"type"`
	Action string `yaml:"action" json:"action"`
}

type Hero struct {
	BackgroundImage string      `yaml:"background_image" json:"backgroundImage"`
	BackgroundAlt   string      `yaml:"background_alt" json:"backgroundAlt"`
	Headline        string      `yaml:"headline" json:"headline"`
	Subheadline     string      `yaml:"subheadline" json:"subheadline"`
	CTAButtons      []CTAButton `yaml:"cta_buttons" json:"ctaButtons"`
}

type Social struct {
	Facebook  string `yaml:"facebook" json:"facebook"`
	Instagram string `yaml:"instagram" json:"instagram"`
	Google    string `yaml:"google" json:"google"`
}

// BusinessProfile is the static configuration record that parameterizes the
// rendered pages and outbound emails. It is loaded once at startup and shared
// read-only; nothing mutates it after Load returns.
type BusinessProfile struct {
	Business     Business      `yaml:"business" json:"business"`
	Contact      Contact       `yaml:"contact" json:"contact"`
	Owner        Owner         `yaml:"owner" json:"owner"`
	Services     []Service     `yaml:"services" json:"services" validate:"dive"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials" validate:"dive"`
	Gallery      Gallery       `yaml:"gallery" json:"gallery"`
	Colors       Colors        `yaml:"colors" json:"colors"`
	SEO          SEO           `yaml:"seo" json:"seo"`
	Branding     Branding      `yaml:"branding" json:"branding"`
	Hero         Hero          `yaml:"hero" json:"hero"`
	Features     []string      `yaml:"features" json:"features"`
	Social       Social        `yaml:"social" json:"social"`
}

var validate = validator.New()

// Load reads and validates the business profile from a YAML file. The profile
// is trusted operator input, so any problem is a startup failure, not a
// request-time one.
func Load(path string) (*BusinessProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read business profile: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML business profile.
func Parse(raw []byte) (*BusinessProfile, error) {
	var p BusinessProfile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse business profile: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid business profile: %w", err)
	}
	for _, svc := range p.Services {
		if svc.Icon != "" && !svc.Icon.Valid() {
			return nil, fmt.Errorf("invalid business profile: unknown service icon %q for %q", svc.Icon, svc.Name)
		}
	}
	return &p, nil
}
