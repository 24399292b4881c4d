package domain

import "time"

// Brand is the retail brand operating a site
type Brand string

const (
	BrandBetfred   Brand = "Betfred"
	BrandCoral     Brand = "Coral"
	BrandLadbrokes Brand = "Ladbrokes"
)

// Brands returns the supported brands
func Brands() []Brand {
	return []Brand{BrandCoral, BrandLadbrokes, BrandBetfred}
}

// Valid reports whether b is a supported brand
func (b Brand) Valid() bool {
	for _, known := range Brands() {
		if b == known {
			return true
		}
	}
	return false
}

// Document is a file attached to a site (drawings, permits)
type Document struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Contact is a person reachable at a site
type Contact struct {
	Email string `json:"email,omitempty" yaml:"email" validate:"omitempty,email"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	Phone string `json:"phone,omitempty" yaml:"phone"`
	Role  string `json:"role,omitempty" yaml:"role"`
}

// Site is a retail betting-shop installation
type Site struct {
	Address          string          `json:"address" yaml:"address" validate:"required"`
	Brand            Brand           `json:"brand" yaml:"brand" validate:"required,oneof=Coral Ladbrokes Betfred"`
	Code             string          `json:"code" yaml:"code" validate:"required,sitecode"`
	Configurations   []Configuration `json:"configurations" yaml:"configurations"`
	Documents        []Document      `json:"documents" yaml:"documents"`
	ID               string          `json:"id" yaml:"id"`
	InstallationDate *time.Time      `json:"installation_date" yaml:"installation_date"`
	LastVisited      *time.Time      `json:"last_visited" yaml:"last_visited"`
	Name             string          `json:"name" yaml:"name" validate:"required"`
	ReferencePhotos  []string        `json:"reference_photos" yaml:"reference_photos"`
	SiteContacts     []Contact       `json:"site_contacts" yaml:"site_contacts" validate:"dive"`
	Status           string          `json:"status" yaml:"status"`
}
