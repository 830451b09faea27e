package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Documented status values. Any string is accepted on the wire; the stored
// data never enforced the set, so tightening it here would reject existing
// records.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

// Property is the persisted real-estate record. The id is server-generated
// and immutable; created_at is assigned once at creation. Area is in square
// meters. CreatedAt is persisted as RFC3339 text by the repository and so
// carries no bson tag here.
type Property struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Price        float64   `bson:"price" json:"price"`
	Location     string    `bson:"location" json:"location"`
	PropertyType string    `bson:"property_type" json:"property_type"`
	Area         float64   `bson:"area" json:"area"`
	Rooms        int       `bson:"rooms" json:"rooms"`
	Bathrooms    int       `bson:"bathrooms" json:"bathrooms"`
	Images       []string  `bson:"images" json:"images"`
	Features     []string  `bson:"features" json:"features"`
	TourURL      string    `bson:"tour_url,omitempty" json:"tour_url,omitempty"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"-" json:"created_at"`
}

// PropertyCreate is the client payload for creating a property. Id and
// created_at are never client-supplied. Numeric fields are pointers so a
// missing field is distinguishable from a zero value.
type PropertyCreate struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"property_type"`
	Area         *float64 `json:"area"`
	Rooms        *int     `json:"rooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	TourURL      string   `json:"tour_url"`
	Status       string   `json:"status"`
}

// Validate checks the payload for the create endpoint. Images must be present
// but may be empty.
func (in *PropertyCreate) Validate() error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if in.PropertyType == "" {
		missing = append(missing, "property_type")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Area == nil {
		missing = append(missing, "area")
	}
	if in.Rooms == nil {
		missing = append(missing, "rooms")
	}
	if in.Bathrooms == nil {
		missing = append(missing, "bathrooms")
	}
	if in.Images == nil {
		missing = append(missing, "images")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if *in.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if *in.Area <= 0 {
		return errors.New("area must be positive")
	}
	if *in.Rooms < 0 {
		return errors.New("rooms must be non-negative")
	}
	if *in.Bathrooms < 0 {
		return errors.New("bathrooms must be non-negative")
	}
	return nil
}

// Model converts a validated payload into a Property with defaults applied.
// Call Validate first; the pointer fields must be present.
func (in *PropertyCreate) Model() Property {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	status := in.Status
	if status == "" {
		status = StatusAvailable
	}
	return Property{
		Title:        in.Title,
		Description:  in.Description,
		Price:        *in.Price,
		Location:     in.Location,
		PropertyType: in.PropertyType,
		Area:         *in.Area,
		Rooms:        *in.Rooms,
		Bathrooms:    *in.Bathrooms,
		Images:       in.Images,
		Features:     features,
		TourURL:      in.TourURL,
		Status:       status,
	}
}

// PropertyUpdate is a partial update: a nil field means "leave untouched".
// Explicit JSON null also decodes to nil, so null and omitted behave the
// same; there is no way to clear a field.
type PropertyUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Location     *string   `json:"location"`
	PropertyType *string   `json:"property_type"`
	Area         *float64  `json:"area"`
	Rooms        *int      `json:"rooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Images       *[]string `json:"images"`
	Features     *[]string `json:"features"`
	TourURL      *string   `json:"tour_url"`
	Status       *string   `json:"status"`
}
