// Package repository implements property persistence on top of a MongoDB
// collection.
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/podlesnov2602-commits/Dars2/models"
)

// ErrNotFound is returned when no property matches the requested id.
var ErrNotFound = errors.New("property not found")

// listLimit caps list results; there is no pagination beyond it.
const listLimit = 1000

// Filter selects properties for List. Zero-valued fields impose no
// constraint. Location matches as a case-insensitive literal substring.
type Filter struct {
	PropertyType string
	Status       string
	Location     string
	MinPrice     *float64
	MaxPrice     *float64
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.PropertyType != "" {
		q["property_type"] = f.PropertyType
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Location != "" {
		q["location"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price"] = price
	}
	return q
}

// propertyDoc is the stored shape. created_at travels as RFC3339 text so the
// persisted form stays readable and round-trips without driver date mapping.
type propertyDoc struct {
	ID           string   `bson:"id"`
	Title        string   `bson:"title"`
	Description  string   `bson:"description"`
	Price        float64  `bson:"price"`
	Location     string   `bson:"location"`
	PropertyType string   `bson:"property_type"`
	Area         float64  `bson:"area"`
	Rooms        int      `bson:"rooms"`
	Bathrooms    int      `bson:"bathrooms"`
	Images       []string `bson:"images"`
	Features     []string `bson:"features"`
	TourURL      string   `bson:"tour_url,omitempty"`
	Status       string   `bson:"status"`
	CreatedAt    string   `bson:"created_at"`
}

func toDoc(p models.Property) propertyDoc {
	return propertyDoc{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		Area:         p.Area,
		Rooms:        p.Rooms,
		Bathrooms:    p.Bathrooms,
		Images:       p.Images,
		Features:     p.Features,
		TourURL:      p.TourURL,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (d propertyDoc) toModel() (models.Property, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return models.Property{}, err
	}
	return models.Property{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Price:        d.Price,
		Location:     d.Location,
		PropertyType: d.PropertyType,
		Area:         d.Area,
		Rooms:        d.Rooms,
		Bathrooms:    d.Bathrooms,
		Images:       d.Images,
		Features:     d.Features,
		TourURL:      d.TourURL,
		Status:       d.Status,
		CreatedAt:    createdAt,
	}, nil
}

// updateDoc builds the $set document from the fields present in the partial
// payload. Nil fields stay untouched.
func updateDoc(u models.PropertyUpdate) bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.PropertyType != nil {
		set["property_type"] = *u.PropertyType
	}
	if u.Area != nil {
		set["area"] = *u.Area
	}
	if u.Rooms != nil {
		set["rooms"] = *u.Rooms
	}
	if u.Bathrooms != nil {
		set["bathrooms"] = *u.Bathrooms
	}
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.Features != nil {
		set["features"] = *u.Features
	}
	if u.TourURL != nil {
		set["tour_url"] = *u.TourURL
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}

// PropertyRepository performs property queries and mutations against a
// MongoDB collection. Safe for concurrent use.
type PropertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection("properties")}
}

// List returns up to listLimit matching properties in store order. An empty
// result is an empty slice, never nil.
func (r *PropertyRepository) List(ctx context.Context, f Filter) ([]models.Property, error) {
	opts := options.Find().SetLimit(listLimit)
	cursor, err := r.collection.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var doc propertyDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		p, err := doc.toModel()
		if err != nil {
			continue
		}
		properties = append(properties, p)
	}
	return properties, cursor.Err()
}

func (r *PropertyRepository) Get(ctx context.Context, id string) (models.Property, error) {
	var doc propertyDoc
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Property{}, ErrNotFound
		}
		return models.Property{}, err
	}
	return doc.toModel()
}

// Create stores a new property from a validated payload, assigning the id
// and the UTC creation timestamp.
func (r *PropertyRepository) Create(ctx context.Context, input models.PropertyCreate) (models.Property, error) {
	p := input.Model()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, toDoc(p)); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// Update applies the fields present in the partial payload and returns the
// resulting record. An empty partial is a no-op that still returns the
// record, and a missing id is ErrNotFound either way.
func (r *PropertyRepository) Update(ctx context.Context, id string, partial models.PropertyUpdate) (models.Property, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return models.Property{}, err
	}

	set := updateDoc(partial)
	if len(set) > 0 {
		if _, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return models.Property{}, err
		}
	}
	return r.Get(ctx, id)
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
