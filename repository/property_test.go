package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/podlesnov2602-commits/Dars2/models"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bson.M
	}{
		{
			name:   "empty filter matches everything",
			filter: Filter{},
			want:   bson.M{},
		},
		{
			name:   "exact property_type",
			filter: Filter{PropertyType: "apartment"},
			want:   bson.M{"property_type": "apartment"},
		},
		{
			name:   "exact status",
			filter: Filter{Status: "available"},
			want:   bson.M{"status": "available"},
		},
		{
			name:   "location is case-insensitive substring",
			filter: Filter{Location: "mos"},
			want:   bson.M{"location": bson.M{"$regex": "mos", "$options": "i"}},
		},
		{
			name:   "location regex metacharacters are literal",
			filter: Filter{Location: "mo.s"},
			want:   bson.M{"location": bson.M{"$regex": `mo\.s`, "$options": "i"}},
		},
		{
			name:   "price range inclusive",
			filter: Filter{MinPrice: floatPtr(100), MaxPrice: floatPtr(200)},
			want:   bson.M{"price": bson.M{"$gte": 100.0, "$lte": 200.0}},
		},
		{
			name:   "min price only",
			filter: Filter{MinPrice: floatPtr(100)},
			want:   bson.M{"price": bson.M{"$gte": 100.0}},
		},
		{
			name:   "max price only",
			filter: Filter{MaxPrice: floatPtr(200)},
			want:   bson.M{"price": bson.M{"$lte": 200.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.query())
		})
	}
}

func TestPropertyDocRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 15, 123456000, time.UTC)
	p := models.Property{
		ID:           "7b0a8f8e-0000-4000-8000-000000000001",
		Title:        "A",
		Description:  "d",
		Price:        100,
		Location:     "Moscow",
		PropertyType: "apartment",
		Area:         50,
		Rooms:        1,
		Bathrooms:    1,
		Images:       []string{"https://example.com/1.jpg"},
		Features:     []string{},
		TourURL:      "https://example.com/tour",
		Status:       models.StatusAvailable,
		CreatedAt:    created,
	}

	got, err := toDoc(p).toModel()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestPropertyDocTimestampFormats(t *testing.T) {
	base := propertyDoc{ID: "x", Status: models.StatusAvailable}

	// Numeric UTC offset, the form older records carry.
	base.CreatedAt = "2024-05-01T10:00:00+00:00"
	p, err := base.toModel()
	require.NoError(t, err)
	assert.True(t, p.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))

	// Zulu suffix with fractional seconds.
	base.CreatedAt = "2024-05-01T10:00:00.5Z"
	p, err = base.toModel()
	require.NoError(t, err)
	assert.True(t, p.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC)))

	base.CreatedAt = "yesterday"
	_, err = base.toModel()
	assert.Error(t, err)
}

func TestUpdateDoc(t *testing.T) {
	assert.Empty(t, updateDoc(models.PropertyUpdate{}), "empty partial must set nothing")

	set := updateDoc(models.PropertyUpdate{Price: floatPtr(150)})
	assert.Equal(t, bson.M{"price": 150.0}, set)

	images := []string{"https://example.com/2.jpg"}
	set = updateDoc(models.PropertyUpdate{
		Status: strPtr(models.StatusSold),
		Images: &images,
	})
	assert.Equal(t, bson.M{"status": "sold", "images": images}, set)
}
