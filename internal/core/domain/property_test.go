package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRefDecodesBothShapes(t *testing.T) {
	var bare TypeRef
	require.NoError(t, json.Unmarshal([]byte(`"64ab01"`), &bare))
	assert.Equal(t, TypeRef{ID: "64ab01"}, bare)

	var populated TypeRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"64ab01","name":"Residential"}`), &populated))
	assert.Equal(t, TypeRef{ID: "64ab01", Name: "Residential"}, populated)
}

func TestTypeRefEncodesAsFetched(t *testing.T) {
	bare, err := json.Marshal(TypeRef{ID: "64ab01"})
	require.NoError(t, err)
	assert.JSONEq(t, `"64ab01"`, string(bare))

	populated, err := json.Marshal(TypeRef{ID: "64ab01", Name: "Residential"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"64ab01","name":"Residential"}`, string(populated))
}

func TestPropertyDetailReadsLegacyStatusKey(t *testing.T) {
	var legacy PropertyDetail
	require.NoError(t, json.Unmarshal([]byte(`{"bhk":3,"sqft":1200,"stutestype":"Ready"}`), &legacy))
	assert.Equal(t, "Ready", legacy.StatusType)

	// The current key wins when both are present.
	var both PropertyDetail
	require.NoError(t, json.Unmarshal([]byte(`{"statusType":"New","stutestype":"Old"}`), &both))
	assert.Equal(t, "New", both.StatusType)
}

func TestFloorPlanReadsLegacyImagesArray(t *testing.T) {
	var legacy FloorPlan
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Ground","images":["https://cdn/a.jpg","https://cdn/b.jpg"]}`), &legacy))
	assert.Equal(t, "https://cdn/a.jpg", legacy.Image)

	var current FloorPlan
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Ground","image":"https://cdn/c.jpg"}`), &current))
	assert.Equal(t, "https://cdn/c.jpg", current.Image)
}

func TestDraftFromProperty(t *testing.T) {
	p := &Property{
		ID:            "p1",
		Title:         "Skyline",
		Subtitle:      "Homes",
		PropertyType:  TypeRef{ID: "t1", Name: "Residential"},
		Address:       "Ring Road",
		ContactNumber: "9876543210",
		GoogleMap:     "https://maps/x",
		Detail:        PropertyDetail{BHK: 3, Sqft: 1250.5, StatusType: "Ready"},
		FloorPlans: []FloorPlan{
			{Title: "Ground", Image: "https://cdn/fp0.jpg"},
			{Title: "First"},
		},
		Gallery: []string{"https://cdn/g0.jpg"},
	}

	d := DraftFromProperty(p)
	assert.Equal(t, "p1", d.ID)
	assert.Equal(t, "t1", d.PropertyTypeRef)
	assert.Equal(t, "3", d.Detail.BHK)
	assert.Equal(t, "1250.5", d.Detail.Sqft)

	require.Len(t, d.FloorPlans, 2)
	assert.Equal(t, PersistedImage("https://cdn/fp0.jpg"), d.FloorPlans[0].Image)
	assert.True(t, d.FloorPlans[1].Image.IsZero())

	require.Len(t, d.Gallery, 1)
	assert.Equal(t, "https://cdn/g0.jpg", d.Gallery[0].URL())
}

func TestDraftFromPropertyFillsEmptyCollections(t *testing.T) {
	d := DraftFromProperty(&Property{ID: "p1", Title: "Bare"})

	require.Len(t, d.FloorPlans, 1)
	require.Len(t, d.Gallery, 1)
	assert.True(t, d.FloorPlans[0].Image.IsZero())
	assert.True(t, d.Gallery[0].IsZero())

	// Stored zeros come back as empty inputs.
	assert.Equal(t, "", d.Detail.BHK)
	assert.Equal(t, "", d.Detail.Sqft)
}

func TestImageRefAccessors(t *testing.T) {
	var zero ImageRef
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	pending := PendingImage("/tmp/a.png")
	assert.True(t, pending.IsPending())
	assert.Equal(t, "/tmp/a.png", pending.Path())
	assert.Equal(t, "", pending.URL())
	assert.Equal(t, "/tmp/a.png (not uploaded)", pending.String())

	persisted := PersistedImage("https://cdn/a.png")
	assert.True(t, persisted.IsPersisted())
	assert.Equal(t, "https://cdn/a.png", persisted.URL())
	assert.Equal(t, "", persisted.Path())
}
