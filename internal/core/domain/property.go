package domain

import "encoding/json"

// PropertyType is a catalog entry referenced by properties. The backend keys
// conditional behavior off the display name (see validate.IsResidential),
// there is no stored category flag.
type PropertyType struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// TypeRef is the propertyType field of a fetched Property. Single fetches
// return it populated ({_id, name}); list responses may carry a bare id
// string, so decoding accepts both shapes.
type TypeRef struct {
	ID   string
	Name string
}

// UnmarshalJSON accepts either "64ab..." or {"_id": "...", "name": "..."}.
func (r *TypeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = ""
		return nil
	}

	var populated struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &populated); err != nil {
		return err
	}
	r.ID = populated.ID
	r.Name = populated.Name
	return nil
}

// MarshalJSON emits the populated shape when the name is known, otherwise the
// bare id, mirroring what the backend produces.
func (r TypeRef) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

// PropertyDetail is the nested detail record of a persisted property.
type PropertyDetail struct {
	BHK        float64 `json:"bhk"`
	Sqft       float64 `json:"sqft"`
	StatusType string  `json:"statusType"`
}

// UnmarshalJSON also reads the misspelled "stutestype" key that older backend
// revisions used for the status field.
func (d *PropertyDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		BHK        float64 `json:"bhk"`
		Sqft       float64 `json:"sqft"`
		StatusType string  `json:"statusType"`
		Legacy     string  `json:"stutestype"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.BHK = raw.BHK
	d.Sqft = raw.Sqft
	d.StatusType = raw.StatusType
	if d.StatusType == "" {
		d.StatusType = raw.Legacy
	}
	return nil
}

// FloorPlan is one floor plan of a persisted property: a title plus a single
// image URL.
type FloorPlan struct {
	ID    string `json:"_id,omitempty"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// UnmarshalJSON tolerates the legacy shape where each plan carried an "images"
// array; the first element wins.
func (f *FloorPlan) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     string   `json:"_id"`
		Title  string   `json:"title"`
		Image  string   `json:"image"`
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.ID = raw.ID
	f.Title = raw.Title
	f.Image = raw.Image
	if f.Image == "" && len(raw.Images) > 0 {
		f.Image = raw.Images[0]
	}
	return nil
}

// Property is a persisted property as returned by the backend.
type Property struct {
	ID            string         `json:"_id"`
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle"`
	PropertyType  TypeRef        `json:"propertyType"`
	Address       string         `json:"address"`
	ContactNumber string         `json:"contactNumber"`
	GoogleMap     string         `json:"googleMap,omitempty"`
	Detail        PropertyDetail `json:"propertyDetail"`
	FloorPlans    []FloorPlan    `json:"floorPlan"`
	Gallery       []string       `json:"projectGallery"`
}

// ContactSubmission is a message left through the public contact form.
// The admin side only reads and deletes these.
type ContactSubmission struct {
	ID        string `json:"_id"`
	Project   string `json:"project"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ContactNo string `json:"contactNo"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}
