// Package payload turns a valid property draft into the multipart form the
// backend expects. Parts are appended in a fixed order (scalars, detail JSON,
// floor plan titles JSON, floor plan parts in list order, gallery parts in
// list order); the backend reconstructs the nested records by positional
// convention, so the order is part of the wire contract.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// Field names of the multipart contract.
const (
	FieldTitle           = "title"
	FieldSubtitle        = "subtitle"
	FieldPropertyType    = "propertyType"
	FieldAddress         = "address"
	FieldContactNumber   = "contactNumber"
	FieldGoogleMap       = "googleMap"
	FieldPropertyDetail  = "propertyDetail"
	FieldFloorPlanTitles = "floorPlanTitles"
	FieldGallery         = "projectGallery"
	FieldGalleryExisting = "projectGallery_existing"
)

// FloorPlanField returns the binary part name for the floor plan at index i.
func FloorPlanField(i int) string { return fmt.Sprintf("floorPlan_%d", i) }

// FloorPlanExistingField returns the text part name that tells the backend to
// keep the already-stored image for the floor plan at index i.
func FloorPlanExistingField(i int) string { return fmt.Sprintf("floorPlan_%d_existing", i) }

// BlobSource resolves a Pending image reference to its binary content.
type BlobSource interface {
	Read(ref domain.ImageRef) (filename string, data []byte, err error)
}

// BlobReadError reports a selected image whose content could not be read.
// It aborts the whole submission; no partial upload is ever sent.
type BlobReadError struct {
	Path string
	Err  error
}

func (e *BlobReadError) Error() string {
	return fmt.Sprintf("could not read selected image %q: %v", e.Path, e.Err)
}

func (e *BlobReadError) Unwrap() error { return e.Err }

// Submission is a fully serialized multipart request body.
type Submission struct {
	Body        []byte
	ContentType string
}

// detailWire is the JSON shape of the propertyDetail text part.
type detailWire struct {
	BHK        float64 `json:"bhk"`
	Sqft       float64 `json:"sqft"`
	StatusType string  `json:"statusType"`
}

// Build serializes the draft. Every floor plan and gallery slot produces
// exactly one part: a binary part for a Pending image or an "existing" text
// part for a Persisted one. Build expects a draft that already passed
// validation; an empty image slot is an error, not a silent drop.
func Build(d *domain.PropertyDraft, blobs BlobSource) (*Submission, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	scalars := []struct {
		name  string
		value string
	}{
		{FieldTitle, d.Title},
		{FieldSubtitle, d.Subtitle},
		{FieldPropertyType, d.PropertyTypeRef},
		{FieldAddress, d.Address},
		{FieldContactNumber, d.ContactNumber},
		{FieldGoogleMap, d.GoogleMap},
	}
	for _, s := range scalars {
		if err := w.WriteField(s.name, s.value); err != nil {
			return nil, fmt.Errorf("payload: write field %s: %w", s.name, err)
		}
	}

	detail, err := json.Marshal(detailWire{
		BHK:        parseNumberInput(d.Detail.BHK),
		Sqft:       parseNumberInput(d.Detail.Sqft),
		StatusType: d.Detail.StatusType,
	})
	if err != nil {
		return nil, fmt.Errorf("payload: marshal property detail: %w", err)
	}
	if err := w.WriteField(FieldPropertyDetail, string(detail)); err != nil {
		return nil, fmt.Errorf("payload: write field %s: %w", FieldPropertyDetail, err)
	}

	// Floor plan titles travel as one JSON array, independent of the image
	// parts, so the backend can reassociate index to title.
	titles := make([]string, len(d.FloorPlans))
	for i, fp := range d.FloorPlans {
		titles[i] = fp.Title
	}
	titlesJSON, err := json.Marshal(titles)
	if err != nil {
		return nil, fmt.Errorf("payload: marshal floor plan titles: %w", err)
	}
	if err := w.WriteField(FieldFloorPlanTitles, string(titlesJSON)); err != nil {
		return nil, fmt.Errorf("payload: write field %s: %w", FieldFloorPlanTitles, err)
	}

	for i, fp := range d.FloorPlans {
		switch {
		case fp.Image.IsPending():
			if err := writeBlob(w, FloorPlanField(i), fp.Image, blobs); err != nil {
				return nil, err
			}
		case fp.Image.IsPersisted():
			if err := w.WriteField(FloorPlanExistingField(i), fp.Image.URL()); err != nil {
				return nil, fmt.Errorf("payload: write field %s: %w", FloorPlanExistingField(i), err)
			}
		default:
			return nil, fmt.Errorf("payload: floor plan %d has no image", i)
		}
	}

	for i, img := range d.Gallery {
		switch {
		case img.IsPending():
			if err := writeBlob(w, FieldGallery, img, blobs); err != nil {
				return nil, err
			}
		case img.IsPersisted():
			if err := w.WriteField(FieldGalleryExisting, img.URL()); err != nil {
				return nil, fmt.Errorf("payload: write field %s: %w", FieldGalleryExisting, err)
			}
		default:
			return nil, fmt.Errorf("payload: gallery slot %d has no image", i)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("payload: finalize multipart body: %w", err)
	}

	return &Submission{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

func writeBlob(w *multipart.Writer, field string, ref domain.ImageRef, blobs BlobSource) error {
	filename, data, err := blobs.Read(ref)
	if err != nil {
		return &BlobReadError{Path: ref.Path(), Err: err}
	}
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("payload: create file part %s: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("payload: write file part %s: %w", field, err)
	}
	return nil
}

// parseNumberInput converts a numeric form input to its wire value. Absent or
// unparseable input defaults to 0.
func parseNumberInput(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
