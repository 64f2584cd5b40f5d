package domain

import "strconv"

// FloorPlanEntry is one floor plan being edited: a title plus exactly one
// image slot.
type FloorPlanEntry struct {
	Title string
	Image ImageRef
}

// DetailDraft holds the nested detail record as entered by the user. The
// numeric fields stay strings until submission so that partial input never
// gets coerced.
type DetailDraft struct {
	BHK        string
	Sqft       string
	StatusType string
}

// PropertyDraft is the in-progress, unsaved representation of a property
// being created or edited. It is mutated only through user input events and
// the list add/remove operations on draftform.Form, and discarded on
// successful submit or navigation away.
type PropertyDraft struct {
	ID string // set in edit mode, empty for a new property

	Title           string
	Subtitle        string
	PropertyTypeRef string
	Address         string
	ContactNumber   string
	GoogleMap       string

	Detail     DetailDraft
	FloorPlans []FloorPlanEntry
	Gallery    []ImageRef
}

// NewPropertyDraft returns an empty draft with one blank floor plan and one
// blank gallery slot. The collections are never empty by construction.
func NewPropertyDraft() *PropertyDraft {
	return &PropertyDraft{
		FloorPlans: []FloorPlanEntry{{}},
		Gallery:    []ImageRef{{}},
	}
}

// DraftFromProperty hydrates a draft from a fetched property for edit mode.
// Absent nested collections fall back to one blank entry.
func DraftFromProperty(p *Property) *PropertyDraft {
	d := &PropertyDraft{
		ID:              p.ID,
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		PropertyTypeRef: p.PropertyType.ID,
		Address:         p.Address,
		ContactNumber:   p.ContactNumber,
		GoogleMap:       p.GoogleMap,
		Detail: DetailDraft{
			BHK:        formatNumberInput(p.Detail.BHK),
			Sqft:       formatNumberInput(p.Detail.Sqft),
			StatusType: p.Detail.StatusType,
		},
	}

	for _, fp := range p.FloorPlans {
		entry := FloorPlanEntry{Title: fp.Title}
		if fp.Image != "" {
			entry.Image = PersistedImage(fp.Image)
		}
		d.FloorPlans = append(d.FloorPlans, entry)
	}
	if len(d.FloorPlans) == 0 {
		d.FloorPlans = []FloorPlanEntry{{}}
	}

	for _, url := range p.Gallery {
		if url != "" {
			d.Gallery = append(d.Gallery, PersistedImage(url))
		}
	}
	if len(d.Gallery) == 0 {
		d.Gallery = []ImageRef{{}}
	}

	return d
}

// formatNumberInput renders a stored number back into form input, with zero
// shown as an empty field the way the original admin did.
func formatNumberInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
