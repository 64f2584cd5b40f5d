// Package validate implements the per-field rules for a property draft.
// Validation is a pure function of (draft, property type catalog): the
// catalog is passed in explicitly as a read-only snapshot rather than
// consulted through some ambient global.
package validate

import (
	"fmt"
	"strings"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// RequiredMessage is the message attached to every failed rule.
const RequiredMessage = "Required"

// Errors maps a field path (e.g. "detail.bhk", "floorPlans[2].title") to a
// message. An empty map means the draft is valid.
type Errors map[string]string

// Valid reports whether no rule failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// IsResidential reports whether the referenced property type is categorized
// residential. The category is resolved by a case-insensitive substring match
// on the display name; there is no stored flag, and the backend relies on
// this exact contract.
func IsResidential(catalog []domain.PropertyType, typeID string) bool {
	if typeID == "" {
		return false
	}
	for _, t := range catalog {
		if t.ID == typeID {
			return strings.Contains(strings.ToLower(t.Name), "residential")
		}
	}
	return false
}

// Validate runs every rule against the draft and returns the collected
// errors. It runs on each field change and once more, in full, right before
// submission.
func Validate(d *domain.PropertyDraft, catalog []domain.PropertyType) Errors {
	errs := Errors{}

	required := []struct {
		path  string
		value string
	}{
		{"title", d.Title},
		{"subtitle", d.Subtitle},
		{"propertyType", d.PropertyTypeRef},
		{"address", d.Address},
		{"contactNumber", d.ContactNumber},
		{"detail.sqft", d.Detail.Sqft},
		{"detail.statusType", d.Detail.StatusType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.path] = RequiredMessage
		}
	}

	// detail.bhk is constrained only for residential property types; the rule
	// re-resolves against the catalog on every run.
	if IsResidential(catalog, d.PropertyTypeRef) && strings.TrimSpace(d.Detail.BHK) == "" {
		errs["detail.bhk"] = RequiredMessage
	}

	for i, fp := range d.FloorPlans {
		if strings.TrimSpace(fp.Title) == "" {
			errs[fmt.Sprintf("floorPlans[%d].title", i)] = RequiredMessage
		}
		if fp.Image.IsZero() {
			errs[fmt.Sprintf("floorPlans[%d].image", i)] = RequiredMessage
		}
	}

	for i, img := range d.Gallery {
		if img.IsZero() {
			errs[fmt.Sprintf("gallery[%d]", i)] = RequiredMessage
		}
	}

	return errs
}
