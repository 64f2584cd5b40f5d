// Package draftform holds the editable state of one property draft: the
// draft itself, a per-path touched set and the current validation errors.
// Fields are addressed by dotted/indexed paths, the same paths the validation
// engine reports errors under ("detail.bhk", "floorPlans[2].title",
// "gallery[0]").
package draftform

import (
	"fmt"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/validate"
)

// List paths accepted by PushListItem and RemoveListItem.
const (
	ListFloorPlans = "floorPlans"
	ListGallery    = "gallery"
)

// Form is the form state model. Every mutation revalidates the draft
// synchronously, so Errors always reflects the current state.
type Form struct {
	draft   *domain.PropertyDraft
	catalog []domain.PropertyType
	touched map[string]bool
	errors  validate.Errors
}

// New returns a form over an empty draft (one blank floor plan, one blank
// gallery slot).
func New() *Form {
	f := &Form{
		draft:   domain.NewPropertyDraft(),
		touched: make(map[string]bool),
	}
	f.revalidate()
	return f
}

// Draft exposes the current draft for rendering and submission.
func (f *Form) Draft() *domain.PropertyDraft { return f.draft }

// Catalog returns the property type snapshot the form validates against.
func (f *Form) Catalog() []domain.PropertyType { return f.catalog }

// SetCatalog installs a fresh property type snapshot. The conditional
// detail.bhk rule depends on it, so validation reruns.
func (f *Form) SetCatalog(types []domain.PropertyType) {
	f.catalog = types
	f.revalidate()
}

// Replace swaps in a new draft, used when an edit-mode fetch completes.
// The touched set resets: hydrated values have not been edited yet.
func (f *Form) Replace(d *domain.PropertyDraft) {
	f.draft = d
	f.touched = make(map[string]bool)
	f.revalidate()
}

// SetField writes a text field addressed by path and marks it touched.
func (f *Form) SetField(path, value string) error {
	switch path {
	case "title":
		f.draft.Title = value
	case "subtitle":
		f.draft.Subtitle = value
	case "propertyType":
		f.draft.PropertyTypeRef = value
	case "address":
		f.draft.Address = value
	case "contactNumber":
		f.draft.ContactNumber = value
	case "googleMap":
		f.draft.GoogleMap = value
	case "detail.bhk":
		f.draft.Detail.BHK = value
	case "detail.sqft":
		f.draft.Detail.Sqft = value
	case "detail.statusType":
		f.draft.Detail.StatusType = value
	default:
		if i, ok := listIndex(path, "floorPlans[%d].title"); ok && i < len(f.draft.FloorPlans) {
			f.draft.FloorPlans[i].Title = value
			break
		}
		return fmt.Errorf("draftform: unknown field path %q", path)
	}
	f.touched[path] = true
	f.revalidate()
	return nil
}

// SetImage writes an image slot ("floorPlans[i].image" or "gallery[i]") and
// marks it touched.
func (f *Form) SetImage(path string, ref domain.ImageRef) error {
	if i, ok := listIndex(path, "floorPlans[%d].image"); ok && i < len(f.draft.FloorPlans) {
		f.draft.FloorPlans[i].Image = ref
	} else if i, ok := listIndex(path, "gallery[%d]"); ok && i < len(f.draft.Gallery) {
		f.draft.Gallery[i] = ref
	} else {
		return fmt.Errorf("draftform: unknown image path %q", path)
	}
	f.touched[path] = true
	f.revalidate()
	return nil
}

// PushListItem appends a blank entry to the named list.
func (f *Form) PushListItem(listPath string) error {
	switch listPath {
	case ListFloorPlans:
		f.draft.FloorPlans = append(f.draft.FloorPlans, domain.FloorPlanEntry{})
	case ListGallery:
		f.draft.Gallery = append(f.draft.Gallery, domain.ImageRef{})
	default:
		return fmt.Errorf("draftform: unknown list path %q", listPath)
	}
	f.revalidate()
	return nil
}

// RemoveListItem removes the entry at index. Removing the last remaining
// entry leaves one blank entry instead: both lists stay non-empty by
// construction.
func (f *Form) RemoveListItem(listPath string, index int) error {
	switch listPath {
	case ListFloorPlans:
		if index < 0 || index >= len(f.draft.FloorPlans) {
			return fmt.Errorf("draftform: floor plan index %d out of range", index)
		}
		f.draft.FloorPlans = append(f.draft.FloorPlans[:index], f.draft.FloorPlans[index+1:]...)
		if len(f.draft.FloorPlans) == 0 {
			f.draft.FloorPlans = []domain.FloorPlanEntry{{}}
		}
	case ListGallery:
		if index < 0 || index >= len(f.draft.Gallery) {
			return fmt.Errorf("draftform: gallery index %d out of range", index)
		}
		f.draft.Gallery = append(f.draft.Gallery[:index], f.draft.Gallery[index+1:]...)
		if len(f.draft.Gallery) == 0 {
			f.draft.Gallery = []domain.ImageRef{{}}
		}
	default:
		return fmt.Errorf("draftform: unknown list path %q", listPath)
	}
	f.clearTouchedList(listPath)
	f.revalidate()
	return nil
}

// Touch marks a field as visited without changing it (blur without edit).
func (f *Form) Touch(path string) { f.touched[path] = true }

// Errors returns the full current error map, touched or not. Submission is
// blocked while it is non-empty.
func (f *Form) Errors() validate.Errors { return f.errors }

// VisibleError returns the error for path only once the field was touched;
// untouched fields show no inline error.
func (f *Form) VisibleError(path string) string {
	if !f.touched[path] {
		return ""
	}
	return f.errors[path]
}

// TouchAll marks every currently failing path touched, used on a blocked
// submit so all remaining errors become visible at once.
func (f *Form) TouchAll() {
	for path := range f.errors {
		f.touched[path] = true
	}
}

func (f *Form) revalidate() {
	f.errors = validate.Validate(f.draft, f.catalog)
}

// clearTouchedList drops touched entries for a list whose indexes shifted
// after a removal; stale per-index touched flags would mislabel neighbors.
func (f *Form) clearTouchedList(listPath string) {
	for path := range f.touched {
		if listPath == ListFloorPlans {
			if _, ok := listIndex(path, "floorPlans[%d].title"); ok {
				delete(f.touched, path)
			}
			if _, ok := listIndex(path, "floorPlans[%d].image"); ok {
				delete(f.touched, path)
			}
		} else if _, ok := listIndex(path, "gallery[%d]"); ok {
			delete(f.touched, path)
		}
	}
}

// listIndex matches path against an indexed pattern like "gallery[%d]" and
// returns the index.
func listIndex(path, pattern string) (int, bool) {
	var i int
	n, err := fmt.Sscanf(path, pattern, &i)
	if err != nil || n != 1 {
		return 0, false
	}
	// Sscanf accepts a matching prefix; rebuild to reject trailing garbage.
	if fmt.Sprintf(pattern, i) != path {
		return 0, false
	}
	return i, i >= 0
}
