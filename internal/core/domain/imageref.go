package domain

type imageRefKind int

const (
	imageRefNone imageRefKind = iota
	imageRefPending
	imageRefPersisted
)

// ImageRef is a two-case reference to a property image: either a local file
// that has been selected but not uploaded yet (Pending), or a URL the backend
// returned for an already-saved image (Persisted). The zero value means "no
// image selected".
type ImageRef struct {
	kind  imageRefKind
	value string
}

// PendingImage references a local file selected for upload.
func PendingImage(path string) ImageRef {
	return ImageRef{kind: imageRefPending, value: path}
}

// PersistedImage references an image already stored by the backend.
func PersistedImage(url string) ImageRef {
	return ImageRef{kind: imageRefPersisted, value: url}
}

func (r ImageRef) IsZero() bool      { return r.kind == imageRefNone }
func (r ImageRef) IsPending() bool   { return r.kind == imageRefPending }
func (r ImageRef) IsPersisted() bool { return r.kind == imageRefPersisted }

// Path returns the local file path of a Pending ref, or "".
func (r ImageRef) Path() string {
	if r.kind == imageRefPending {
		return r.value
	}
	return ""
}

// URL returns the remote URL of a Persisted ref, or "".
func (r ImageRef) URL() string {
	if r.kind == imageRefPersisted {
		return r.value
	}
	return ""
}

// String is the display form used by the views.
func (r ImageRef) String() string {
	switch r.kind {
	case imageRefPending:
		return r.value + " (not uploaded)"
	case imageRefPersisted:
		return r.value
	default:
		return ""
	}
}
