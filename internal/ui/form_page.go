package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/draftform"
	"github.com/MHarnil/dwarkesh-admin/internal/core/usecase"
	"github.com/MHarnil/dwarkesh-admin/internal/core/validate"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindType           // property type picker, cycled with left/right
	kindImage
)

// fieldRef addresses one visible form row by its draftform path.
type fieldRef struct {
	path  string
	label string
	kind  fieldKind
}

// FormModel is the add/edit property page. It wraps a draftform.Form; every
// keystroke is committed to the form immediately so validation state always
// matches what is on screen.
type FormModel struct {
	styles Styles

	form    *draftform.Form
	catalog []domain.PropertyType
	typeIdx int

	fields []fieldRef
	focus  int
	input  textinput.Model

	inFlight bool
	notice   string
	wasEdit  bool
}

// NewFormModel builds the form page. A nil draft means add mode.
func NewFormModel(deps Deps, styles Styles, draft *domain.PropertyDraft) FormModel {
	form := draftform.New()
	wasEdit := false
	if draft != nil {
		form.Replace(draft)
		wasEdit = draft.ID != ""
	}

	input := textinput.New()
	input.CharLimit = 300
	input.Focus()

	m := FormModel{
		styles:  styles,
		form:    form,
		input:   input,
		wasEdit: wasEdit,
	}
	m.rebuildFields()
	m.loadFocusedValue()
	return m
}

func (m *FormModel) setCatalog(types []domain.PropertyType) {
	m.catalog = types
	m.form.SetCatalog(types)
	m.syncTypeIdx()
	m.rebuildFields()
}

func (m *FormModel) setCatalogEntries(entries []typeEntry) {
	types := make([]domain.PropertyType, 0, len(entries))
	for _, e := range entries {
		types = append(types, domain.PropertyType{ID: e.ID, Name: e.Name})
	}
	m.setCatalog(types)
}

// submissionFailed resets the in-flight guard after an error; a validation
// failure additionally surfaces every remaining error inline.
func (m *FormModel) submissionFailed(err error) {
	m.inFlight = false
	var vErr *usecase.ValidationFailedError
	if errors.As(err, &vErr) {
		m.form.TouchAll()
		m.notice = "Please fix the highlighted fields"
	}
}

func (m *FormModel) syncTypeIdx() {
	m.typeIdx = -1
	for i, t := range m.catalog {
		if t.ID == m.form.Draft().PropertyTypeRef {
			m.typeIdx = i
			return
		}
	}
}

// rebuildFields recomputes the visible rows: the bhk row appears only for
// residential types, and the list sections grow and shrink with the draft.
func (m *FormModel) rebuildFields() {
	d := m.form.Draft()
	fields := []fieldRef{
		{"title", "Title", kindText},
		{"subtitle", "Subtitle", kindText},
		{"propertyType", "Property type", kindType},
		{"address", "Address", kindText},
		{"contactNumber", "Contact number", kindText},
		{"googleMap", "Google map link", kindText},
	}
	if validate.IsResidential(m.catalog, d.PropertyTypeRef) {
		fields = append(fields, fieldRef{"detail.bhk", "BHK", kindText})
	}
	fields = append(fields,
		fieldRef{"detail.sqft", "Sqft", kindText},
		fieldRef{"detail.statusType", "Status", kindText},
	)
	for i := range d.FloorPlans {
		fields = append(fields,
			fieldRef{path("floorPlans[%d].title", i), "Plan title", kindText},
			fieldRef{path("floorPlans[%d].image", i), "Plan image", kindImage},
		)
	}
	for i := range d.Gallery {
		fields = append(fields, fieldRef{path("gallery[%d]", i), "Gallery image", kindImage})
	}

	m.fields = fields
	if m.focus >= len(m.fields) {
		m.focus = len(m.fields) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func path(pattern string, i int) string {
	return fmt.Sprintf(pattern, i)
}

func (m *FormModel) focused() fieldRef { return m.fields[m.focus] }

// loadFocusedValue mirrors the draft value of the focused field into the
// text input.
func (m *FormModel) loadFocusedValue() {
	f := m.focused()
	m.input.SetValue(m.fieldValue(f))
	m.input.CursorEnd()
}

func (m *FormModel) fieldValue(f fieldRef) string {
	d := m.form.Draft()
	switch f.path {
	case "title":
		return d.Title
	case "subtitle":
		return d.Subtitle
	case "propertyType":
		return d.PropertyTypeRef
	case "address":
		return d.Address
	case "contactNumber":
		return d.ContactNumber
	case "googleMap":
		return d.GoogleMap
	case "detail.bhk":
		return d.Detail.BHK
	case "detail.sqft":
		return d.Detail.Sqft
	case "detail.statusType":
		return d.Detail.StatusType
	}
	for i, fp := range d.FloorPlans {
		if f.path == path("floorPlans[%d].title", i) {
			return fp.Title
		}
		if f.path == path("floorPlans[%d].image", i) {
			return imageInput(fp.Image)
		}
	}
	for i, img := range d.Gallery {
		if f.path == path("gallery[%d]", i) {
			return imageInput(img)
		}
	}
	return ""
}

// imageInput renders an image slot back into editable text.
func imageInput(ref domain.ImageRef) string {
	if ref.IsPending() {
		return ref.Path()
	}
	return ref.URL()
}

// parseImageInput classifies what the user typed: URLs stay persisted
// references, anything else is a local file selected for upload.
func parseImageInput(value string) domain.ImageRef {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.ImageRef{}
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return domain.PersistedImage(value)
	}
	return domain.PendingImage(value)
}

// commit writes the input's current text through the form.
func (m *FormModel) commit() {
	f := m.focused()
	switch f.kind {
	case kindImage:
		_ = m.form.SetImage(f.path, parseImageInput(m.input.Value()))
	case kindText:
		_ = m.form.SetField(f.path, m.input.Value())
	}
}

func (m *FormModel) moveFocus(delta int) {
	m.form.Touch(m.focused().path)
	m.focus += delta
	if m.focus < 0 {
		m.focus = len(m.fields) - 1
	}
	if m.focus >= len(m.fields) {
		m.focus = 0
	}
	m.loadFocusedValue()
}

// cycleType steps the property type picker through the catalog.
func (m *FormModel) cycleType(delta int) {
	if len(m.catalog) == 0 {
		return
	}
	m.typeIdx += delta
	if m.typeIdx < 0 {
		m.typeIdx = len(m.catalog) - 1
	}
	if m.typeIdx >= len(m.catalog) {
		m.typeIdx = 0
	}
	_ = m.form.SetField("propertyType", m.catalog[m.typeIdx].ID)
	m.rebuildFields() // the bhk row may have appeared or vanished
}

// removeFocusedListEntry maps the focused path back to its list and index.
func (m *FormModel) removeFocusedListEntry() {
	f := m.focused()
	d := m.form.Draft()
	for i := range d.FloorPlans {
		if f.path == path("floorPlans[%d].title", i) || f.path == path("floorPlans[%d].image", i) {
			_ = m.form.RemoveListItem(draftform.ListFloorPlans, i)
			m.rebuildFields()
			m.loadFocusedValue()
			return
		}
	}
	for i := range d.Gallery {
		if f.path == path("gallery[%d]", i) {
			_ = m.form.RemoveListItem(draftform.ListGallery, i)
			m.rebuildFields()
			m.loadFocusedValue()
			return
		}
	}
}

func (m *FormModel) Update(msg tea.Msg, ctx context.Context, deps Deps) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.notice = ""

	switch key.String() {
	case "esc":
		return func() tea.Msg { return closeFormMsg{refresh: false} }

	case "up", "shift+tab":
		m.moveFocus(-1)
		return nil
	case "down", "tab", "enter":
		m.moveFocus(1)
		return nil

	case "left", "right":
		if m.focused().kind == kindType {
			delta := 1
			if key.String() == "left" {
				delta = -1
			}
			m.cycleType(delta)
			return nil
		}

	case "ctrl+n":
		_ = m.form.PushListItem(draftform.ListFloorPlans)
		m.rebuildFields()
		return nil
	case "ctrl+g":
		_ = m.form.PushListItem(draftform.ListGallery)
		m.rebuildFields()
		return nil
	case "ctrl+r":
		m.removeFocusedListEntry()
		return nil

	case "ctrl+s":
		if m.inFlight {
			return nil
		}
		m.commit()
		if !m.form.Errors().Valid() {
			m.form.TouchAll()
			m.notice = "Please fix the highlighted fields"
			return nil
		}
		m.inFlight = true
		return submitCmd(ctx, deps, m.form)
	}

	if m.focused().kind == kindType {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.commit()
	return cmd
}

func (m *FormModel) View() string {
	var b strings.Builder
	title := "Add Property"
	if m.wasEdit {
		title = "Edit Property"
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(m.styles.Error.Render(m.notice) + "\n\n")
	}
	if m.inFlight {
		b.WriteString(m.styles.Muted.Render("Submitting...") + "\n\n")
	}

	lastSection := ""
	for i, f := range m.fields {
		if s := sectionOf(f.path); s != lastSection {
			lastSection = s
			if s != "" {
				b.WriteString("\n" + m.styles.Title.Render(s) + "\n")
			}
		}
		b.WriteString(m.renderField(i, f))
	}

	b.WriteString("\n" + m.styles.Help.Render("ctrl+n: add floor plan · ctrl+g: add gallery image · ctrl+r: remove entry"))
	return b.String()
}

func sectionOf(p string) string {
	switch {
	case strings.HasPrefix(p, "detail."):
		return "Details"
	case strings.HasPrefix(p, "floorPlans["):
		return "Floor Plans"
	case strings.HasPrefix(p, "gallery["):
		return "Gallery"
	default:
		return ""
	}
}

func (m *FormModel) renderField(i int, f fieldRef) string {
	var b strings.Builder
	prefix := "  "
	label := m.styles.Label.Render(f.label + ": ")

	var value string
	switch {
	case f.kind == kindType:
		value = m.typeDisplay()
		if i == m.focus {
			value = "< " + value + " >"
		}
	case i == m.focus:
		value = m.input.View()
	default:
		value = m.fieldValue(f)
		if value == "" {
			value = m.styles.Muted.Render("(empty)")
		}
	}
	if i == m.focus {
		prefix = "> "
	}

	b.WriteString(prefix + label + value)
	if err := m.form.VisibleError(f.path); err != "" {
		b.WriteString("  " + m.styles.Error.Render(err))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *FormModel) typeDisplay() string {
	id := m.form.Draft().PropertyTypeRef
	if id == "" {
		return m.styles.Muted.Render("none selected")
	}
	for _, t := range m.catalog {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
