package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/payload"
	"github.com/MHarnil/dwarkesh-admin/internal/core/usecase"
)

// stubGateways records destructive calls so the tests can assert what the
// pages actually triggered.
type stubGateways struct {
	deletedProperties []string
	deletedTypes      []string
	deletedContacts   []string
	savedTypes        []string
}

func (s *stubGateways) List(ctx context.Context) ([]domain.PropertyType, error) { return nil, nil }
func (s *stubGateways) Create(ctx context.Context, name string) error {
	s.savedTypes = append(s.savedTypes, name)
	return nil
}
func (s *stubGateways) Update(ctx context.Context, id, name string) error {
	s.savedTypes = append(s.savedTypes, id+"="+name)
	return nil
}
func (s *stubGateways) Delete(ctx context.Context, id string) error {
	s.deletedTypes = append(s.deletedTypes, id)
	return nil
}

type stubPropertyGateway struct {
	stub *stubGateways
}

func (s stubPropertyGateway) List(ctx context.Context) ([]domain.Property, error) { return nil, nil }
func (s stubPropertyGateway) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return &domain.Property{ID: id}, nil
}
func (s stubPropertyGateway) Create(ctx context.Context, sub *payload.Submission) error { return nil }
func (s stubPropertyGateway) Update(ctx context.Context, id string, sub *payload.Submission) error {
	return nil
}
func (s stubPropertyGateway) Delete(ctx context.Context, id string) error {
	s.stub.deletedProperties = append(s.stub.deletedProperties, id)
	return nil
}

type stubContactGateway struct {
	stub *stubGateways
}

func (s stubContactGateway) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	return nil, nil
}
func (s stubContactGateway) Delete(ctx context.Context, id string) error {
	s.stub.deletedContacts = append(s.stub.deletedContacts, id)
	return nil
}

func testDeps(stub *stubGateways) Deps {
	log := zap.NewNop().Sugar()
	properties := stubPropertyGateway{stub: stub}
	return Deps{
		Types:      stub,
		Properties: properties,
		Contacts:   stubContactGateway{stub: stub},
		Submit:     usecase.NewSubmitPropertyUseCase(properties, nopBlobs{}, log),
		Load:       usecase.NewLoadPropertyUseCase(properties, log),
		Log:        log,
	}
}

type nopBlobs struct{}

func (nopBlobs) Read(ref domain.ImageRef) (string, []byte, error) {
	return "img.png", []byte("DATA"), nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func sampleProperties() []domain.Property {
	return []domain.Property{
		{ID: "p1", Title: "Skyline", PropertyType: domain.TypeRef{ID: "t1"}},
		{ID: "p2", Title: "Riverside", PropertyType: domain.TypeRef{ID: "t2", Name: "Commercial"}},
	}
}

func TestPropertiesDeleteDeclinedIssuesNothing(t *testing.T) {
	stub := &stubGateways{}
	deps := testDeps(stub)
	ctx := context.Background()

	m := NewPropertiesModel(DefaultStyles())
	m, _ = m.Update(propertiesLoadedMsg{sampleProperties()}, ctx, deps)

	m, cmd := m.Update(key("d"), ctx, deps)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Delete")

	m, cmd = m.Update(key("n"), ctx, deps)
	assert.Nil(t, cmd)
	assert.Empty(t, stub.deletedProperties)
	assert.NotContains(t, m.View(), "(y/n)")
}

func TestPropertiesDeleteConfirmedIssuesDelete(t *testing.T) {
	stub := &stubGateways{}
	deps := testDeps(stub)
	ctx := context.Background()

	m := NewPropertiesModel(DefaultStyles())
	m, _ = m.Update(propertiesLoadedMsg{sampleProperties()}, ctx, deps)
	m, _ = m.Update(key("j"), ctx, deps) // move to p2
	m, _ = m.Update(key("d"), ctx, deps)

	_, cmd := m.Update(key("y"), ctx, deps)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, propertyDeletedMsg{}, msg)
	assert.Equal(t, []string{"p2"}, stub.deletedProperties)
}

func TestPropertiesExpandInPlace(t *testing.T) {
	deps := testDeps(&stubGateways{})
	ctx := context.Background()

	properties := sampleProperties()
	properties[0].Address = "Ring Road"
	m := NewPropertiesModel(DefaultStyles())
	m, _ = m.Update(propertiesLoadedMsg{properties}, ctx, deps)

	m, _ = m.Update(key("enter"), ctx, deps)
	assert.Contains(t, m.View(), "Ring Road")

	// A second enter collapses the same entry.
	m, _ = m.Update(key("enter"), ctx, deps)
	assert.NotContains(t, m.View(), "Ring Road")
}

func TestTypesInlineAdd(t *testing.T) {
	stub := &stubGateways{}
	deps := testDeps(stub)
	ctx := context.Background()

	m := NewTypesModel(DefaultStyles())
	m.setTypes([]domain.PropertyType{{ID: "t1", Name: "Residential"}})

	m, _ = m.Update(key("a"), ctx, deps)
	require.True(t, m.editing)
	for _, r := range "Villas" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, ctx, deps)
	}
	_, cmd := m.Update(key("enter"), ctx, deps)
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"Villas"}, stub.savedTypes)
}

func TestTypesBlankNameIsNotSaved(t *testing.T) {
	stub := &stubGateways{}
	deps := testDeps(stub)
	ctx := context.Background()

	m := NewTypesModel(DefaultStyles())
	m.setTypes(nil)
	m, _ = m.Update(key("a"), ctx, deps)
	m, cmd := m.Update(key("enter"), ctx, deps)
	assert.Nil(t, cmd)
	assert.True(t, m.editing)
	assert.Empty(t, stub.savedTypes)
}

func TestContactsDeleteConfirmation(t *testing.T) {
	stub := &stubGateways{}
	deps := testDeps(stub)
	ctx := context.Background()

	m := NewContactsModel(DefaultStyles())
	m, _ = m.Update(contactsLoadedMsg{[]domain.ContactSubmission{
		{ID: "c1", FirstName: "Asha", LastName: "Patel"},
	}}, ctx, deps)

	m, _ = m.Update(key("d"), ctx, deps)
	_, cmd := m.Update(key("y"), ctx, deps)
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"c1"}, stub.deletedContacts)
}

func TestFormShowsBHKOnlyForResidential(t *testing.T) {
	deps := testDeps(&stubGateways{})

	form := NewFormModel(deps, DefaultStyles(), nil)
	form.setCatalog([]domain.PropertyType{
		{ID: "t-res", Name: "Residential"},
		{ID: "t-com", Name: "Commercial"},
	})
	assert.NotContains(t, form.View(), "BHK")

	require.NoError(t, form.form.SetField("propertyType", "t-res"))
	form.rebuildFields()
	assert.Contains(t, form.View(), "BHK")
}

func TestFormBlockedSubmitSurfacesErrors(t *testing.T) {
	deps := testDeps(&stubGateways{})
	ctx := context.Background()

	form := NewFormModel(deps, DefaultStyles(), nil)
	cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, ctx, deps)
	assert.Nil(t, cmd)
	assert.False(t, form.inFlight)
	assert.Contains(t, form.View(), "Please fix the highlighted fields")
	assert.True(t, strings.Contains(form.View(), "Required"))
}

func TestFormSecondSubmitIgnoredWhileInFlight(t *testing.T) {
	deps := testDeps(&stubGateways{})
	ctx := context.Background()

	draft := &domain.PropertyDraft{
		Title:           "Skyline",
		Subtitle:        "Homes",
		PropertyTypeRef: "t-com",
		Address:         "Ring Road",
		ContactNumber:   "9876543210",
		Detail:          domain.DetailDraft{Sqft: "1200", StatusType: "Ready"},
		FloorPlans:      []domain.FloorPlanEntry{{Title: "Ground", Image: domain.PendingImage("g.png")}},
		Gallery:         []domain.ImageRef{domain.PersistedImage("https://cdn/1.jpg")},
	}
	form := NewFormModel(deps, DefaultStyles(), draft)
	form.setCatalog([]domain.PropertyType{{ID: "t-com", Name: "Commercial"}})

	first := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, ctx, deps)
	require.NotNil(t, first)
	require.True(t, form.inFlight)

	second := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS}, ctx, deps)
	assert.Nil(t, second)
}
