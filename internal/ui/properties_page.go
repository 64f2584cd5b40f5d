package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// PropertiesModel is the property list page: a cursor-driven list where one
// entry at a time can be expanded in place to show the full record, plus
// add/edit/delete entry points.
type PropertiesModel struct {
	styles Styles

	properties []domain.Property
	typeNames  map[string]string // property type id -> display name

	cursor    int
	expanded  string // id of the expanded property, "" for none
	confirmID string // id pending delete confirmation, "" for none
	loading   bool
}

// NewPropertiesModel returns the page in its initial loading state.
func NewPropertiesModel(styles Styles) PropertiesModel {
	return PropertiesModel{
		styles:    styles,
		typeNames: make(map[string]string),
		loading:   true,
	}
}

// setTypeNames refreshes the id-to-name index used to render list entries
// whose propertyType came back as a bare id.
func (m *PropertiesModel) setTypeNames(types []domain.PropertyType) {
	m.typeNames = make(map[string]string, len(types))
	for _, t := range types {
		m.typeNames[t.ID] = t.Name
	}
}

func (m PropertiesModel) Update(msg tea.Msg, ctx context.Context, deps Deps) (PropertiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case propertiesLoadedMsg:
		m.properties = msg.properties
		m.loading = false
		m.confirmID = ""
		if m.cursor >= len(m.properties) {
			m.cursor = len(m.properties) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case propertyDeletedMsg:
		return m, loadPropertiesCmd(ctx, deps)

	case tea.KeyMsg:
		// A pending confirmation swallows every key until answered.
		if m.confirmID != "" {
			switch msg.String() {
			case "y", "Y":
				id := m.confirmID
				m.confirmID = ""
				m.loading = true
				return m, deletePropertyCmd(ctx, deps, id)
			case "n", "N", "esc":
				m.confirmID = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.properties)-1 {
				m.cursor++
			}
		case "enter":
			if p, ok := m.current(); ok {
				if m.expanded == p.ID {
					m.expanded = ""
				} else {
					m.expanded = p.ID
				}
			}
		case "a":
			return m, func() tea.Msg { return openAddFormMsg{} }
		case "e":
			if p, ok := m.current(); ok {
				id := p.ID
				return m, func() tea.Msg { return openEditFormMsg{id: id} }
			}
		case "d":
			if p, ok := m.current(); ok {
				m.confirmID = p.ID
			}
		case "r":
			m.loading = true
			return m, loadPropertiesCmd(ctx, deps)
		}
	}
	return m, nil
}

func (m PropertiesModel) current() (domain.Property, bool) {
	if m.cursor < 0 || m.cursor >= len(m.properties) {
		return domain.Property{}, false
	}
	return m.properties[m.cursor], true
}

func (m PropertiesModel) typeName(ref domain.TypeRef) string {
	if ref.Name != "" {
		return ref.Name
	}
	if name, ok := m.typeNames[ref.ID]; ok {
		return name
	}
	return ref.ID
}

func (m PropertiesModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Properties"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if len(m.properties) == 0 {
		b.WriteString(m.styles.Muted.Render("No properties yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, p := range m.properties {
		prefix := "  "
		line := fmt.Sprintf("%s  %s", p.Title, m.styles.Muted.Render(m.typeName(p.PropertyType)))
		if i == m.cursor {
			prefix = "> "
			line = m.styles.Selected.Render(p.Title) + "  " + m.styles.Muted.Render(m.typeName(p.PropertyType))
		}
		b.WriteString(prefix + line + "\n")

		if m.confirmID == p.ID {
			b.WriteString("    " + m.styles.Confirm.Render(fmt.Sprintf("Delete %q? (y/n)", p.Title)) + "\n")
		}
		if m.expanded == p.ID {
			b.WriteString(m.renderDetail(p))
		}
	}

	b.WriteString("\n" + m.styles.Help.Render("enter: expand · a: add · e: edit · d: delete · r: refresh"))
	return b.String()
}

func (m PropertiesModel) renderDetail(p domain.Property) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("    " + m.styles.Label.Render(label+": ") + m.styles.Value.Render(value) + "\n")
	}

	row("Subtitle", p.Subtitle)
	row("Type", m.typeName(p.PropertyType))
	row("Address", p.Address)
	row("Contact", p.ContactNumber)
	row("Map", p.GoogleMap)
	if p.Detail.BHK != 0 {
		row("BHK", fmt.Sprintf("%g", p.Detail.BHK))
	}
	if p.Detail.Sqft != 0 {
		row("Sqft", fmt.Sprintf("%g", p.Detail.Sqft))
	}
	row("Status", p.Detail.StatusType)

	for i, fp := range p.FloorPlans {
		row(fmt.Sprintf("Floor plan %d", i+1), fmt.Sprintf("%s  %s", fp.Title, m.styles.Muted.Render(fp.Image)))
	}
	for i, url := range p.Gallery {
		row(fmt.Sprintf("Gallery %d", i+1), url)
	}
	return b.String()
}
