package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// TypesModel is the property type catalog page: a flat list with inline
// add/rename editing and delete confirmation.
type TypesModel struct {
	styles Styles

	types   []domain.PropertyType
	cursor  int
	loading bool

	editing   bool
	editID    string // "" while adding a new type
	input     textinput.Model
	confirmID string
}

// NewTypesModel returns the page in its initial loading state.
func NewTypesModel(styles Styles) TypesModel {
	input := textinput.New()
	input.Placeholder = "Type name"
	input.CharLimit = 80
	return TypesModel{
		styles:  styles,
		input:   input,
		loading: true,
	}
}

func (m *TypesModel) setTypes(types []domain.PropertyType) {
	m.types = types
	m.loading = false
	if m.cursor >= len(m.types) {
		m.cursor = len(m.types) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TypesModel) Update(msg tea.Msg, ctx context.Context, deps Deps) (TypesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case typeSavedMsg, typeDeletedMsg:
		m.loading = true
		return m, loadTypesCmd(ctx, deps)

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				name := strings.TrimSpace(m.input.Value())
				if name == "" {
					return m, nil
				}
				id := m.editID
				m.editing = false
				m.loading = true
				return m, saveTypeCmd(ctx, deps, id, name)
			case "esc":
				m.editing = false
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if m.confirmID != "" {
			switch msg.String() {
			case "y", "Y":
				id := m.confirmID
				m.confirmID = ""
				m.loading = true
				return m, deleteTypeCmd(ctx, deps, id)
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
			if m.cursor < len(m.types)-1 {
				m.cursor++
			}
		case "a":
			m.editing = true
			m.editID = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "e", "enter":
			if t, ok := m.current(); ok {
				m.editing = true
				m.editID = t.ID
				m.input.SetValue(t.Name)
				m.input.CursorEnd()
				m.input.Focus()
				return m, textinput.Blink
			}
		case "d":
			if t, ok := m.current(); ok {
				m.confirmID = t.ID
			}
		case "r":
			m.loading = true
			return m, loadTypesCmd(ctx, deps)
		}
	}
	return m, nil
}

func (m TypesModel) current() (domain.PropertyType, bool) {
	if m.cursor < 0 || m.cursor >= len(m.types) {
		return domain.PropertyType{}, false
	}
	return m.types[m.cursor], true
}

func (m TypesModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Property Types"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if len(m.types) == 0 && !m.editing {
		b.WriteString(m.styles.Muted.Render("No property types yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, t := range m.types {
		if m.editing && m.editID == t.ID {
			b.WriteString("> " + m.input.View() + "\n")
			continue
		}
		if i == m.cursor && !m.editing {
			b.WriteString("> " + m.styles.Selected.Render(t.Name) + "\n")
		} else {
			b.WriteString("  " + t.Name + "\n")
		}
		if m.confirmID == t.ID {
			b.WriteString("    " + m.styles.Confirm.Render(fmt.Sprintf("Delete %q? (y/n)", t.Name)) + "\n")
		}
	}

	if m.editing && m.editID == "" {
		b.WriteString("+ " + m.input.View() + "\n")
	}

	if m.editing {
		b.WriteString("\n" + m.styles.Help.Render("enter: save · esc: cancel"))
	} else {
		b.WriteString("\n" + m.styles.Help.Render("a: add · e: rename · d: delete · r: refresh"))
	}
	return b.String()
}
