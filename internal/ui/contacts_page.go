package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
)

// ContactsModel is the contact submissions page: read-only cards plus
// delete with confirmation.
type ContactsModel struct {
	styles Styles

	contacts  []domain.ContactSubmission
	cursor    int
	confirmID string
	loading   bool
}

// NewContactsModel returns the page in its initial loading state.
func NewContactsModel(styles Styles) ContactsModel {
	return ContactsModel{styles: styles, loading: true}
}

func (m ContactsModel) Update(msg tea.Msg, ctx context.Context, deps Deps) (ContactsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.contacts = msg.contacts
		m.loading = false
		m.confirmID = ""
		if m.cursor >= len(m.contacts) {
			m.cursor = len(m.contacts) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case contactDeletedMsg:
		return m, loadContactsCmd(ctx, deps)

	case tea.KeyMsg:
		if m.confirmID != "" {
			switch msg.String() {
			case "y", "Y":
				id := m.confirmID
				m.confirmID = ""
				m.loading = true
				return m, deleteContactCmd(ctx, deps, id)
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
			if m.cursor < len(m.contacts)-1 {
				m.cursor++
			}
		case "d":
			if c, ok := m.current(); ok {
				m.confirmID = c.ID
			}
		case "r":
			m.loading = true
			return m, loadContactsCmd(ctx, deps)
		}
	}
	return m, nil
}

func (m ContactsModel) current() (domain.ContactSubmission, bool) {
	if m.cursor < 0 || m.cursor >= len(m.contacts) {
		return domain.ContactSubmission{}, false
	}
	return m.contacts[m.cursor], true
}

func (m ContactsModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Contact Submissions"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if len(m.contacts) == 0 {
		b.WriteString(m.styles.Muted.Render("No contact submissions."))
		b.WriteString("\n")
	}

	for i, c := range m.contacts {
		name := strings.TrimSpace(c.FirstName + " " + c.LastName)
		header := fmt.Sprintf("%s  %s", name, m.styles.Muted.Render(c.Email))
		if i == m.cursor {
			header = m.styles.Selected.Render(name) + "  " + m.styles.Muted.Render(c.Email)
			b.WriteString("> " + header + "\n")
		} else {
			b.WriteString("  " + header + "\n")
		}

		if c.Project != "" {
			b.WriteString("    " + m.styles.Label.Render("Project: ") + c.Project + "\n")
		}
		if c.ContactNo != "" {
			b.WriteString("    " + m.styles.Label.Render("Phone: ") + c.ContactNo + "\n")
		}
		if c.Message != "" {
			b.WriteString("    " + m.styles.Value.Render(c.Message) + "\n")
		}
		if m.confirmID == c.ID {
			b.WriteString("    " + m.styles.Confirm.Render(fmt.Sprintf("Delete submission from %q? (y/n)", name)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("d: delete · r: refresh"))
	return b.String()
}
