package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageProperties page = iota
	pageTypes
	pageContacts
	pageForm
)

var tabTitles = []string{"Properties", "Property Types", "Contacts"}

// Model is the root bubbletea model: it owns page switching, the shared
// property type catalog, the error banner and cancellation of in-flight
// loads when the user leaves a page.
type Model struct {
	deps   Deps
	styles Styles

	page     page
	lastPage page // list page to return to when the form closes

	properties PropertiesModel
	types      TypesModel
	contacts   ContactsModel
	form       *FormModel

	catalog catalogState

	width  int
	height int

	banner     string
	bannerIsOK bool

	baseCtx    context.Context
	loadCtx    context.Context
	cancelLoad context.CancelFunc
}

type catalogState struct {
	loaded bool
	types  []typeEntry
}

type typeEntry struct {
	ID   string
	Name string
}

// NewModel wires the root model.
func NewModel(deps Deps) Model {
	styles := DefaultStyles()
	baseCtx := context.Background()
	loadCtx, cancel := context.WithCancel(baseCtx)
	return Model{
		deps:       deps,
		styles:     styles,
		page:       pageProperties,
		lastPage:   pageProperties,
		properties: NewPropertiesModel(styles),
		types:      NewTypesModel(styles),
		contacts:   NewContactsModel(styles),
		baseCtx:    baseCtx,
		loadCtx:    loadCtx,
		cancelLoad: cancel,
	}
}

// Init fetches the property list and the type catalog up front; the catalog
// feeds both the list rendering and the form's conditional validation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadPropertiesCmd(m.loadCtx, m.deps), loadTypesCmd(m.loadCtx, m.deps))
}

// freshLoadCtx cancels whatever loads are still in flight and returns a new
// context for the next page's loads.
func (m *Model) freshLoadCtx() context.Context {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.loadCtx = ctx
	m.cancelLoad = cancel
	return ctx
}

func (m *Model) switchTo(target page) tea.Cmd {
	m.page = target
	m.banner = ""
	ctx := m.freshLoadCtx()
	switch target {
	case pageProperties:
		m.properties.loading = true
		return tea.Batch(loadPropertiesCmd(ctx, m.deps), loadTypesCmd(ctx, m.deps))
	case pageTypes:
		m.types.loading = true
		return loadTypesCmd(ctx, m.deps)
	case pageContacts:
		m.contacts.loading = true
		return loadContactsCmd(ctx, m.deps)
	}
	return nil
}

// Update routes messages to the active page and handles the global keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancelLoad != nil {
				m.cancelLoad()
			}
			return m, tea.Quit
		case "tab":
			if m.page != pageForm {
				return m, m.switchTo((m.page + 1) % 3)
			}
		case "1", "2", "3":
			// Direct tab selection, except while typing in the form or in
			// the type name editor.
			if m.page != pageForm && !m.types.editing {
				target := page(int(msg.String()[0] - '1'))
				if target != m.page {
					return m, m.switchTo(target)
				}
				return m, nil
			}
		case "q":
			if m.page != pageForm && !m.types.editing {
				if m.cancelLoad != nil {
					m.cancelLoad()
				}
				return m, tea.Quit
			}
		}
		m.banner = ""

	case errMsg:
		m.banner = msg.err.Error()
		m.bannerIsOK = false
		// The failing page keeps its state; just stop its spinner.
		m.properties.loading = false
		m.types.loading = false
		m.contacts.loading = false
		if m.form != nil {
			m.form.submissionFailed(msg.err)
		}
		return m, nil

	case typesLoadedMsg:
		m.catalog.loaded = true
		m.catalog.types = nil
		for _, t := range msg.types {
			m.catalog.types = append(m.catalog.types, typeEntry{ID: t.ID, Name: t.Name})
		}
		m.properties.setTypeNames(msg.types)
		m.types.setTypes(msg.types)
		if m.form != nil {
			m.form.setCatalog(msg.types)
		}
		return m, nil

	case openAddFormMsg:
		form := NewFormModel(m.deps, m.styles, nil)
		form.setCatalogEntries(m.catalog.types)
		m.form = &form
		m.lastPage = m.page
		m.page = pageForm
		return m, nil

	case openEditFormMsg:
		ctx := m.freshLoadCtx()
		m.properties.loading = true
		return m, loadDraftCmd(ctx, m.deps, msg.id)

	case draftLoadedMsg:
		m.properties.loading = false
		form := NewFormModel(m.deps, m.styles, msg.draft)
		form.setCatalogEntries(m.catalog.types)
		m.form = &form
		m.lastPage = pageProperties
		m.page = pageForm
		return m, nil

	case closeFormMsg:
		m.form = nil
		m.page = m.lastPage
		if msg.refresh {
			return m, m.switchTo(m.page)
		}
		return m, nil

	case submitDoneMsg:
		m.form = nil
		m.page = pageProperties
		if msg.wasEdit {
			m.banner = "Property updated successfully"
		} else {
			m.banner = "Property added successfully"
		}
		m.bannerIsOK = true
		return m, m.switchTo(pageProperties)
	}

	var cmd tea.Cmd
	switch m.page {
	case pageProperties:
		m.properties, cmd = m.properties.Update(msg, m.loadCtx, m.deps)
	case pageTypes:
		m.types, cmd = m.types.Update(msg, m.loadCtx, m.deps)
	case pageContacts:
		m.contacts, cmd = m.contacts.Update(msg, m.loadCtx, m.deps)
	case pageForm:
		if m.form != nil {
			cmd = m.form.Update(msg, m.baseCtx, m.deps)
		}
	}
	return m, cmd
}

// View renders the tab bar, the banner and the active page.
func (m Model) View() string {
	var tabs string
	for i, title := range tabTitles {
		style := m.styles.Tab
		if int(m.page) == i || (m.page == pageForm && int(m.lastPage) == i) {
			style = m.styles.ActiveTab
		}
		tabs += style.Render(title)
	}

	banner := ""
	if m.banner != "" {
		if m.bannerIsOK {
			banner = "\n" + m.styles.Success.Render(m.banner)
		} else {
			banner = "\n" + m.styles.Banner.Render(m.banner)
		}
	}

	var body string
	switch m.page {
	case pageProperties:
		body = m.properties.View()
	case pageTypes:
		body = m.types.View()
	case pageContacts:
		body = m.contacts.View()
	case pageForm:
		if m.form != nil {
			body = m.form.View()
		}
	}

	help := m.styles.Help.Render("tab: switch page · q: quit")
	if m.page == pageForm {
		help = m.styles.Help.Render("↑/↓: fields · ctrl+s: submit · esc: cancel")
	}

	return tabs + banner + "\n\n" + body + "\n" + help
}
