package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/core/domain"
	"github.com/MHarnil/dwarkesh-admin/internal/core/draftform"
	"github.com/MHarnil/dwarkesh-admin/internal/core/port"
	"github.com/MHarnil/dwarkesh-admin/internal/core/usecase"
)

// Deps bundles everything the UI needs from the composition root.
type Deps struct {
	Types      port.PropertyTypeGatewayPort
	Properties port.PropertyGatewayPort
	Contacts   port.ContactGatewayPort
	Submit     *usecase.SubmitPropertyUseCase
	Load       *usecase.LoadPropertyUseCase
	Log        *zap.SugaredLogger
}

// Messages produced by the async gateway commands.
type (
	typesLoadedMsg      struct{ types []domain.PropertyType }
	propertiesLoadedMsg struct{ properties []domain.Property }
	contactsLoadedMsg   struct{ contacts []domain.ContactSubmission }

	typeSavedMsg       struct{}
	typeDeletedMsg     struct{ id string }
	propertyDeletedMsg struct{ id string }
	contactDeletedMsg  struct{ id string }

	draftLoadedMsg struct{ draft *domain.PropertyDraft }
	submitDoneMsg  struct{ wasEdit bool }

	// errMsg carries any failed command; the root model shows it as a
	// banner and leaves page state unchanged.
	errMsg struct{ err error }
)

// Page-switch requests raised by the pages themselves.
type (
	openAddFormMsg  struct{}
	openEditFormMsg struct{ id string }
	closeFormMsg    struct{ refresh bool }
)

func loadTypesCmd(ctx context.Context, deps Deps) tea.Cmd {
	return func() tea.Msg {
		types, err := deps.Types.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return typesLoadedMsg{types}
	}
}

func loadPropertiesCmd(ctx context.Context, deps Deps) tea.Cmd {
	return func() tea.Msg {
		properties, err := deps.Properties.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return propertiesLoadedMsg{properties}
	}
}

func loadContactsCmd(ctx context.Context, deps Deps) tea.Cmd {
	return func() tea.Msg {
		contacts, err := deps.Contacts.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return contactsLoadedMsg{contacts}
	}
}

func saveTypeCmd(ctx context.Context, deps Deps, id, name string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			err = deps.Types.Create(ctx, name)
		} else {
			err = deps.Types.Update(ctx, id, name)
		}
		if err != nil {
			return errMsg{err}
		}
		return typeSavedMsg{}
	}
}

func deleteTypeCmd(ctx context.Context, deps Deps, id string) tea.Cmd {
	return func() tea.Msg {
		if err := deps.Types.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return typeDeletedMsg{id}
	}
}

func deletePropertyCmd(ctx context.Context, deps Deps, id string) tea.Cmd {
	return func() tea.Msg {
		if err := deps.Properties.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return propertyDeletedMsg{id}
	}
}

func deleteContactCmd(ctx context.Context, deps Deps, id string) tea.Cmd {
	return func() tea.Msg {
		if err := deps.Contacts.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return contactDeletedMsg{id}
	}
}

func loadDraftCmd(ctx context.Context, deps Deps, id string) tea.Cmd {
	return func() tea.Msg {
		draft, err := deps.Load.Execute(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return draftLoadedMsg{draft}
	}
}

func submitCmd(ctx context.Context, deps Deps, form *draftform.Form) tea.Cmd {
	wasEdit := form.Draft().ID != ""
	return func() tea.Msg {
		if err := deps.Submit.Execute(ctx, form); err != nil {
			return errMsg{err}
		}
		return submitDoneMsg{wasEdit: wasEdit}
	}
}
