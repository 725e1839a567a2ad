package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	itemservice "github.com/thenoetrevino/coursekit/internal/services/item"
	moduleservice "github.com/thenoetrevino/coursekit/internal/services/module"
	"github.com/thenoetrevino/coursekit/internal/tui/huhforms"
	"github.com/thenoetrevino/coursekit/internal/types"
)

type formKind int

const (
	formNone formKind = iota
	formAddModule
	formEditModule
	formAddLink
	formAddUpload
)

func (k formKind) intent() huhforms.Intent {
	if k == formEditModule {
		return huhforms.IntentEdit
	}
	return huhforms.IntentCreate
}

// formValues holds the fields the open form writes into
type formValues struct {
	name     string
	title    string
	url      string
	fileName string
}

// openModuleForm opens the create form, or the rename form for the
// selected module
func (m *Model) openModuleForm(edit bool) tea.Cmd {
	m.formVals = formValues{}
	if !edit {
		return m.startForm(formAddModule, huhforms.CreateModuleForm(&m.formVals.name, false))
	}

	mod, err := m.app.ModuleService.GetModule(m.app.Context(), m.selected.module)
	if err != nil {
		m.fail("Error loading module", err)
		return nil
	}
	m.editing = mod.ID
	m.formVals.name = mod.Name
	return m.startForm(formEditModule, huhforms.CreateModuleForm(&m.formVals.name, true))
}

// openItemForm opens a link or upload form targeting the selected row's
// scope, or the unassigned pool when nothing is selected
func (m *Model) openItemForm(kind formKind) tea.Cmd {
	m.formVals = formValues{}
	m.formScope = types.Unassigned
	if m.hasSel {
		m.formScope = m.selected.scope()
	}

	if kind == formAddUpload {
		return m.startForm(kind, huhforms.CreateUploadForm(&m.formVals.title, &m.formVals.fileName))
	}
	return m.startForm(formAddLink, huhforms.CreateLinkForm(&m.formVals.title, &m.formVals.url))
}

func (m *Model) startForm(kind formKind, form *huh.Form) tea.Cmd {
	m.form = form.
		WithTheme(huhforms.FormTheme(m.cfg.ColorScheme, kind.intent())).
		WithShowHelp(false)
	m.formKind = kind
	m.mode = ModeForm
	return m.form.Init()
}

// updateForm forwards every message to the open form. Esc closes the form
// without saving.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeNormal
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.editing = types.Unassigned
	m.mode = ModeNormal
}

// submitForm applies the completed form through the services
func (m *Model) submitForm() {
	ctx := m.app.Context()
	v := m.formVals

	switch m.formKind {
	case formAddModule:
		mod, err := m.app.ModuleService.CreateModule(ctx, moduleservice.CreateModuleRequest{Name: v.name})
		if err != nil {
			m.fail("Error creating module", err)
			return
		}
		m.selected, m.hasSel = moduleRef(mod.ID), true
		m.info("Module created")

	case formEditModule:
		err := m.app.ModuleService.UpdateModule(ctx, moduleservice.UpdateModuleRequest{ID: m.editing, Name: v.name})
		if err != nil {
			m.fail("Error renaming module", err)
			return
		}
		m.info("Module renamed")

	case formAddLink:
		url := strings.TrimSpace(v.url)
		title := strings.TrimSpace(v.title)
		if title == "" {
			title = url
		}
		it, err := m.app.ItemService.CreateLink(ctx, itemservice.CreateLinkRequest{
			ModuleID: m.formScope,
			Title:    title,
			URL:      url,
		})
		if err != nil {
			m.fail("Error adding link", err)
			return
		}
		m.revealItem(it.ID, it.ModuleID)
		m.info("Link added")

	case formAddUpload:
		it, err := m.app.ItemService.CreateUpload(ctx, itemservice.CreateUploadRequest{
			ModuleID: m.formScope,
			Title:    strings.TrimSpace(v.title),
			FileName: strings.TrimSpace(v.fileName),
		})
		if err != nil {
			m.fail("Error adding file", err)
			return
		}
		m.revealItem(it.ID, it.ModuleID)
		m.info("File added")

	default:
		return
	}

	m.relayout()
	m.ensureVisible()
}

// revealItem opens the item's module and selects it
func (m *Model) revealItem(id types.ItemID, module types.ModuleID) {
	if !module.IsUnassigned() {
		m.open[module] = true
	}
	m.selected, m.hasSel = rowRef{kind: rowItem, module: module, item: id}, true
}
