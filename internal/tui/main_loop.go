// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

type mainStage int

const (
	stageList mainStage = iota
	stageDetail
	stageAdd
	stageEdit
	stageProfile
	stageProfileEdit
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	stage   mainStage
	items   []models.Bookmark
	idx     int
	loading bool
	status  string
	errMsg  string

	profile       models.User
	profileLoaded bool

	formInputs     []textinput.Model
	formFocus      int
	formSubmitting bool
	editTarget     models.Bookmark

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadBookmarks()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.bookmarks
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case bookmarkSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.stage = stageList
		m.status = "Bookmark saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadBookmarks()
	case bookmarkDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.stage = stageList
		m.status = "Bookmark deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadBookmarks()
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.stage = stageList
			return m, nil
		}
		m.profile = msg.user
		m.profileLoaded = true
		m.errMsg = ""
		return m, nil
	case profileSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.profile = msg.user
		m.stage = stageProfile
		m.status = "Profile updated"
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage == stageAdd || m.stage == stageEdit || m.stage == stageProfileEdit {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case stageAdd, stageEdit, stageProfileEdit:
		return m.updateForm(msg)
	case stageDetail:
		return m.updateDetail(keyMsg)
	case stageProfile:
		return m.updateProfile(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadBookmarks()
	case "a":
		m.startAdd()
		return m, textinput.Blink
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No bookmarks"
			return m, nil
		}
		m.stage = stageDetail
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "No bookmarks"
			return m, nil
		}
		m.startEdit(item)
		return m, textinput.Blink
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "No bookmarks"
			return m, nil
		}
		return m, m.cmdDelete(item.ID)
	case "p":
		m.stage = stageProfile
		m.status = ""
		m.errMsg = ""
		if !m.profileLoaded {
			return m, m.cmdLoadProfile()
		}
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.stage = stageList
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.stage = stageList
	case "e":
		m.startEdit(item)
		return m, textinput.Blink
	case "ctrl+d":
		return m, m.cmdDelete(item.ID)
	case "c":
		if strings.TrimSpace(item.Link) == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(item.Link); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Link copied"
	}

	return m, nil
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = stageList
		m.status = ""
	case "e":
		if !m.profileLoaded {
			return m, nil
		}
		m.startProfileEdit()
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			switch m.stage {
			case stageProfileEdit:
				m.stage = stageProfile
			default:
				m.stage = stageList
			}
			m.formSubmitting = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSubmitting {
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageAdd:
		title := strings.TrimSpace(m.formInputs[0].Value())
		if title == "" {
			m.errMsg = "title is required"
			return m, nil
		}

		request := models.CreateBookmarkRequest{
			Title:       title,
			Description: strings.TrimSpace(m.formInputs[1].Value()),
			Link:        strings.TrimSpace(m.formInputs[2].Value()),
		}

		m.errMsg = ""
		m.formSubmitting = true
		return m, m.cmdCreate(request)

	case stageEdit:
		title := strings.TrimSpace(m.formInputs[0].Value())
		if title == "" {
			m.errMsg = "title is required"
			return m, nil
		}

		description := strings.TrimSpace(m.formInputs[1].Value())
		link := strings.TrimSpace(m.formInputs[2].Value())
		patch := models.EditBookmarkRequest{
			Title:       &title,
			Description: &description,
			Link:        &link,
		}

		m.errMsg = ""
		m.formSubmitting = true
		return m, m.cmdEdit(m.editTarget.ID, patch)

	case stageProfileEdit:
		firstName := strings.TrimSpace(m.formInputs[0].Value())
		lastName := strings.TrimSpace(m.formInputs[1].Value())
		patch := models.EditUserRequest{
			FirstName: &firstName,
			LastName:  &lastName,
		}

		m.errMsg = ""
		m.formSubmitting = true
		return m, m.cmdEditProfile(patch)
	}

	return m, nil
}

func (m *mainLoopModel) startAdd() {
	m.formInputs = newBookmarkInputs(models.Bookmark{})
	m.formFocus = 0
	m.formSubmitting = false
	m.errMsg = ""
	m.stage = stageAdd
}

func (m *mainLoopModel) startEdit(item models.Bookmark) {
	m.formInputs = newBookmarkInputs(item)
	m.formFocus = 0
	m.formSubmitting = false
	m.editTarget = item
	m.errMsg = ""
	m.stage = stageEdit
}

func (m *mainLoopModel) startProfileEdit() {
	firstName := textinput.New()
	firstName.Placeholder = "first name"
	firstName.SetValue(m.profile.FirstName)
	firstName.Width = 40
	firstName.Focus()

	lastName := textinput.New()
	lastName.Placeholder = "last name"
	lastName.SetValue(m.profile.LastName)
	lastName.Width = 40

	m.formInputs = []textinput.Model{firstName, lastName}
	m.formFocus = 0
	m.formSubmitting = false
	m.errMsg = ""
	m.stage = stageProfileEdit
}

func newBookmarkInputs(item models.Bookmark) []textinput.Model {
	title := textinput.New()
	title.Placeholder = "title"
	title.SetValue(item.Title)
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "description"
	description.SetValue(item.Description)
	description.Width = 40

	link := textinput.New()
	link.Placeholder = "https://..."
	link.SetValue(item.Link)
	link.Width = 40

	return []textinput.Model{title, description, link}
}

func (m mainLoopModel) View() string {
	switch m.stage {
	case stageDetail:
		return m.viewDetail()
	case stageAdd:
		return m.viewForm("NEW BOOKMARK")
	case stageEdit:
		return m.viewForm("EDIT BOOKMARK")
	case stageProfile:
		return m.viewProfile()
	case stageProfileEdit:
		return m.viewProfileForm()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	hotKeys := "a: add │ enter: open │ e: edit │ ctrl+d: delete │ r: refresh │ p: profile │ l: sign out │ ↑/↓: navigate"

	if m.loading {
		return renderPage("BOOKMARKS", "Loading...", hotKeys)
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No bookmarks yet. Press 'a' to add one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Title                    │ Link\n"
		out += "─────┼──────────────────────────┼──────────────────────────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %s\n",
				cursor,
				item.ID,
				fitText(item.Title, 24),
				fitText(valueOrDash(item.Link), 30),
			)
		}
	}

	return renderPage("BOOKMARKS", strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return renderPage("BOOKMARK", "Bookmark not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Title       : " + item.Title + "\n")
	b.WriteString("Description : " + valueOrDash(item.Description) + "\n")
	b.WriteString("Link        : " + valueOrDash(item.Link) + "\n")
	b.WriteString("Created     : " + item.CreatedAt.Format("2006-01-02 15:04") + "\n")
	b.WriteString("Updated     : " + item.UpdatedAt.Format("2006-01-02 15:04") + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}

	return renderPage(
		"BOOKMARK: "+fitText(item.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"c: copy link │ e: edit │ ctrl+d: delete │ esc: back",
	)
}

func (m mainLoopModel) viewForm(title string) string {
	out := "Field       │ Value\n"
	out += "────────────┼──────────────────────────────────────────\n"
	out += "Title       │ [" + m.formInputs[0].View() + "]\n"
	out += "Description │ [" + m.formInputs[1].View() + "]\n"
	out += "Link        │ [" + m.formInputs[2].View() + "]\n"
	if m.formSubmitting {
		out += "\n[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewProfile() string {
	if !m.profileLoaded {
		return renderPage("PROFILE", "Loading...", "esc: back")
	}

	out := "Email      : " + m.profile.Email + "\n"
	out += "First name : " + valueOrDash(m.profile.FirstName) + "\n"
	out += "Last name  : " + valueOrDash(m.profile.LastName) + "\n"
	if m.status != "" {
		out += "\nStatus: " + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("PROFILE", strings.TrimRight(out, "\n"), "e: edit │ esc: back")
}

func (m mainLoopModel) viewProfileForm() string {
	out := "Field      │ Value\n"
	out += "───────────┼──────────────────────────────────────────\n"
	out += "First name │ [" + m.formInputs[0].View() + "]\n"
	out += "Last name  │ [" + m.formInputs[1].View() + "]\n"
	if m.formSubmitting {
		out += "\n[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("EDIT PROFILE", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) current() (models.Bookmark, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Bookmark{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) cmdLoadBookmarks() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookmarkService
	userID := m.session.UserID

	return func() tea.Msg {
		bookmarks, err := svc.List(ctx, userID)
		return listLoadedMsg{bookmarks: bookmarks, err: err}
	}
}

func (m mainLoopModel) cmdCreate(request models.CreateBookmarkRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookmarkService

	return func() tea.Msg {
		_, err := svc.Create(ctx, request)
		return bookmarkSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdEdit(bookmarkID int64, patch models.EditBookmarkRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookmarkService

	return func() tea.Msg {
		_, err := svc.Edit(ctx, bookmarkID, patch)
		return bookmarkSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(bookmarkID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BookmarkService
	userID := m.session.UserID

	return func() tea.Msg {
		err := svc.Delete(ctx, userID, bookmarkID)
		return bookmarkDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		user, err := svc.GetProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdEditProfile(patch models.EditUserRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService

	return func() tea.Msg {
		user, err := svc.EditProfile(ctx, patch)
		return profileSavedMsg{user: user, err: err}
	}
}
