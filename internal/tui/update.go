package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// The terminal lost focus. Write both lists out so nothing is
		// lost if the process is killed while backgrounded.
		return m, m.flush()

	case tea.FocusMsg:
		return m, m.loadData()

	case MsgDataLoaded:
		m.groups = msg.Groups
		m.archived = msg.Archived
		m.categories = msg.Categories
		m.total = msg.Total
		m.buildOptions()
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.descInput.Reset()
		m.status = "Task created"
		return m, m.loadData()

	case MsgTaskArchived:
		if msg.Archived {
			m.status = fmt.Sprintf("Archived %q", msg.Title)
		} else {
			m.status = "Nothing to archive"
		}
		return m, m.loadData()

	case MsgCategoryAdded:
		m.mode = ModeNormal
		m.categoryInput.Reset()
		m.status = fmt.Sprintf("Category %q created", msg.Name)
		return m, m.loadData()

	case MsgCategoryExists:
		m.mode = ModeNormal
		m.categoryInput.Reset()
		m.status = fmt.Sprintf("Category %q already exists", msg.Name)
		return m, nil

	case MsgFlushed:
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, flushing first.
	if msg.String() == "ctrl+c" {
		return m, tea.Sequence(m.flush(), tea.Quit)
	}

	switch m.mode {
	case ModeInputTitle:
		return m.handleInputTitleKeys(msg)
	case ModeInputDesc:
		return m.handleInputDescKeys(msg)
	case ModePickCategory:
		return m.handlePickCategoryKeys(msg)
	case ModeInputCategory:
		return m.handleInputCategoryKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeNormal, ModeArchive:
		return m.handleListKeys(msg)
	}
	return m, nil
}

// handleListKeys handles keys in the normal and archive views.
func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Sequence(m.flush(), tea.Quit)

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.ToggleArchive):
		if m.mode == ModeArchive {
			m.mode = ModeNormal
		} else {
			m.mode = ModeArchive
		}
		m.cursor = 0
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	// Mutating actions apply to the active list only.
	if m.mode == ModeArchive {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.err = nil
		m.status = ""
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.NewCategory):
		m.mode = ModeInputCategory
		m.err = nil
		m.status = ""
		m.categoryInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Archive):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.archiveTask(task.ID)
	}

	return m, nil
}

// handleInputTitleKeys handles keys while entering a task title.
func (m *Model) handleInputTitleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			// An empty title cannot be submitted; stay on the field.
			return m, nil
		}
		m.mode = ModeInputDesc
		m.titleInput.Blur()
		m.descInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleInputDescKeys handles keys while entering a task description.
func (m *Model) handleInputDescKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.descInput.Blur()
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModePickCategory
		m.descInput.Blur()
		m.optionCursor = 1 // Non-Urgent is the default selection
		return m, nil
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// handlePickCategoryKeys handles keys in the category picker.
func (m *Model) handlePickCategoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputDesc
		m.descInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.optionCursor > 0 {
			m.optionCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.optionCursor < len(m.options)-1 {
			m.optionCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.optionCursor < 0 || m.optionCursor >= len(m.options) {
			return m, nil
		}
		return m, m.addTask(m.titleInput.Value(), m.descInput.Value(), m.options[m.optionCursor])
	}

	return m, nil
}

// handleInputCategoryKeys handles keys while entering a category name.
func (m *Model) handleInputCategoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.categoryInput.Reset()
		m.categoryInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		name := strings.TrimSpace(m.categoryInput.Value())
		if name == "" {
			return m, nil
		}
		m.categoryInput.Blur()
		return m, m.addCategory(name)
	}

	var cmd tea.Cmd
	m.categoryInput, cmd = m.categoryInput.Update(msg)
	return m, cmd
}

// handleHelpKeys handles keys in the help overlay.
func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help):
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Sequence(m.flush(), tea.Quit)
	}
	return m, nil
}
