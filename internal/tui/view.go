package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.mode {
	case ModeHelp:
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	case ModeInputTitle, ModeInputDesc:
		b.WriteString(m.viewTaskForm())
	case ModePickCategory:
		b.WriteString(m.viewTaskForm())
		b.WriteString("\n")
		b.WriteString(m.viewCategoryPicker())
	case ModeInputCategory:
		b.WriteString(m.styles.InputLabel.Render("New category"))
		b.WriteString("\n")
		b.WriteString(m.categoryInput.View())
	case ModeArchive:
		b.WriteString(m.viewArchive())
	case ModeNormal:
		b.WriteString(m.viewGroups())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title bar.
func (m *Model) viewHeader() string {
	title := fmt.Sprintf("taskpocket — %d tasks", m.total)
	if m.mode == ModeArchive {
		title = fmt.Sprintf("taskpocket — archive (%d)", len(m.archived))
	}
	return m.styles.Header.Width(max(m.width-2, 0)).Render(m.styles.HeaderText.Render(title))
}

// viewGroups renders the active tasks grouped by category.
func (m *Model) viewGroups() string {
	if m.total == 0 {
		return m.styles.TaskDesc.Render("No tasks. Press n to create one.")
	}

	var b strings.Builder
	index := 0
	for _, group := range m.groups {
		b.WriteString(m.styles.GroupHeader.Render(group.Name))
		b.WriteString("\n")
		for _, task := range group.Tasks {
			style := m.styles.TaskNormal
			prefix := "  "
			if index == m.cursor {
				style = m.styles.TaskSelected
				prefix = "> "
			}
			if task.Done {
				style = m.styles.TaskDone
			}
			b.WriteString(style.Render(prefix + task.Title))
			b.WriteString("\n")
			if task.Description != "" && index == m.cursor {
				b.WriteString(m.styles.TaskDesc.Render("    " + task.Description))
				b.WriteString("\n")
			}
			index++
		}
	}
	return b.String()
}

// viewArchive renders the archived task list.
func (m *Model) viewArchive() string {
	if len(m.archived) == 0 {
		return m.styles.TaskDesc.Render("Archive is empty.")
	}

	var b strings.Builder
	for i, task := range m.archived {
		style := m.styles.TaskNormal
		prefix := "  "
		if i == m.cursor {
			style = m.styles.TaskSelected
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  [%s]", prefix, task.Title, task.CategoryName())
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// viewTaskForm renders the new-task input form.
func (m *Model) viewTaskForm() string {
	var b strings.Builder
	b.WriteString(m.styles.InputLabel.Render("New task"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	return b.String()
}

// viewCategoryPicker renders the category options row.
func (m *Model) viewCategoryPicker() string {
	var parts []string
	for i, option := range m.options {
		style := m.styles.PickerItem
		if i == m.optionCursor {
			style = m.styles.PickerFocus
		}
		parts = append(parts, style.Render(option.Label()))
	}
	return m.styles.InputLabel.Render("Category: ") + strings.Join(parts, " ")
}

// viewFooter renders status, errors and the short help line.
func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := m.styles.Status
		if strings.Contains(m.status, "already exists") || strings.Contains(m.status, "Nothing") {
			style = m.styles.Warning
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}
