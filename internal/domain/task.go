// Package domain contains core business entities and interfaces.
package domain

// CategoryKind identifies which bucket a task belongs to.
type CategoryKind string

// Built-in category kinds. The raw values are the persisted labels and
// double as the sort key when grouping tasks for display.
const (
	KindUrgent    CategoryKind = "urgent"
	KindNonUrgent CategoryKind = "nonUrgent"
	KindCustom    CategoryKind = "custom"
)

// IsValid reports whether k is one of the three known kinds.
func (k CategoryKind) IsValid() bool {
	switch k {
	case KindUrgent, KindNonUrgent, KindCustom:
		return true
	}
	return false
}

// Label returns the fixed display label for a built-in kind.
// Custom tasks take their label from the referenced category instead.
func (k CategoryKind) Label() string {
	switch k {
	case KindUrgent:
		return "Urgent"
	case KindNonUrgent:
		return "Non-Urgent"
	default:
		return ""
	}
}

// Task represents a single tracked item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CustomCategory *Category    // Set only when Category == KindCustom
	ID             string       // Opaque unique identifier, never reassigned
	Title          string       // Title (free-form)
	Description    string       // Description (free-form)
	Category       CategoryKind // urgent / nonUrgent / custom
	Done           bool         // Completion flag; persisted but not toggled by any operation
}

// CategoryName returns the display name the task is grouped under:
// the custom category's name when the task is custom, otherwise the
// built-in label.
func (t Task) CategoryName() string {
	if t.Category == KindCustom && t.CustomCategory != nil {
		return t.CustomCategory.Name
	}
	return t.Category.Label()
}

// Same reports whether other is the same task. Identity is carried by
// ID alone; content differences do not matter.
func (t Task) Same(other Task) bool {
	return t.ID == other.ID
}

// ArchiveTask moves active[index] to the end of archived and returns
// both updated lists. The move is atomic from the caller's perspective:
// either both lists change or neither does. An out-of-range index
// returns the inputs unchanged with ok=false.
func ArchiveTask(active, archived []Task, index int) (newActive, newArchived []Task, ok bool) {
	if index < 0 || index >= len(active) {
		return active, archived, false
	}

	newActive = make([]Task, 0, len(active)-1)
	newActive = append(newActive, active[:index]...)
	newActive = append(newActive, active[index+1:]...)

	newArchived = make([]Task, 0, len(archived)+1)
	newArchived = append(newArchived, archived...)
	newArchived = append(newArchived, active[index])

	return newActive, newArchived, true
}
