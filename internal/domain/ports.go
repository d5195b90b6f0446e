package domain

// TaskRepository persists the active and archived task lists as two
// independent whole snapshots. Persistence is fire-and-forget: save
// failures are absorbed (and logged) rather than surfaced, and a load
// that cannot decode its blob as a whole yields an empty list. The
// in-memory lists held by the caller remain the source of truth.
type TaskRepository interface {
	// LoadActive returns the persisted active list, or an empty list
	// if the snapshot is absent or malformed.
	LoadActive() []Task

	// LoadArchived returns the persisted archived list, or an empty
	// list if the snapshot is absent or malformed.
	LoadArchived() []Task

	// SaveActive overwrites the active snapshot unconditionally.
	SaveActive(tasks []Task)

	// SaveArchived overwrites the archived snapshot unconditionally.
	SaveArchived(tasks []Task)
}

// CategoryRepository persists the custom category list as one snapshot.
// Loading is best-effort per entry: entries that fail to decode are
// dropped silently and their siblings kept. Saving deduplicates by
// name.
type CategoryRepository interface {
	// LoadAll returns every category entry that decoded successfully.
	LoadAll() []Category

	// SaveAll overwrites the snapshot with the given list, deduplicated
	// by name (first occurrence wins).
	SaveAll(categories []Category)
}

// IDGenerator produces opaque unique identifiers for new records.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}

// Logger writes application log messages.
type Logger interface {
	// Debug logs a debug message for a component.
	Debug(component, msg string)

	// Info logs an info message for a component.
	Info(component, msg string)

	// Warn logs a warning message for a component.
	Warn(component, msg string)

	// Error logs an error message for a component.
	Error(component, msg string)
}
