package domain

// Category is a user-defined task grouping beyond the two built-in
// labels. The name is the effective primary key: two categories with
// the same name are the same category regardless of ID.
type Category struct {
	ID   string // Unique identifier, generated at creation
	Name string // Display name and dedup key
}

// Key returns the deduplication key for the category.
func (c Category) Key() string {
	return c.Name
}

// UpsertCategory replaces the stored category with the same name in
// place (preserving its position) or appends c if no name matches.
// The input slice is not modified.
func UpsertCategory(list []Category, c Category) []Category {
	result := make([]Category, len(list))
	copy(result, list)
	for i, existing := range result {
		if existing.Key() == c.Key() {
			result[i] = c
			return result
		}
	}
	return append(result, c)
}

// DedupCategoriesByName drops later duplicates of each name, keeping
// the first occurrence in its original position. Raw insertions into a
// category list are not deduplicated anywhere else; this runs on every
// save.
func DedupCategoriesByName(list []Category) []Category {
	seen := make(map[string]bool, len(list))
	result := make([]Category, 0, len(list))
	for _, c := range list {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		result = append(result, c)
	}
	return result
}

// ContainsCategoryName reports whether a category with the given name
// is already present.
func ContainsCategoryName(list []Category, name string) bool {
	for _, c := range list {
		if c.Name == name {
			return true
		}
	}
	return false
}
