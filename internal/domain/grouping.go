package domain

import (
	"slices"
	"strings"
)

// TaskGroup is one display group of tasks sharing a category name.
type TaskGroup struct {
	Name  string
	Tasks []Task
}

// GroupTasks groups tasks by category name for display. Tasks are
// first sorted by raw category kind (string comparison) so that ties
// within a group resolve deterministically, then bucketed by
// CategoryName. Group names are sorted lexicographically.
//
// This is a pure projection: the input slice and its order are left
// untouched.
func GroupTasks(tasks []Task) []TaskGroup {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return strings.Compare(string(a.Category), string(b.Category))
	})

	buckets := make(map[string][]Task)
	names := make([]string, 0)
	for _, t := range sorted {
		name := t.CategoryName()
		if _, ok := buckets[name]; !ok {
			names = append(names, name)
		}
		buckets[name] = append(buckets[name], t)
	}
	slices.Sort(names)

	groups := make([]TaskGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, TaskGroup{Name: name, Tasks: buckets[name]})
	}
	return groups
}
