package usecase

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/skosuge/taskpocket/internal/domain"
)

// exportDocument is the YAML shape written by ExportTasks.
type exportDocument struct {
	Tasks   []exportTask `yaml:"tasks"`
	Archive []exportTask `yaml:"archive"`
}

type exportTask struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description,omitempty"`
	Category    string          `yaml:"category"`
	Custom      *exportCategory `yaml:"customCategory,omitempty"`
	Done        bool            `yaml:"done"`
}

type exportCategory struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ExportTasksOutput contains the result of an export.
type ExportTasksOutput struct {
	ActiveCount   int
	ArchivedCount int
}

// ExportTasks writes the active and archived lists as a YAML document.
type ExportTasks struct {
	tasks domain.TaskRepository
	out   io.Writer
}

// NewExportTasks creates a new ExportTasks use case writing to out.
func NewExportTasks(tasks domain.TaskRepository, out io.Writer) *ExportTasks {
	return &ExportTasks{tasks: tasks, out: out}
}

// Execute writes both lists to the configured writer.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	active := uc.tasks.LoadActive()
	archived := uc.tasks.LoadArchived()

	doc := exportDocument{
		Tasks:   toExportTasks(active),
		Archive: toExportTasks(archived),
	}

	enc := yaml.NewEncoder(uc.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return &ExportTasksOutput{
		ActiveCount:   len(active),
		ArchivedCount: len(archived),
	}, nil
}

func toExportTasks(tasks []domain.Task) []exportTask {
	result := make([]exportTask, 0, len(tasks))
	for _, t := range tasks {
		et := exportTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Category:    string(t.Category),
			Done:        t.Done,
		}
		if t.CustomCategory != nil {
			et.Custom = &exportCategory{ID: t.CustomCategory.ID, Name: t.CustomCategory.Name}
		}
		result = append(result, et)
	}
	return result
}
