// Package app provides the dependency injection container for the
// application.
package app

import (
	"io"

	"github.com/skosuge/taskpocket/internal/domain"
	"github.com/skosuge/taskpocket/internal/infra/categorystore"
	"github.com/skosuge/taskpocket/internal/infra/config"
	"github.com/skosuge/taskpocket/internal/infra/idgen"
	"github.com/skosuge/taskpocket/internal/infra/kvstore"
	"github.com/skosuge/taskpocket/internal/infra/logging"
	"github.com/skosuge/taskpocket/internal/infra/taskstore"
	"github.com/skosuge/taskpocket/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks      domain.TaskRepository
	Categories domain.CategoryRepository
	IDs        domain.IDGenerator
	Logger     domain.Logger

	// Configuration
	Config *config.Config

	closer io.Closer
}

// New creates a new Container from the resolved configuration.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig creates a new Container for a specific configuration.
func NewWithConfig(cfg *config.Config) *Container {
	logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))
	kv := kvstore.New(cfg.DataDir)

	return &Container{
		Tasks:      taskstore.New(kv, logger),
		Categories: categorystore.New(kv, logger),
		IDs:        idgen.Generator{},
		Logger:     logger,
		Config:     cfg,
		closer:     logger,
	}
}

// NewWithDeps creates a new Container with custom dependencies for
// testing.
func NewWithDeps(tasks domain.TaskRepository, categories domain.CategoryRepository, ids domain.IDGenerator, logger domain.Logger) *Container {
	return &Container{
		Tasks:      tasks,
		Categories: categories,
		IDs:        ids,
		Logger:     logger,
	}
}

// Close releases container resources (the log file).
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Categories, c.IDs, c.Logger)
}

// AddCategoryUseCase returns a new AddCategory use case.
func (c *Container) AddCategoryUseCase() *usecase.AddCategory {
	return usecase.NewAddCategory(c.Categories, c.IDs, c.Logger)
}

// ArchiveTaskUseCase returns a new ArchiveTask use case.
func (c *Container) ArchiveTaskUseCase() *usecase.ArchiveTask {
	return usecase.NewArchiveTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ListArchivedUseCase returns a new ListArchived use case.
func (c *Container) ListArchivedUseCase() *usecase.ListArchived {
	return usecase.NewListArchived(c.Tasks)
}

// ListCategoriesUseCase returns a new ListCategories use case.
func (c *Container) ListCategoriesUseCase() *usecase.ListCategories {
	return usecase.NewListCategories(c.Categories)
}

// FlushUseCase returns a new Flush use case.
func (c *Container) FlushUseCase() *usecase.Flush {
	return usecase.NewFlush(c.Tasks, c.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case writing to out.
func (c *Container) ExportTasksUseCase(out io.Writer) *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, out)
}
