package store

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hugoduncan/mcp-tasks/models"
)

// Default settings used when a Config field is zero.
const (
	DefaultDataFile    = "tasks.jsonl"
	DefaultLockTimeout = 10 * time.Second
)

// Config configures a FileTaskStore.
type Config struct {
	// BaseDir holds the task file and the lock file.
	BaseDir string
	// DataFile is the task file name inside BaseDir.
	DataFile string
	// LockTimeout bounds lock acquisition. Zero-valued Config fields fall
	// back to defaults; to request a true non-blocking try, pass a negative
	// duration.
	LockTimeout time.Duration
}

// FileTaskStore implements TaskStore on a shared line-per-record file. It
// keeps no state between operations: every call reloads the collection from
// disk inside the critical section, so there is no stale-cache problem, at
// the cost of a full load per call.
type FileTaskStore struct {
	baseDir  string
	dataFile string
	timeout  time.Duration
}

// NewFileTaskStore creates a store for the given configuration.
func NewFileTaskStore(cfg Config) *FileTaskStore {
	dataFile := cfg.DataFile
	if dataFile == "" {
		dataFile = DefaultDataFile
	}
	timeout := cfg.LockTimeout
	if timeout == 0 {
		timeout = DefaultLockTimeout
	} else if timeout < 0 {
		timeout = 0
	}
	return &FileTaskStore{
		baseDir:  cfg.BaseDir,
		dataFile: dataFile,
		timeout:  timeout,
	}
}

// TaskFilePath returns the full path of the task data file.
func (s *FileTaskStore) TaskFilePath() string {
	return filepath.Join(s.baseDir, s.dataFile)
}

// withCollection runs fn on a freshly loaded collection inside the lock.
// When save is true and fn succeeds, the collection is persisted before the
// lock is released. When fn returns an error nothing is written, so failed
// operations have no side effect.
func (s *FileTaskStore) withCollection(save bool, fn func(c *Collection) error) error {
	return WithLock(LockConfig{BaseDir: s.baseDir}, s.timeout, func() error {
		tasks, err := LoadTasks(s.TaskFilePath())
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		c := NewCollection(tasks)
		if err := fn(c); err != nil {
			return err
		}
		if save {
			if err := SaveTasks(s.TaskFilePath(), c.Tasks()); err != nil {
				return fmt.Errorf("failed to save tasks: %w", err)
			}
		}
		return nil
	})
}

// CreateTask adds a new task to the store.
func (s *FileTaskStore) CreateTask(fields NewTaskFields) (models.Task, error) {
	var created models.Task
	err := s.withCollection(true, func(c *Collection) error {
		task, err := c.Add(fields)
		if err != nil {
			return err
		}
		created = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return created, nil
}

// GetTask retrieves a task by its unique identifier.
func (s *FileTaskStore) GetTask(id string) (models.Task, error) {
	var found models.Task
	err := s.withCollection(false, func(c *Collection) error {
		task, err := c.Get(id)
		if err != nil {
			return err
		}
		found = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return found, nil
}

// ListTasks returns all tasks in stored order.
func (s *FileTaskStore) ListTasks() ([]models.Task, error) {
	return s.SelectTasks(TaskFilter{})
}

// SelectTasks returns the tasks matching the filter, in stored order.
func (s *FileTaskStore) SelectTasks(filter TaskFilter) ([]models.Task, error) {
	var selected []models.Task
	err := s.withCollection(false, func(c *Collection) error {
		selected = c.Select(filter)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

// UpdateTask applies a field-level patch to an existing task.
func (s *FileTaskStore) UpdateTask(id string, updates map[string]any) (models.Task, error) {
	var updated models.Task
	err := s.withCollection(true, func(c *Collection) error {
		task, err := c.Update(id, updates)
		if err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// CompleteTask marks a task closed.
func (s *FileTaskStore) CompleteTask(id string) (models.Task, error) {
	return s.setStatus(id, func(c *Collection) (models.Task, error) { return c.Complete(id) })
}

// ReopenTask marks a task open again.
func (s *FileTaskStore) ReopenTask(id string) (models.Task, error) {
	return s.setStatus(id, func(c *Collection) (models.Task, error) { return c.Reopen(id) })
}

func (s *FileTaskStore) setStatus(id string, op func(c *Collection) (models.Task, error)) (models.Task, error) {
	var result models.Task
	err := s.withCollection(true, func(c *Collection) error {
		task, err := op(c)
		if err != nil {
			return err
		}
		result = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return result, nil
}

// DeleteTask removes a task from the store.
func (s *FileTaskStore) DeleteTask(id string) error {
	return s.withCollection(true, func(c *Collection) error {
		return c.Delete(id)
	})
}

// DeleteAllTasks removes every task from the store.
func (s *FileTaskStore) DeleteAllTasks() error {
	return s.withCollection(true, func(c *Collection) error {
		for _, task := range c.Tasks() {
			if err := c.Delete(task.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
