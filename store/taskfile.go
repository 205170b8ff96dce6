package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hugoduncan/mcp-tasks/models"
)

// Task file I/O. The file holds one record per line. LoadTasks and SaveTasks
// hold no lock themselves; callers serialize access through WithLock.

// LoadTasks reads the full task file into memory. An absent file is an empty
// collection, not an error. Any malformed line fails the whole load with the
// offending line number; there is no partial recovery.
func LoadTasks(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}

	tasks := []models.Task{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		task, err := DecodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s line %d: %w", path, lineNum, err)
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan task file %s: %w", path, err)
	}
	return tasks, nil
}

// SaveTasks replaces the file's full contents with the given collection, one
// record per line. The write is atomic: data goes to a temp file in the same
// directory, is fsynced, and renamed into place, so a reader outside the lock
// never observes a truncated file.
func SaveTasks(path string, tasks []models.Task) error {
	var buf bytes.Buffer
	for _, task := range tasks {
		line, err := EncodeLine(task)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write tasks to %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmpPath, path, err)
	}
	success = true
	return nil
}
