// Package tasks is the demo shell's persistence layer: a small SQLite-backed
// task list exercised by the task commands registered in internal/shell.
package tasks

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cline-tools/cline/internal/log"
)

// Task is one stored task.
type Task struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Store wraps a SQLite connection for task storage.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema exists.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	log.Debug("tasks: database ready at %s", path)
	return &Store{db: db}, nil
}

// NewWithDB creates a Store from an existing connection. Useful for testing
// with in-memory databases.
func NewWithDB(db *sql.DB) (*Store, error) {
	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			done       INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`)
	return err
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a new task and returns it.
func (s *Store) Add(title string) (Task, error) {
	task := Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, done, created_at) VALUES (?, ?, 0, ?)`,
		task.ID, task.Title, task.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}

	log.Debug("tasks: added %s", task.ID)
	return task, nil
}

// List returns all tasks, oldest first. When includeDone is false, finished
// tasks are filtered out.
func (s *Store) List(includeDone bool) ([]Task, error) {
	query := `SELECT id, title, done, created_at FROM tasks`
	if !includeDone {
		query += ` WHERE done = 0`
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []Task
	for rows.Next() {
		var t Task
		var done int
		var created string
		if err := rows.Scan(&t.ID, &t.Title, &done, &created); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Done = done != 0
		t.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkDone marks the task whose id starts with idPrefix as done. The prefix
// must be unambiguous.
func (s *Store) MarkDone(idPrefix string) (Task, error) {
	if idPrefix == "" {
		return Task{}, fmt.Errorf("empty task id")
	}

	rows, err := s.db.Query(
		`SELECT id, title, done, created_at FROM tasks WHERE id LIKE ? || '%'`, idPrefix)
	if err != nil {
		return Task{}, fmt.Errorf("find task: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []Task
	for rows.Next() {
		var t Task
		var done int
		var created string
		if err := rows.Scan(&t.ID, &t.Title, &done, &created); err != nil {
			return Task{}, fmt.Errorf("scan task: %w", err)
		}
		t.Done = done != 0
		if t.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return Task{}, fmt.Errorf("parse created_at: %w", err)
		}
		matches = append(matches, t)
	}
	if err := rows.Err(); err != nil {
		return Task{}, err
	}

	switch len(matches) {
	case 0:
		return Task{}, fmt.Errorf("no task with id %q", idPrefix)
	case 1:
	default:
		return Task{}, fmt.Errorf("id %q matches %d tasks", idPrefix, len(matches))
	}

	task := matches[0]
	if _, err := s.db.Exec(`UPDATE tasks SET done = 1 WHERE id = ?`, task.ID); err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	task.Done = true
	return task, nil
}

// OpenIDs returns the ids of unfinished tasks, for completion suggestions.
func (s *Store) OpenIDs() []string {
	tasks, err := s.List(false)
	if err != nil {
		log.Warn("tasks: listing ids: %v", err)
		return nil
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
