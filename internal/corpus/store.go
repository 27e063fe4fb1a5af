// Package corpus provides the SQLite-backed comment corpus read by the
// lexicon analysis backend.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a comment corpus. Concrete type, safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Comment is one stored comment.
type Comment struct {
	ID        string    `json:"id"`
	Subreddit string    `json:"subreddit"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Created   time.Time `json:"created_at"`
}

// Open opens (creating if needed) the corpus at dbPath. ":memory:" opens a
// shared-cache in-memory database that lives until Close.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Shared-cache memory databases vanish when the last connection closes.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		subreddit TEXT NOT NULL COLLATE NOCASE,
		author TEXT,
		body TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_comments_sub_created ON comments(subreddit, created_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveComments inserts comments, ignoring IDs already present.
// Returns the number of new rows.
func (s *Store) SaveComments(comments []Comment) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(comments) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO comments (id, subreddit, author, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, c := range comments {
		if c.ID == "" || strings.TrimSpace(c.Body) == "" {
			continue
		}
		res, err := stmt.Exec(c.ID, normalizeSubreddit(c.Subreddit), c.Author, c.Body, c.Created.UTC())
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", c.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

// Comments returns comments for subreddit created at or after since,
// newest first.
func (s *Store) Comments(ctx context.Context, subreddit string, since time.Time) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subreddit, author, body, created_at
		FROM comments
		WHERE subreddit = ? AND created_at >= ?
		ORDER BY created_at DESC, id
	`, normalizeSubreddit(subreddit), since.UTC())
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var c Comment
		var author sql.NullString
		if err := rows.Scan(&c.ID, &c.Subreddit, &author, &c.Body, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.Author = author.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// Subreddits lists distinct subreddit names in the corpus, alphabetically.
func (s *Store) Subreddits(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT subreddit FROM comments ORDER BY subreddit COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("query subreddits: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Counts returns the number of stored comments per subreddit.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT subreddit, COUNT(*) FROM comments GROUP BY subreddit`)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, rows.Err()
}

func normalizeSubreddit(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	if len(name) > 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	return name
}
