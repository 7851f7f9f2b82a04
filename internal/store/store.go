// Package store enumerates HAIL session files and caches loaded sessions.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"hailview/internal/hail"
	"hailview/internal/model"
)

var errStop = errors.New("stop iteration")

// Summary holds lightweight information about one session file.
type Summary struct {
	ID              string    `json:"session_id"`
	Path            string    `json:"path"`
	Tool            string    `json:"tool"`
	StartedAt       time.Time `json:"started_at"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	EventCount      int       `json:"event_count"`
	DurationSeconds int       `json:"duration_seconds"`
}

// ListOptions controls how sessions are enumerated.
type ListOptions struct {
	Root       string
	Tool       string
	After      *time.Time
	Before     *time.Time
	Limit      int
	MaxSummary int
}

// ListResult contains session summaries and non-fatal per-file warnings.
type ListResult struct {
	Summaries []Summary
	Warnings  []error
}

// Store loads sessions with an LRU cache keyed by path. Sessions are
// immutable once loaded, so cached values are shared safely.
type Store struct {
	cache *lru.Cache[string, *model.Session]
}

// New creates a store caching up to size sessions.
func New(size int) (*Store, error) {
	cache, err := lru.New[string, *model.Session](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Load returns the session at path, from cache when possible.
func (s *Store) Load(path string) (*model.Session, error) {
	if session, ok := s.cache.Get(path); ok {
		return session, nil
	}
	session, err := hail.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.cache.Add(path, session)
	return session, nil
}

// List enumerates sessions under opts.Root, newest first. Files that fail
// to load are reported as warnings rather than aborting the walk.
func (s *Store) List(opts ListOptions) (ListResult, error) {
	if opts.Root == "" {
		return ListResult{}, errors.New("root directory is required")
	}

	var result ListResult
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			result.Warnings = append(result.Warnings, fmt.Errorf("walk %s: %w", path, walkErr))
			return nil
		}
		if d.IsDir() || !isSessionFile(d.Name()) {
			return nil
		}

		session, err := s.Load(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Errorf("load %s: %w", path, err))
			return nil
		}

		summary := summarize(session, path, opts.MaxSummary)
		if opts.Tool != "" && summary.Tool != opts.Tool {
			return nil
		}
		if opts.After != nil && summary.StartedAt.Before(*opts.After) {
			return nil
		}
		if opts.Before != nil && summary.StartedAt.After(*opts.Before) {
			return nil
		}

		result.Summaries = append(result.Summaries, summary)
		return nil
	})
	if err != nil {
		return result, err
	}

	sort.Slice(result.Summaries, func(i, j int) bool {
		return result.Summaries[i].StartedAt.After(result.Summaries[j].StartedAt)
	})

	if opts.Limit > 0 && len(result.Summaries) > opts.Limit {
		result.Summaries = result.Summaries[:opts.Limit]
	}

	return result, nil
}

// FindSessionPath searches root for the session file whose id matches id.
func (s *Store) FindSessionPath(root, id string) (string, error) {
	if root == "" {
		return "", errors.New("root directory is required")
	}
	if id == "" {
		return "", errors.New("session id is required")
	}

	var matched string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || !isSessionFile(d.Name()) {
			return nil
		}
		session, err := s.Load(path)
		if err != nil {
			return nil
		}
		if session.ID == id {
			matched = path
			return errStop
		}
		return nil
	})

	if matched != "" {
		return matched, nil
	}
	if err != nil && !errors.Is(err, errStop) {
		return "", err
	}
	return "", fmt.Errorf("session id %s not found under %s", id, root)
}

func isSessionFile(name string) bool {
	return strings.HasSuffix(name, ".hail.jsonl") || strings.HasSuffix(name, ".hail.json")
}

func summarize(session *model.Session, path string, maxSummary int) Summary {
	stats := session.Stats
	if stats.EventCount == 0 {
		stats = model.DeriveStats(session.Events)
	}

	startedAt := session.Context.CreatedAt
	if startedAt.IsZero() {
		for _, ev := range session.Events {
			if !ev.Timestamp.IsZero() {
				startedAt = ev.Timestamp
				break
			}
		}
	}

	text := firstUserText(session.Events)
	if maxSummary > 0 {
		text = truncate(text, maxSummary)
	}

	return Summary{
		ID:              session.ID,
		Path:            path,
		Tool:            session.Agent.Tool,
		StartedAt:       startedAt,
		Title:           session.Context.Title,
		Summary:         text,
		EventCount:      stats.EventCount,
		DurationSeconds: stats.DurationSeconds,
	}
}

// firstUserText returns the first user message text, whitespace-collapsed.
func firstUserText(events []model.Event) string {
	for _, ev := range events {
		if _, ok := ev.Type.(model.UserMessage); !ok {
			continue
		}
		if text := ev.Content.FirstText(); text != "" {
			return strings.Join(strings.Fields(text), " ")
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
