package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/store"
)

// Title is one entry of a movie-title file: "id,title,genres" where genres
// are '|'-separated.
type Title struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

// ParseTitleLine parses an "id,title,genres" line tolerating commas inside
// the title itself: the id ends at the first comma, the genres start at the
// last comma, and everything between is the title. Surrounding quotes on the
// title are stripped.
func ParseTitleLine(line string) (*Title, error) {
	first := strings.Index(line, ",")
	last := strings.LastIndex(line, ",")
	if first < 0 || first == last {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("title line needs id, title and genres: %q", line))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(line[:first]), 10, 64)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("title line has non-numeric id: %q", line))
	}

	name := strings.TrimSpace(line[first+1 : last])
	name = strings.Trim(name, `"`)
	if name == "" {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("title line has empty title: %q", line))
	}

	var genres []string
	for _, g := range strings.Split(line[last+1:], "|") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}

	return &Title{ID: id, Name: name, Genres: genres}, nil
}

// TitleRepository resolves title ids to titles. It is constructed once at
// startup and populated with an explicit Load step; consumers receive it by
// reference. Entries live in a store.Store so a Redis-backed repository can
// be shared across runs.
type TitleRepository struct {
	path    string
	backend store.Store
	count   int
	loaded  bool
}

// NewTitleRepository creates a repository over the given title file and
// backend. Call Load before lookups.
func NewTitleRepository(path string, backend store.Store) *TitleRepository {
	return &TitleRepository{path: path, backend: backend}
}

// Load parses the title file and writes every entry to the backend. A header
// line starting with a non-numeric id is skipped; any other malformed line
// aborts the load with its line number.
func (r *TitleRepository) Load(ctx context.Context) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open titles: %w", err)
	}
	defer f.Close()

	kvs := make(map[string][]byte)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		title, err := ParseTitleLine(line)
		if err != nil {
			if lineNo == 1 && core.IsInvalidArgument(err) {
				continue // header row
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		data, err := json.Marshal(title)
		if err != nil {
			return fmt.Errorf("line %d: encode title: %w", lineNo, err)
		}
		kvs[r.key(title.ID)] = data
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan titles: %w", err)
	}

	if err := r.backend.BatchSet(ctx, kvs); err != nil {
		return fmt.Errorf("store titles: %w", err)
	}
	r.count = len(kvs)
	r.loaded = true
	return nil
}

// Get returns the title for id, or NOT_FOUND.
func (r *TitleRepository) Get(ctx context.Context, id int64) (*Title, error) {
	if !r.loaded {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInternalError,
			"title repository used before Load")
	}
	data, err := r.backend.Get(ctx, r.key(id))
	if err != nil {
		if core.IsNotFound(err) {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeNotFound,
				fmt.Sprintf("title %d not found", id))
		}
		return nil, err
	}
	var title Title
	if err := json.Unmarshal(data, &title); err != nil {
		return nil, fmt.Errorf("decode title %d: %w", id, err)
	}
	return &title, nil
}

// Count returns the number of loaded titles.
func (r *TitleRepository) Count() int { return r.count }

func (r *TitleRepository) key(id int64) string {
	return "title:" + strconv.FormatInt(id, 10)
}
