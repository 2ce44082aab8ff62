// Package content holds the fixed article list served by GET /api/articles.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/validation"
)

//go:embed articles.yaml
var defaultArticles []byte

// Table is an immutable, ordered set of articles.
// It is safe for concurrent use.
type Table struct {
	articles []model.Article
}

// Default returns the table built from the embedded article file.
func Default() (*Table, error) {
	return Parse(defaultArticles)
}

// Load returns the table from the YAML file at path, or the embedded
// default when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML list of articles and validates every record.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var articles []model.Article
	if err := dec.Decode(&articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	seen := make(map[string]bool, len(articles))
	var errs []error
	for i := range articles {
		a := &articles[i]
		if err := validation.Struct(a); err != nil {
			errs = append(errs, fmt.Errorf("article %d (id %q): %w", i, a.ID, err))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("article %d: duplicate id %q", i, a.ID))
		}
		seen[a.ID] = true
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Table{articles: articles}, nil
}

// List returns the articles in definition order. A known category narrows
// the result to that category; any other value, including "", returns the
// full list.
func (t *Table) List(category string) []model.Article {
	c := model.Category(category)
	if !c.IsKnown() {
		out := make([]model.Article, len(t.articles))
		copy(out, t.articles)
		return out
	}

	out := make([]model.Article, 0, len(t.articles))
	for _, a := range t.articles {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of articles.
func (t *Table) Len() int { return len(t.articles) }
