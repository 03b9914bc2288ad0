// Package classification implements keyword-based triage of free text:
// a category table, a substring-scoring classifier, and templated replies.
package classification

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackCategory is returned when no keyword in the table matches.
const FallbackCategory = "general_inquiry"

// Category pairs a category name with its keyword list.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Table is the classification table: an ordered list of categories. The
// order is the tie-break order, so the serialized form is a list rather
// than a map. The table is loaded once at startup and read-only afterwards.
type Table struct {
	categories []Category
	fallback   string
}

type tableFile struct {
	Categories []Category `yaml:"categories"`
	Fallback   string     `yaml:"fallback"`
}

// NewTable builds a table from an ordered category list. An empty fallback
// name uses FallbackCategory.
func NewTable(categories []Category, fallback string) *Table {
	if fallback == "" {
		fallback = FallbackCategory
	}
	return &Table{
		categories: categories,
		fallback:   fallback,
	}
}

// DefaultTable returns the built-in table used when no table file is
// loadable.
func DefaultTable() *Table {
	return NewTable([]Category{
		{Name: "account_access", Keywords: []string{"password", "account", "login", "signin", "username", "locked"}},
		{Name: "billing", Keywords: []string{"billing", "payment", "charge", "subscription", "refund", "invoice"}},
		{Name: "bug_report", Keywords: []string{"bug", "crash", "error", "issue", "problem", "not working"}},
		{Name: "feature_request", Keywords: []string{"feature", "request", "enhancement", "improvement"}},
		{Name: "general_inquiry", Keywords: []string{}},
	}, FallbackCategory)
}

// LoadTable reads a table from a YAML file. A missing or unreadable file is
// not an error: the built-in table is substituted.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTable(), nil
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse classification table %s: %w", path, err)
	}
	if len(file.Categories) == 0 {
		return DefaultTable(), nil
	}

	return NewTable(file.Categories, file.Fallback), nil
}

// Categories returns the table's categories in definition order.
func (t *Table) Categories() []Category {
	return t.categories
}

// Fallback returns the category used when nothing matches.
func (t *Table) Fallback() string {
	return t.fallback
}
