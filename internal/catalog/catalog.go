// Package catalog holds the ordered set of CARS error categories: the
// keywords that trigger each one, the fix suggestion, the sample drill, and
// the common mistakes used to flavour generated practice.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Generic texts used when a category has no specific entry.
const (
	FallbackFix   = "Review similar question types in practice passages."
	FallbackDrill = "Practice identifying main ideas in 3 passages today."
)

// Category defines one error pattern.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Fix      string   `yaml:"fix"`
	Drill    string   `yaml:"drill"`
	Mistakes []string `yaml:"mistakes,omitempty"`
}

// Catalog is an immutable, ordered list of categories. Iteration order is
// the declaration order and decides classification and ranking ties.
// A Catalog is safe for concurrent use.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

// New builds a Catalog from categories in the given order. Keywords are
// lowercased and trimmed so matching against lowercased text is exact.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.New("catalog: no categories")
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, errors.New("catalog: category with empty name")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", name)
		}

		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, fmt.Errorf("catalog: category %q has an empty keyword", name)
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no keywords", name)
		}

		c.byName[name] = len(c.categories)
		c.categories = append(c.categories, Category{
			Name:     name,
			Keywords: keywords,
			Fix:      cat.Fix,
			Drill:    cat.Drill,
			Mistakes: append([]string(nil), cat.Mistakes...),
		})
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(seedCategories)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the categories in iteration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// Get returns the named category.
func (c *Catalog) Get(name string) (Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Fix returns the remediation suggestion for a category, or FallbackFix.
func (c *Catalog) Fix(name string) string {
	if cat, ok := c.Get(name); ok && cat.Fix != "" {
		return cat.Fix
	}
	return FallbackFix
}

// Drill returns the sample drill for a category, or "" if none is defined.
func (c *Catalog) Drill(name string) string {
	if cat, ok := c.Get(name); ok {
		return cat.Drill
	}
	return ""
}

// Mistakes returns the common mistakes recorded for a category.
func (c *Catalog) Mistakes(name string) []string {
	if cat, ok := c.Get(name); ok {
		return cat.Mistakes
	}
	return nil
}

// Match reports the categories whose keywords occur in text, in catalog
// order. text must already be lowercased.
func (c *Catalog) Match(text string) []string {
	var out []string
	for _, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				out = append(out, cat.Name)
				break
			}
		}
	}
	return out
}
