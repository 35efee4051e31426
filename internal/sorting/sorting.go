// Package sorting orders articles chronologically.
package sorting

import (
	"fmt"
	"sort"

	"github.com/bilgisen/headlines/internal/models"
)

// Direction selects the chronological order of the list.
type Direction int

const (
	// NewestFirst orders by publish time, descending.
	NewestFirst Direction = 0
	// OldestFirst orders by publish time, ascending.
	OldestFirst Direction = 1
)

// Flip returns the other direction.
func (d Direction) Flip() Direction {
	return 1 - d
}

// String returns the persisted form, "0" or "1".
func (d Direction) String() string {
	return fmt.Sprintf("%d", int(d))
}

// Label is the human readable name shown by the sort control.
func (d Direction) Label() string {
	if d == OldestFirst {
		return "Oldest first"
	}
	return "Newest first"
}

// ParseDirection parses the persisted form of a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "0":
		return NewestFirst, nil
	case "1":
		return OldestFirst, nil
	default:
		return NewestFirst, fmt.Errorf("invalid sort direction %q", s)
	}
}

// Sort returns a copy of articles ordered by publish time in direction d.
// Articles whose publish time cannot be parsed sort as the epoch. Equal keys
// keep their input order.
func Sort(articles []models.Article, d Direction) []models.Article {
	sorted := make([]models.Article, len(articles))
	copy(sorted, articles)

	keys := make([]int64, len(sorted))
	for i, a := range sorted {
		keys[i] = a.PublishedMillis()
	}

	sort.Stable(byKey{articles: sorted, keys: keys, desc: d == NewestFirst})
	return sorted
}

type byKey struct {
	articles []models.Article
	keys     []int64
	desc     bool
}

func (b byKey) Len() int { return len(b.articles) }

func (b byKey) Less(i, j int) bool {
	if b.desc {
		return b.keys[i] > b.keys[j]
	}
	return b.keys[i] < b.keys[j]
}

func (b byKey) Swap(i, j int) {
	b.articles[i], b.articles[j] = b.articles[j], b.articles[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
