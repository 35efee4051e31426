package ui

import (
	"github.com/bilgisen/headlines/internal/models"
	"github.com/bilgisen/headlines/internal/sorting"
)

// Phase is the screen's lifecycle stage
type Phase int

const (
	// Loading shows the spinner; the list and sort control are hidden.
	Loading Phase = iota
	// Loaded shows the sorted list and the sort control.
	Loaded
)

// State is an immutable snapshot of what the screen shows. Every transition
// returns a new State.
type State struct {
	Phase     Phase
	Direction sorting.Direction
	Articles  []models.Article
	Cursor    int
	Offset    int
}

// NewState returns the initial Loading state
func NewState(d sorting.Direction) State {
	return State{Phase: Loading, Direction: d}
}

// WithDirection replaces the direction without touching the list
func (s State) WithDirection(d sorting.Direction) State {
	s.Direction = d
	return s
}

// WithFeed replaces the list with news sorted in the current direction.
// A nil feed leaves the state unchanged.
func (s State) WithFeed(news *models.NewsResponse) State {
	if news == nil {
		return s
	}
	s.Phase = Loaded
	s.Articles = sorting.Sort(news.Articles, s.Direction)
	s.Cursor, s.Offset = 0, 0
	return s
}

// Toggled flips the direction, re-sorts the shown list and scrolls to the
// top. It has no effect while Loading.
func (s State) Toggled() State {
	if s.Phase != Loaded {
		return s
	}
	s.Direction = s.Direction.Flip()
	s.Articles = sorting.Sort(s.Articles, s.Direction)
	s.Cursor, s.Offset = 0, 0
	return s
}

// Moved moves the cursor by delta, keeping it inside a window of visible rows
func (s State) Moved(delta, visible int) State {
	if len(s.Articles) == 0 {
		return s
	}
	if visible < 1 {
		visible = 1
	}

	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor > len(s.Articles)-1 {
		s.Cursor = len(s.Articles) - 1
	}

	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+visible {
		s.Offset = s.Cursor - visible + 1
	}
	return s
}

// Selected returns the article under the cursor
func (s State) Selected() (models.Article, bool) {
	if s.Phase != Loaded || s.Cursor < 0 || s.Cursor >= len(s.Articles) {
		return models.Article{}, false
	}
	return s.Articles[s.Cursor], true
}
