package counter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matt-steen/count-tracker/pkg/palette"
)

// Counter is a single tracked quantity. The json keys match the layout of the persisted
// "counts" blob. Count never goes below 0; it may exceed TargetCount, which means the
// target is achieved.
type Counter struct {
	ID              int    `json:"id"`
	Title           string `json:"countTitle"`
	Description     string `json:"description"`
	Count           int    `json:"count"`
	TargetCount     int    `json:"targetCount"`
	BackgroundColor string `json:"color"`
	ForegroundColor string `json:"fg"`
}

// Achieved reports whether the counter reached its target.
func (c Counter) Achieved() bool {
	return c.Count >= c.TargetCount
}

// Progress renders the counter as "count/target".
func (c Counter) Progress() string {
	return fmt.Sprintf("%d/%d", c.Count, c.TargetCount)
}

// NewCounter holds the arguments for Store.Create. A nil StartCount starts the counter at 0.
type NewCounter struct {
	Title       string
	Description string
	TargetCount int
	StartCount  *int
	Color       palette.Color
}

// Validation errors returned by Validate.
var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidTarget = errors.New("target must be a positive number")
	ErrInvalidStart  = errors.New("start value can't be negative")
	ErrInvalidColor  = palette.ErrInvalidColor
)

// Validate checks user input before it is handed to Store.Create; the store itself
// accepts anything.
func Validate(n NewCounter) error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}

	if n.TargetCount <= 0 {
		return ErrInvalidTarget
	}

	if n.StartCount != nil && *n.StartCount < 0 {
		return ErrInvalidStart
	}

	if !n.Color.Valid() {
		return ErrInvalidColor
	}

	return nil
}

// Cell is a slot in the counter grid. Placeholder cells carry no counter.
type Cell struct {
	Counter     Counter
	Placeholder bool
}

// PadForGrid lays counters out for a grid with the given number of columns, filling the
// last row with placeholders so every row is complete.
func PadForGrid(counters []Counter, columns int) []Cell {
	if columns < 1 {
		columns = 1
	}

	cells := make([]Cell, 0, len(counters)+columns)
	for _, c := range counters {
		cells = append(cells, Cell{Counter: c})
	}

	for len(cells)%columns != 0 {
		cells = append(cells, Cell{Placeholder: true})
	}

	return cells
}
