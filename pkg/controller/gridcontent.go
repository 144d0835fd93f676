package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/count-tracker/pkg/counter"
	"github.com/rivo/tview"
)

// GridContent implements tview.TableContent, laying counters out in a fixed number of
// columns. Incomplete rows are padded with blank, unselectable cells.
type GridContent struct {
	tview.TableContentReadOnly
	columns int
	cells   []counter.Cell
}

// NewGridContent returns an empty grid with the given number of columns.
func NewGridContent(columns int) *GridContent {
	return &GridContent{columns: columns}
}

// SetCounters replaces the counters shown in the grid.
func (g *GridContent) SetCounters(counters []counter.Counter) {
	g.cells = counter.PadForGrid(counters, g.columns)
}

// CounterAt returns the counter shown at the given position, if any.
func (g *GridContent) CounterAt(row, col int) (counter.Counter, bool) {
	idx := row*g.columns + col
	if row < 0 || col < 0 || col >= g.columns || idx >= len(g.cells) || g.cells[idx].Placeholder {
		return counter.Counter{}, false
	}

	return g.cells[idx].Counter, true
}

// PositionOf returns the grid position of the counter with the given id.
func (g *GridContent) PositionOf(id int) (int, int, bool) {
	for i, cell := range g.cells {
		if !cell.Placeholder && cell.Counter.ID == id {
			return i / g.columns, i % g.columns, true
		}
	}

	return 0, 0, false
}

// GetCell returns the cell at the given position or nil if no cell.
func (g *GridContent) GetCell(row, col int) *tview.TableCell {
	idx := row*g.columns + col
	if row < 0 || col < 0 || col >= g.columns || idx >= len(g.cells) {
		return nil
	}

	cell := g.cells[idx]
	if cell.Placeholder {
		return tview.NewTableCell("").SetExpansion(1).SetSelectable(false)
	}

	return tview.NewTableCell(cellText(cell.Counter)).
		SetExpansion(1).
		SetAlign(tview.AlignCenter).
		SetTextColor(tcell.GetColor(cell.Counter.ForegroundColor)).
		SetBackgroundColor(tcell.GetColor(cell.Counter.BackgroundColor)).
		SetReference(cell.Counter.ID)
}

// GetRowCount returns the number of rows in the table.
func (g *GridContent) GetRowCount() int {
	return len(g.cells) / g.columns
}

// GetColumnCount returns the number of columns in the table.
func (g *GridContent) GetColumnCount() int {
	return g.columns
}

func cellText(c counter.Counter) string {
	text := fmt.Sprintf("%s  %s", tview.Escape(c.Title), c.Progress())
	if c.Achieved() {
		text += " ✓"
	}

	return text
}
