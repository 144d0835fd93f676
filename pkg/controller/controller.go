package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/count-tracker/pkg/counter"
	"github.com/matt-steen/count-tracker/pkg/palette"
	"github.com/rivo/tview"
)

// Page names.
const (
	pageHome    = "home"
	pageCounter = "counter"
	pageForm    = "form"
	pageColors  = "colors"
	pageColor   = "color"
)

const gridColumns = 2

// Controller mediates between the stores and the view.
type Controller struct {
	ctx      context.Context
	counters *counter.Store
	colors   *palette.Store
	app      *tview.Application
	pages    *tview.Pages
	page     string
	events   map[string]map[tcell.Key]KeyEvent

	homeTable   *tview.Table
	homeContent *GridContent
	detail      *tview.TextView
	counterForm *tview.Form
	colorTable  *tview.Table
	colorForm   *tview.Form

	// selectedID is the counter under the cursor on the home page, or the one being shown
	// or edited on the other pages. 0 means none.
	selectedID int
	// selectedColor is a row in the colors table, i.e. an index into the combined palette.
	selectedColor int
	editing       bool
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller to run the app.
func NewController(ctx context.Context, counters *counter.Store, colors *palette.Store) (*Controller, error) {
	c := Controller{
		ctx:      ctx,
		counters: counters,
		colors:   colors,
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
	}

	c.initEvents()

	c.pages.AddPage(pageHome, c.getHomeGrid(), true, false)
	c.pages.AddPage(pageCounter, c.getCounterGrid(), true, false)
	c.pages.AddPage(pageForm, c.getFormGrid(), true, false)
	c.pages.AddPage(pageColors, c.getColorsGrid(), true, false)
	c.pages.AddPage(pageColor, c.getColorFormGrid(), true, false)

	return &c, nil
}

// Go starts the app and blocks until it exits.
func (c *Controller) Go() error {
	c.app.SetInputCapture(c.handleKeys)

	c.showHome()

	if err := c.app.SetRoot(c.pages, true).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	return nil
}

func (c *Controller) switchTo(page string) {
	c.page = page
	c.pages.SwitchToPage(page)
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	if k, ok := c.events[c.page][AsKey(evt)]; ok {
		return k.Action(evt)
	}

	return evt
}

// getHeader returns a table with the page title followed by the page's keyboard shortcuts
// in alphabetical order, two per row.
func (c *Controller) getHeader(page, title string) *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	table.SetCell(0, 0, tview.NewTableCell(fmt.Sprintf("[yellow]%s", title)))

	shortcuts := []string{}
	for key, event := range c.events[page] {
		shortcuts = append(shortcuts, fmt.Sprintf("[orange]<%s>[white] %s", keyName(key), event.Description))
	}

	sort.Strings(shortcuts)

	for i, text := range shortcuts {
		table.SetCell(1+i/2, i%2, tview.NewTableCell(text).SetExpansion(1))
	}

	return table
}

// pageGrid stacks a header above the page body.
func pageGrid(header, body tview.Primitive) *tview.Grid {
	grid := tview.NewGrid().SetBorders(true).SetRows(4, 0)

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(body, 1, 0, 1, 1, 0, 0, true)

	return grid
}
