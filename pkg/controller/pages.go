package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/count-tracker/pkg/palette"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func (c *Controller) getHomeGrid() *tview.Grid {
	c.homeContent = NewGridContent(gridColumns)

	c.homeTable = tview.NewTable().SetBorders(true)
	c.homeTable.SetContent(c.homeContent)
	c.homeTable.SetSelectable(true, true)
	c.homeTable.SetSelectionChangedFunc(c.setCurrentCell)

	return pageGrid(c.getHeader(pageHome, "COUNT"), c.homeTable)
}

// when the cell selection changes, update the selected counter.
func (c *Controller) setCurrentCell(row, col int) {
	c.selectedID = 0

	if ctr, ok := c.homeContent.CounterAt(row, col); ok {
		c.selectedID = ctr.ID
	}

	log.Debug().Int("row", row).Int("col", col).Int("selectedID", c.selectedID).Msg("selection changed")
}

func (c *Controller) showHome() {
	c.homeContent.SetCounters(c.counters.List(c.ctx))

	if row, col, ok := c.homeContent.PositionOf(c.selectedID); ok {
		c.homeTable.Select(row, col)
	} else if c.homeContent.GetRowCount() > 0 {
		c.homeTable.Select(0, 0)
		c.setCurrentCell(0, 0)
	} else {
		c.selectedID = 0
	}

	c.switchTo(pageHome)
}

func (c *Controller) openSelected() {
	if c.selectedID == 0 {
		return
	}

	c.showCounter(c.selectedID)
}

func (c *Controller) deleteSelected() {
	if c.selectedID == 0 {
		return
	}

	if err := c.counters.Delete(c.ctx, c.selectedID); err != nil {
		log.Warn().Err(err).Int("id", c.selectedID).Msg("error deleting counter")
	}

	c.selectedID = 0
	c.showHome()
}

func (c *Controller) getCounterGrid() *tview.Grid {
	c.detail = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	c.detail.SetScrollable(false)

	return pageGrid(c.getHeader(pageCounter, "COUNTER"), c.detail)
}

func (c *Controller) showCounter(id int) {
	ctr, ok := c.counters.Get(c.ctx, id)
	if !ok {
		log.Warn().Int("id", id).Msg("counter not found")
		c.showHome()

		return
	}

	c.selectedID = id

	status := "keep going"
	if ctr.Achieved() {
		status = "target achieved!"
	}

	c.detail.SetBackgroundColor(tcell.GetColor(ctr.BackgroundColor))
	c.detail.SetTextColor(tcell.GetColor(ctr.ForegroundColor))
	c.detail.SetText(fmt.Sprintf("\n\n%s\n\n%s\n\n%s\n\n%s",
		tview.Escape(ctr.Title),
		tview.Escape(ctr.Description),
		ctr.Progress(),
		status,
	))

	c.switchTo(pageCounter)
}

func (c *Controller) step(delta int) {
	var err error

	if delta > 0 {
		_, err = c.counters.Increment(c.ctx, c.selectedID)
	} else {
		_, err = c.counters.Decrement(c.ctx, c.selectedID)
	}

	if err != nil {
		log.Warn().Err(err).Int("id", c.selectedID).Int("delta", delta).Msg("error changing count")
	}

	c.showCounter(c.selectedID)
}

func (c *Controller) getColorsGrid() *tview.Grid {
	c.colorTable = tview.NewTable().SetBorders(false)
	c.colorTable.SetSelectable(true, false)
	c.colorTable.SetSelectionChangedFunc(func(row, col int) {
		c.selectedColor = row
	})

	return pageGrid(c.getHeader(pageColors, "COLORS"), c.colorTable)
}

func (c *Controller) showColors() {
	colors := c.colors.ListAll(c.ctx)
	builtin := len(palette.Builtin())

	c.colorTable.Clear()

	for row, color := range colors {
		kind := "built-in"
		if row >= builtin {
			kind = "custom"
		}

		sample := tview.NewTableCell(fmt.Sprintf("  %s on %s  ", color.Foreground, color.Background)).
			SetTextColor(tcell.GetColor(color.Foreground)).
			SetBackgroundColor(tcell.GetColor(color.Background))

		c.colorTable.SetCell(row, 0, sample)
		c.colorTable.SetCell(row, 1, tview.NewTableCell(kind).SetExpansion(1))
	}

	if c.selectedColor >= len(colors) {
		c.selectedColor = len(colors) - 1
	}

	c.colorTable.Select(c.selectedColor, 0)

	c.switchTo(pageColors)
}

func (c *Controller) removeSelectedColor() {
	idx := c.selectedColor - len(palette.Builtin())
	if idx < 0 {
		log.Debug().Int("row", c.selectedColor).Msg("built-in colors can't be removed")

		return
	}

	if err := c.colors.RemoveCustom(c.ctx, idx); err != nil {
		log.Warn().Err(err).Int("index", idx).Msg("error removing custom color")
	}

	c.showColors()
}

func (c *Controller) resetColors() {
	if err := c.colors.ResetCustom(c.ctx); err != nil {
		log.Warn().Err(err).Msg("error resetting custom colors")
	}

	c.selectedColor = 0
	c.showColors()
}
