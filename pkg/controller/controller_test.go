package controller

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/count-tracker/pkg/counter"
	"github.com/matt-steen/count-tracker/pkg/db"
	"github.com/matt-steen/count-tracker/pkg/palette"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func getController(assert *assert.Assertions, titles ...string) *Controller {
	ctx := context.Background()
	memory := db.NewMemory()
	counters := counter.NewStore(memory)

	for _, title := range titles {
		_, err := counters.Create(ctx, counter.NewCounter{Title: title, TargetCount: 2, Color: palette.Builtin()[1]})
		assert.Nil(err)
	}

	c, err := NewController(ctx, counters, palette.NewStore(memory))
	assert.Nil(err)

	return c
}

func press(c *Controller, key tcell.Key, r rune) *tcell.EventKey {
	return c.handleKeys(tcell.NewEventKey(key, r, tcell.ModNone))
}

func TestAsKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal(KeyQ, AsKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(tcell.KeyEscape, AsKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal("+", keyName(KeyPlus))
	assert.Equal("Enter", keyName(tcell.KeyEnter))
}

func TestGridContent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	grid := NewGridContent(2)
	grid.SetCounters([]counter.Counter{
		{ID: 1, Title: "Water", Count: 8, TargetCount: 8},
		{ID: 2, Title: "Steps", Count: 1, TargetCount: 8},
		{ID: 5, Title: "Pages", Count: 0, TargetCount: 8},
	})

	assert.Equal(2, grid.GetRowCount())
	assert.Equal(2, grid.GetColumnCount())

	assert.Equal("Water  8/8 ✓", grid.GetCell(0, 0).Text)
	assert.Equal("Steps  1/8", grid.GetCell(0, 1).Text)
	assert.Equal("", grid.GetCell(1, 1).Text)
	assert.Nil(grid.GetCell(2, 0))

	ctr, ok := grid.CounterAt(1, 0)
	assert.True(ok)
	assert.Equal(5, ctr.ID)

	_, ok = grid.CounterAt(1, 1)
	assert.False(ok)

	row, col, ok := grid.PositionOf(5)
	assert.True(ok)
	assert.Equal(1, row)
	assert.Equal(0, col)

	_, _, ok = grid.PositionOf(3)
	assert.False(ok)
}

func TestHomeSelection(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c := getController(assert, "a", "b", "c")
	c.showHome()

	assert.Equal(pageHome, c.page)
	assert.Equal(1, c.selectedID)

	c.setCurrentCell(1, 0)
	assert.Equal(3, c.selectedID)

	c.setCurrentCell(1, 1)
	assert.Equal(0, c.selectedID)
}

func TestCounterKeys(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	ctx := context.Background()

	c := getController(assert, "a")
	c.showHome()

	assert.Nil(press(c, tcell.KeyEnter, 0))
	assert.Equal(pageCounter, c.page)

	press(c, tcell.KeyRune, '+')
	press(c, tcell.KeyRune, '+')
	press(c, tcell.KeyRune, '+')

	ctr, _ := c.counters.Get(ctx, 1)
	assert.Equal(3, ctr.Count)
	assert.Contains(c.detail.GetText(true), "target achieved!")

	for i := 0; i < 5; i++ {
		press(c, tcell.KeyRune, '-')
	}

	ctr, _ = c.counters.Get(ctx, 1)
	assert.Equal(0, ctr.Count)

	press(c, tcell.KeyEscape, 0)
	assert.Equal(pageHome, c.page)
}

func TestDeleteSelected(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c := getController(assert, "a", "b")
	c.showHome()
	c.setCurrentCell(0, 1)

	press(c, tcell.KeyRune, 'd')

	counters := c.counters.List(context.Background())
	assert.Len(counters, 1)
	assert.Equal("a", counters[0].Title)
	assert.Equal(1, c.selectedID)
}

func TestUnhandledKeysPassThrough(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	c := getController(assert, "a")
	c.showNewCounterForm()

	assert.Equal(pageForm, c.page)
	assert.NotNil(press(c, tcell.KeyRune, '+'))

	press(c, tcell.KeyEscape, 0)
	assert.Equal(pageHome, c.page)
}

func TestReadCounterForm(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	colors := palette.Builtin()
	form := tview.NewForm().
		AddInputField("Title", " Water ", titleMax, nil, nil).
		AddInputField("Description", "", descriptionMax, nil, nil).
		AddInputField("Target", "8", numberMax, nil, nil).
		AddInputField("Start value", "", numberMax, nil, nil)

	n, err := readCounterForm(form, colors, 3)
	assert.Nil(err)
	assert.Equal("Water", n.Title)
	assert.Equal(8, n.TargetCount)
	assert.Nil(n.StartCount)
	assert.Equal(colors[3], n.Color)

	form.GetFormItemByLabel("Target").(*tview.InputField).SetText("")
	_, err = readCounterForm(form, colors, 3)
	assert.ErrorIs(err, counter.ErrInvalidTarget)

	form.GetFormItemByLabel("Target").(*tview.InputField).SetText("8")
	form.GetFormItemByLabel("Start value").(*tview.InputField).SetText("-")
	_, err = readCounterForm(form, colors, 3)
	assert.EqualError(err, `"-" is not a number`)
}

func TestReadColorForm(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	form := tview.NewForm().
		AddInputField("Background", "#f4f4f4", hexMax, nil, nil).
		AddInputField("Foreground", "", hexMax, nil, nil)

	color, err := readColorForm(form)
	assert.Nil(err)
	assert.Equal(palette.Color{Background: "#F4F4F4", Foreground: "#292929"}, color)

	form.GetFormItemByLabel("Foreground").(*tview.InputField).SetText("#000")
	color, err = readColorForm(form)
	assert.Nil(err)
	assert.Equal("#000000", color.Foreground)

	form.GetFormItemByLabel("Background").(*tview.InputField).SetText("#")
	_, err = readColorForm(form)
	assert.NotNil(err)
}

func TestColorsPage(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	ctx := context.Background()

	c := getController(assert)
	assert.Nil(c.colors.AddCustom(ctx, palette.Color{Background: "#111111", Foreground: "#FFFFFF"}))
	assert.Nil(c.colors.AddCustom(ctx, palette.Color{Background: "#222222", Foreground: "#FFFFFF"}))

	c.showHome()
	press(c, tcell.KeyRune, 'c')
	assert.Equal(pageColors, c.page)
	assert.Equal(12, c.colorTable.GetRowCount())

	// built-in rows are protected
	c.selectedColor = 0
	press(c, tcell.KeyRune, 'x')
	assert.Len(c.colors.ListCustom(ctx), 2)

	c.selectedColor = 10
	press(c, tcell.KeyRune, 'x')
	assert.Equal([]palette.Color{{Background: "#222222", Foreground: "#FFFFFF"}}, c.colors.ListCustom(ctx))

	press(c, tcell.KeyRune, 'r')
	assert.Empty(c.colors.ListCustom(ctx))
	assert.Equal(10, c.colorTable.GetRowCount())
}
