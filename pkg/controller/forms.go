package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-steen/count-tracker/pkg/counter"
	"github.com/matt-steen/count-tracker/pkg/palette"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	titleMax       = 50
	descriptionMax = 500
	numberMax      = 10
	hexMax         = 7
)

func (c *Controller) getFormGrid() *tview.Grid {
	c.counterForm = tview.NewForm()
	c.counterForm.SetBorder(true)

	return pageGrid(c.getHeader(pageForm, "COUNTER DETAILS"), c.counterForm)
}

func (c *Controller) getColorFormGrid() *tview.Grid {
	c.colorForm = tview.NewForm()
	c.colorForm.SetBorder(true)

	return pageGrid(c.getHeader(pageColor, "NEW COLOR"), c.colorForm)
}

func setFormError(form *tview.Form, err error) {
	if err == nil {
		form.SetTitle("")

		return
	}

	form.SetTitle(fmt.Sprintf(" [red]%s ", tview.Escape(err.Error())))
}

func inputText(form *tview.Form, label string) string {
	field, _ := form.GetFormItemByLabel(label).(*tview.InputField)
	if field == nil {
		return ""
	}

	return strings.TrimSpace(field.GetText())
}

// parseNumber reads an optional integer field; blank yields nil.
func parseNumber(text string) (*int, error) {
	if text == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", text)
	}

	return &n, nil
}

func colorOptions(colors []palette.Color) []string {
	options := make([]string, 0, len(colors))
	for _, color := range colors {
		options = append(options, fmt.Sprintf("%s on %s", color.Foreground, color.Background))
	}

	return options
}

// readCounterForm turns the form fields into a validated NewCounter.
func readCounterForm(form *tview.Form, colors []palette.Color, colorIdx int) (counter.NewCounter, error) {
	target, err := parseNumber(inputText(form, "Target"))
	if err != nil {
		return counter.NewCounter{}, err
	}

	start, err := parseNumber(inputText(form, "Start value"))
	if err != nil {
		return counter.NewCounter{}, err
	}

	n := counter.NewCounter{
		Title:       inputText(form, "Title"),
		Description: inputText(form, "Description"),
		StartCount:  start,
		Color:       palette.Pick(colors, colorIdx),
	}

	if target != nil {
		n.TargetCount = *target
	}

	return n, counter.Validate(n)
}

func (c *Controller) showNewCounterForm() {
	c.editing = false

	colors := c.colors.ListAll(c.ctx)
	colorIdx := 0

	c.counterForm.Clear(true).
		AddInputField("Title", "", titleMax, nil, nil).
		AddInputField("Description", "", descriptionMax, nil, nil).
		AddInputField("Target", "", numberMax, tview.InputFieldInteger, nil).
		AddInputField("Start value", "", numberMax, tview.InputFieldInteger, nil).
		AddDropDown("Color", colorOptions(colors), colorIdx, func(option string, idx int) {
			colorIdx = idx
		})

	c.counterForm.AddButton("Save", func() {
		n, err := readCounterForm(c.counterForm, colors, colorIdx)
		setFormError(c.counterForm, err)

		if err != nil {
			return
		}

		id, err := c.counters.Create(c.ctx, n)
		if err != nil {
			log.Err(err).Msg("error saving the new counter")
			setFormError(c.counterForm, err)

			return
		}

		c.showCounter(id)
	})

	setFormError(c.counterForm, nil)
	c.counterForm.SetFocus(0)
	c.switchTo(pageForm)
}

func (c *Controller) showEditCounterForm() {
	ctr, ok := c.counters.Get(c.ctx, c.selectedID)
	if !ok {
		c.showHome()

		return
	}

	c.editing = true

	c.counterForm.Clear(true).
		AddInputField("Title", ctr.Title, titleMax, nil, nil).
		AddInputField("Description", ctr.Description, descriptionMax, nil, nil).
		AddInputField("Target", strconv.Itoa(ctr.TargetCount), numberMax, tview.InputFieldInteger, nil)

	current := []palette.Color{{Background: ctr.BackgroundColor, Foreground: ctr.ForegroundColor}}

	c.counterForm.AddButton("Save", func() {
		n, err := readCounterForm(c.counterForm, current, 0)
		if errors.Is(err, counter.ErrInvalidColor) {
			// colors of older counters aren't edited here
			err = nil
		}

		setFormError(c.counterForm, err)

		if err != nil {
			return
		}

		log.Debug().Int("id", ctr.ID).Str("title", n.Title).Msg("saving counter details")

		if err := c.counters.UpdateDetails(c.ctx, ctr.ID, n.Title, n.Description, n.TargetCount); err != nil {
			log.Err(err).Msg("error saving the counter")
			setFormError(c.counterForm, err)

			return
		}

		c.showCounter(ctr.ID)
	})

	setFormError(c.counterForm, nil)
	c.counterForm.SetFocus(0)
	c.switchTo(pageForm)
}

func (c *Controller) leaveForm() {
	if c.editing {
		c.showCounter(c.selectedID)

		return
	}

	c.showHome()
}

// readColorForm validates the hex inputs. A blank foreground is picked for contrast.
func readColorForm(form *tview.Form) (palette.Color, error) {
	bg, err := palette.ParseHex(inputText(form, "Background"))
	if err != nil {
		return palette.Color{}, err
	}

	fgText := inputText(form, "Foreground")

	var fg string
	if fgText == "" {
		fg, err = palette.ContrastForeground(bg)
	} else {
		fg, err = palette.ParseHex(fgText)
	}

	if err != nil {
		return palette.Color{}, err
	}

	return palette.Color{Background: bg, Foreground: fg}, nil
}

func (c *Controller) showColorForm() {
	c.colorForm.Clear(true).
		AddInputField("Background", "#", hexMax, nil, nil).
		AddInputField("Foreground", "", hexMax, nil, nil)

	c.colorForm.AddButton("Save", func() {
		color, err := readColorForm(c.colorForm)
		setFormError(c.colorForm, err)

		if err != nil {
			return
		}

		if err := c.colors.AddCustom(c.ctx, color); err != nil {
			setFormError(c.colorForm, err)

			return
		}

		c.selectedColor = len(c.colors.ListAll(c.ctx)) - 1
		c.showColors()
	})

	setFormError(c.colorForm, nil)
	c.colorForm.SetFocus(0)
	c.switchTo(pageColor)
}
