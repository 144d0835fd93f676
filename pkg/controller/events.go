package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[string]map[tcell.Key]KeyEvent{
		pageHome:    {},
		pageCounter: {},
		pageForm:    {},
		pageColors:  {},
		pageColor:   {},
	}

	c.initHomeEvents(c.events[pageHome])
	c.initCounterEvents(c.events[pageCounter])
	c.initColorsEvents(c.events[pageColors])

	c.initExitEvent(c.events[pageHome])
	c.initExitEvent(c.events[pageCounter])
	c.initExitEvent(c.events[pageColors])

	c.initBackEvent(c.events[pageCounter], c.showHome)
	c.initBackEvent(c.events[pageColors], c.showHome)
	c.initBackEvent(c.events[pageForm], c.leaveForm)
	c.initBackEvent(c.events[pageColor], c.showColors)
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		log.Info().Msg("terminating application")

		c.app.Stop()

		return nil
	}
}

func (c *Controller) initExitEvent(events map[tcell.Key]KeyEvent) {
	events[KeyQ] = KeyEvent{
		Description: "Exit",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) initBackEvent(events map[tcell.Key]KeyEvent, back func()) {
	events[tcell.KeyEscape] = KeyEvent{
		Description: "Back",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			back()

			return nil
		},
	}
}

// action wraps fn as a KeyEvent action that consumes the key.
func action(fn func()) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		fn()

		return nil
	}
}

func (c *Controller) initHomeEvents(events map[tcell.Key]KeyEvent) {
	events[tcell.KeyEnter] = KeyEvent{
		Description: "Open Counter",
		Action:      action(c.openSelected),
	}

	events[KeyN] = KeyEvent{
		Description: "New Counter",
		Action:      action(c.showNewCounterForm),
	}

	events[KeyD] = KeyEvent{
		Description: "Delete Counter",
		Action:      action(c.deleteSelected),
	}

	events[KeyC] = KeyEvent{
		Description: "Colors",
		Action:      action(c.showColors),
	}
}

func (c *Controller) initCounterEvents(events map[tcell.Key]KeyEvent) {
	events[KeyPlus] = KeyEvent{
		Description: "Increment",
		Action:      action(func() { c.step(1) }),
	}

	events[KeyMinus] = KeyEvent{
		Description: "Decrement",
		Action:      action(func() { c.step(-1) }),
	}

	events[KeyE] = KeyEvent{
		Description: "Edit Counter",
		Action:      action(c.showEditCounterForm),
	}
}

func (c *Controller) initColorsEvents(events map[tcell.Key]KeyEvent) {
	events[KeyA] = KeyEvent{
		Description: "Add Color",
		Action:      action(c.showColorForm),
	}

	events[KeyX] = KeyEvent{
		Description: "Remove Color",
		Action:      action(c.removeSelectedColor),
	}

	events[KeyR] = KeyEvent{
		Description: "Reset Colors",
		Action:      action(c.resetColors),
	}
}
