package application

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"numline/widget"
)

// pointer tracks button state between mouse events. tcell reports only
// button masks, so presses, drags and releases are told apart here.
type pointer struct {
	down bool

	// last press that may become the first half of a double click
	lastPress    time.Time
	lastX, lastY int
}

func (p *pointer) reset() {
	*p = pointer{}
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	w := app.Active()
	inside := app.line.Contains(x, y)
	col, row := x-app.line.Origin.X, y-app.line.Origin.Y
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !app.pointer.down:
		app.pointer.down = true
		if inside {
			app.press(w, ev.When(), x, y, col, row)
		}
	case pressed:
		h, editing := w.Model.Editing()
		if !editing {
			return
		}
		if !inside {
			// leaving the number line ends the drag like a release
			w.Model.EndEdit()
			return
		}
		w.Model.MoveEndpoint(h, w.ValueAt(col), w.Bounds())
	case app.pointer.down:
		app.pointer.down = false
		w.Model.EndEdit()
	}
}

func (app *Application) press(w *widget.Widget, when time.Time, x, y, col, row int) {
	h, hit := w.HitTest(col, row)

	p := &app.pointer
	window := app.settings.Settings().DoubleClick()
	if !p.lastPress.IsZero() && when.Sub(p.lastPress) <= window && p.lastX == x && p.lastY == y {
		p.lastPress = time.Time{}
		if hit {
			w.Model.ToggleClosed(h)
			app.log.WithField("handle", h).Debug("toggled")
		}
		return
	}

	p.lastPress, p.lastX, p.lastY = when, x, y
	if hit {
		w.Model.BeginEdit(h)
	}
}
