package application

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"numline/commands"
	"numline/config"
	"numline/layout"
	"numline/notation"
	"numline/render"
	"numline/screen"
	"numline/widget"
)

// SettingsSource hands out the current settings. *config.Config is one.
type SettingsSource interface {
	Settings() config.Settings
}

type Window struct {
	Width, Height int
}

func (win *Window) update(width, height int) {
	win.Width, win.Height = width, height
}

type Application struct {
	screen   tcell.Screen
	window   *Window
	settings SettingsSource
	commands *commands.Commands
	layout   *layout.Flex

	widgets []*widget.Widget
	active  int
	pointer pointer
	tex     bool
	// tex as last read from the settings; a reload only overrides the
	// current mode when the setting itself changed
	configTeX bool

	// pane holding the number line, refreshed on every layout
	line  layout.Dimensions
	notes screen.Line

	quit bool
	log  *log.Logger
}

func New(s tcell.Screen, widgets []*widget.Widget, settings SettingsSource, logger *log.Logger) *Application {
	width, height := s.Size()
	app := &Application{
		screen:   s,
		window:   &Window{width, height},
		settings: settings,
		commands: commands.NewCommands(logger),
		widgets:  widgets,
		tex:       settings.Settings().TeX,
		configTeX: settings.Settings().TeX,
		log:      logger,
	}
	app.registerCommands()
	logger.WithField("commands", app.commands.Names()).Debug("commands registered")
	app.ApplySettings(settings.Settings())

	app.layout = layout.Column(
		layout.FlexItemBox(app.titleBox, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(app.lineBox, layout.Max(layout.Rel(1)), nil),
		layout.FlexItemBox(app.notationBox, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(3)), nil),
	)
	return app
}

func (app *Application) registerCommands() {
	app.commands.Register("next", func() { app.Select(app.active + 1) })
	app.commands.Register("prev", func() { app.Select(app.active - 1) })
	app.commands.Register("generate", func() {
		if _, err := app.Active().Generate(); err != nil {
			app.log.WithError(err).Error("generate")
		}
	})
	app.commands.Register("compute", func() { app.Active().Compute() })
	app.commands.Register("tex", func() { app.tex = !app.tex })
	app.commands.Register("sync", func() { app.screen.Sync() })
	app.commands.Register("quit", func() { app.quit = true })
}

var keyCommands = map[tcell.Key]string{
	tcell.KeyTab:     "next",
	tcell.KeyBacktab: "prev",
	tcell.KeyEscape:  "quit",
	tcell.KeyCtrlC:   "quit",
	tcell.KeyCtrlL:   "sync",
}

var runeCommands = map[rune]string{
	'n': "next",
	'p': "prev",
	'g': "generate",
	'c': "compute",
	't': "tex",
	'q': "quit",
}

// ApplySettings pushes display and editing settings into every widget.
func (app *Application) ApplySettings(s config.Settings) {
	tracks := [2]widget.Track{{Color: s.Colors.First, Weight: 6}, {Color: s.Colors.Second, Weight: 8}}
	result := widget.Track{Color: s.Colors.Result, Weight: 8}
	label := widget.Track{Color: s.Colors.Label}
	for _, w := range app.widgets {
		w.SetOptions(s.MinGap, s.HitTolerance, tracks, result, label)
	}
	if s.TeX != app.configTeX {
		app.configTeX, app.tex = s.TeX, s.TeX
	}
}

func (app *Application) Active() *widget.Widget {
	return app.widgets[app.active]
}

// Select switches to widget n, wrapping around. A drag in progress on the
// previous widget ends first.
func (app *Application) Select(n int) {
	app.Active().Model.EndEdit()
	app.pointer.reset()
	app.active = ((n % len(app.widgets)) + len(app.widgets)) % len(app.widgets)
	app.log.WithField("widget", app.Active().Kind).Debug("selected")
}

// UseTeX switches the notation row between Unicode and TeX.
func (app *Application) UseTeX(on bool) {
	app.tex = on
}

func (app *Application) Quitting() bool {
	return app.quit
}

func (app *Application) style() notation.Style {
	if app.tex {
		return notation.TeX
	}
	return notation.Plain
}

// HandleEvent processes one event. Events are handled strictly in order on
// the caller's goroutine.
func (app *Application) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.window.update(ev.Size())
		app.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if name, ok := runeCommands[ev.Rune()]; ok {
				app.commands.Exec(name)
			}
		} else if name, ok := keyCommands[ev.Key()]; ok {
			app.commands.Exec(name)
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		// config reload, redraw with the new settings
		app.ApplySettings(app.settings.Settings())
	}
}

// Draw lays out and paints the whole screen.
func (app *Application) Draw() {
	app.window.update(app.screen.Size())
	app.screen.Clear()
	app.layout.StartLayouting(app.window.Width, app.window.Height)
	app.screen.HideCursor()
	app.screen.Show()
}

// Run is the event loop. It returns once a quit command ran.
func (app *Application) Run() {
	for !app.quit {
		app.Draw()
		app.HandleEvent(app.screen.PollEvent())
	}
	app.log.Info("quit")
}

func (app *Application) titleBox(dims layout.Dimensions) {
	w := app.Active()
	title := fmt.Sprintf(" %d/%d  %s", app.active+1, len(app.widgets), w.Title)
	screen.DrawText(app.screen, dims.Origin.X, dims.Origin.Y, dims.Origin.X+dims.Width-1, dims.Origin.Y, screen.BoldStyle, title)
}

func (app *Application) lineBox(dims layout.Dimensions) {
	app.line = dims
	w := app.Active()
	w.Resize(dims.Width)

	s := app.settings.Settings()
	pane := screen.Pane{Screen: app.screen, Dims: dims}
	var sink render.Sink = pane
	sink.Draw(render.Scene(w, render.Style{Color: s.Colors.Axis}))
}

func (app *Application) notationBox(dims layout.Dimensions) {
	app.Active().Publish(&app.notes, app.style())
	app.notes.Draw(app.screen, layout.Dimensions{
		Origin: layout.Point{X: dims.Origin.X + 1, Y: dims.Origin.Y},
		Width:  dims.Width - 1,
		Height: dims.Height,
	}, screen.DefaultStyle)
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	xmin, ymin, xmax, ymax := dims.Origin.X, dims.Origin.Y, dims.Origin.X+dims.Width, dims.Origin.Y+dims.Height
	help := []string{"drag endpoints", "double click toggles", "tab next"}
	if app.Active().Random {
		help = append(help, "g generate", "c compute")
	}
	help = append(help, "t tex", "q quit")
	screen.DrawBox(app.screen, xmin, ymin, xmax-1, ymax-1, screen.LightStyle, strings.Join(help, " · "))
}
