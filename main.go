package main

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"numline/application"
	"numline/config"
	"numline/metrics"
	"numline/screen"
	"numline/widget"
)

var (
	app = kingpin.New("numline", "Interactive interval widgets on a terminal number line.")

	configPath = app.Flag("config", "Config file path.").
			Default(config.DefaultPath()).Envar("NUMLINE_CONFIG").String()
	logFile = app.Flag("log-file", "Log file path.").
		Default("numline.log").String()
	debug = app.Flag("debug", "Log at debug level.").
		Short('d').Bool()
	startWidget = app.Flag("widget", "Widget shown first.").
			Default(string(widget.Create)).
			Enum(kinds()...)
	tex  = app.Flag("tex", "Show notation as TeX.").Bool()
	save = app.Flag("save", "Append the final notation of every widget to this file on quit.").String()
)

func kinds() []string {
	var k []string
	for _, s := range widget.Catalog() {
		k = append(k, string(s.Kind))
	}
	return k
}

func newLogger(path string) (*log.Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %v", path)
	}
	logger := log.New()
	logger.SetOutput(file)
	logger.SetReportCaller(true)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return logger, nil
}

func setLevel(logger *log.Logger, s config.Settings) {
	if *debug {
		logger.SetLevel(log.DebugLevel)
		return
	}
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("keeping log level")
		return
	}
	logger.SetLevel(level)
}

// seeds draws randomizer seeds from a fresh uuid.
func seeds() (uint64, uint64) {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:])
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*logFile)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	cfg := config.NewConfig(logger)
	if err := cfg.Init(*configPath); err != nil {
		logger.Fatalf("%+v", err)
	}
	defer cfg.Cleanup()
	setLevel(logger, cfg.Settings())
	logger.WithField("path", cfg.Path()).Info("config loaded")

	scope, closer := metrics.InitMetricScope(logger, "numline", 10*time.Second)
	defer closer.Close()

	var widgets []*widget.Widget
	start := 0
	seed1, seed2 := seeds()
	rnd := widget.NewRandomizer(seed1, seed2)
	for n, spec := range widget.Catalog() {
		w, err := widget.New(spec, widget.Options{Rand: rnd, Log: logger, Scope: scope})
		if err != nil {
			logger.Fatalf("%+v", err)
		}
		if string(spec.Kind) == *startWidget {
			start = n
		}
		widgets = append(widgets, w)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		logger.Fatalf("%+v", err)
	}
	s.SetStyle(screen.DefaultStyle)
	s.EnableMouse()
	s.Clear()

	// You have to catch panics in a defer, clean up, and
	// re-raise them - otherwise your application can
	// die without leaving any diagnostic trace.
	defer func() {
		maybePanic := recover()
		s.Fini()
		if maybePanic != nil {
			logger.Errorf("panic: %v", maybePanic)
			panic(maybePanic)
		}
	}()

	ui := application.New(s, widgets, cfg, logger)
	ui.Select(start)
	if *tex {
		ui.UseTeX(true)
	}

	cfg.OnChange(func(settings config.Settings) {
		setLevel(logger, settings)
		// wakes the event loop, which applies the new settings
		if err := s.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			logger.WithError(err).Warn("config reload not delivered")
		}
	})
	if err := cfg.Watch(); err != nil {
		logger.WithError(err).Warn("config hot reload disabled")
	}

	logger.WithField("widget", *startWidget).Info("started")
	ui.Run()

	if *save != "" {
		if err := ui.SaveTranscript(*save); err != nil {
			logger.Errorf("%+v", err)
		}
	}
}
