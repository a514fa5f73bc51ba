package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

//go:embed config.yaml
var defaultConfig []byte

const confName = "config.yaml"

// maxMinGap stays below the one unit between generated integer endpoints.
const maxMinGap = 0.5

type Colors struct {
	Axis   string `yaml:"axis"`
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Result string `yaml:"result"`
	Label  string `yaml:"label"`
}

type Settings struct {
	MinGap        float64 `yaml:"min_gap"`
	HitTolerance  int     `yaml:"hit_tolerance"`
	DoubleClickMs int     `yaml:"double_click_ms"`
	TeX           bool    `yaml:"tex"`
	LogLevel      string  `yaml:"log_level"`
	Colors        Colors  `yaml:"colors"`
}

func (s Settings) DoubleClick() time.Duration {
	return time.Duration(s.DoubleClickMs) * time.Millisecond
}

func (s Settings) Validate() error {
	switch {
	case s.MinGap <= 0 || s.MinGap > maxMinGap:
		return errors.Errorf("min_gap must be in ]0, %v], got %v", maxMinGap, s.MinGap)
	case s.HitTolerance < 0:
		return errors.Errorf("hit_tolerance must not be negative, got %v", s.HitTolerance)
	case s.DoubleClickMs <= 0:
		return errors.Errorf("double_click_ms must be positive, got %v", s.DoubleClickMs)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Default returns the settings of the embedded config file.
func Default() Settings {
	s, err := Parse(defaultConfig)
	if err != nil {
		panic(errors.Wrap(err, "embedded config"))
	}
	return s
}

// Parse reads YAML over the defaults so that a partial file keeps the
// remaining settings, then validates the result.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if !bytes.Equal(data, defaultConfig) {
		s = Default()
	}
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "parse config")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

type Config struct {
	log      *log.Logger
	watcher  *fsnotify.Watcher
	confDir  string
	confFile string

	mu       sync.RWMutex
	settings Settings
	onChange []func(Settings)
}

func NewConfig(log *log.Logger) *Config {
	return &Config{log: log, settings: Default()}
}

// DefaultPath is $XDG_CONFIG_HOME/numline/config.yaml, or ~/.numline/config.yaml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "numline", confName)
	}
	return filepath.Join(os.Getenv("HOME"), ".numline", confName)
}

// Init loads the config file at path, writing the embedded default there
// first if it does not exist.
func (cfg *Config) Init(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	cfg.confFile = path
	cfg.confDir = filepath.Dir(path)

	if err := cfg.writeConfigIfMissing(); err != nil {
		return err
	}
	return cfg.readConfigIntoMemory()
}

func (cfg *Config) Path() string {
	return cfg.confFile
}

func (cfg *Config) writeConfigIfMissing() error {
	if _, err := os.Stat(cfg.confFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", cfg.confFile)
	}

	if err := os.MkdirAll(cfg.confDir, 0755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	if err := os.WriteFile(cfg.confFile, defaultConfig, 0664); err != nil {
		return errors.Wrap(err, "write config file")
	}
	cfg.log.WithField("path", cfg.confFile).Info("wrote default config")
	return nil
}

func (cfg *Config) readConfigIntoMemory() error {
	content, err := os.ReadFile(cfg.confFile)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	s, err := Parse(content)
	if err != nil {
		return errors.Wrapf(err, "config %s", cfg.confFile)
	}

	cfg.mu.Lock()
	cfg.settings = s
	callbacks := append([]func(Settings){}, cfg.onChange...)
	cfg.mu.Unlock()

	for _, fn := range callbacks {
		fn(s)
	}
	return nil
}

func (cfg *Config) Settings() Settings {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.settings
}

// OnChange registers fn to run, on the watcher goroutine, after every
// successful reload.
func (cfg *Config) OnChange(fn func(Settings)) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	cfg.onChange = append(cfg.onChange, fn)
}

// Watch rereads the config whenever the file is written. A file that
// fails to parse is logged and the previous settings stay in place.
func (cfg *Config) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	// editors often replace the file, so watch the directory
	if err := watcher.Add(cfg.confDir); err != nil {
		watcher.Close()
		return errors.Wrap(err, "watch config directory")
	}
	cfg.watcher = watcher

	go cfg.rereadConfigOnFileChange(watcher)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfg.confFile) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				// truncated but not yet written
				if info, err := os.Stat(cfg.confFile); err == nil && info.Size() == 0 {
					continue
				}
				if err := cfg.readConfigIntoMemory(); err != nil {
					cfg.log.WithError(err).Warn("keeping previous config")
					continue
				}
				cfg.log.WithField("path", cfg.confFile).Info("config reloaded")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.WithError(err).Error("config watcher")
		}
	}
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}
