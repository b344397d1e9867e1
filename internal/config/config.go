package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/clickwheel/internal/app"
	"github.com/atomicstack/clickwheel/internal/gesture"
	"github.com/atomicstack/clickwheel/internal/media"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	EnvFile string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog         = "CLICKWHEEL_CATALOG"
	envPlay            = "CLICKWHEEL_PLAY"
	envMouseThreshold  = "CLICKWHEEL_MOUSE_THRESHOLD"
	envTouchThreshold  = "CLICKWHEEL_TOUCH_THRESHOLD"
	envScrollThreshold = "CLICKWHEEL_SCROLL_THRESHOLD"
	envDuration        = "CLICKWHEEL_DURATION"
	envMouse           = "CLICKWHEEL_MOUSE"
	envShowFooter      = "CLICKWHEEL_FOOTER"
	envTrace           = "CLICKWHEEL_TRACE"
	envLogFile         = "CLICKWHEEL_LOG_FILE"
	envEnvFile         = "CLICKWHEEL_ENV_FILE"
)

const defaultEnvFile = ".env"

var defaultDuration = time.Duration(media.DefaultDurationSeconds) * time.Second

// Bind registers the runtime flags on fs. Defaults here are the fallbacks
// used when neither the flag, the environment nor the env file set a value.
func Bind(fs *pflag.FlagSet) {
	fs.String("catalog", "", "path to a YAML catalog (defaults to the built-in catalog)")
	fs.String("play", "", "fuzzy track query to start playing at launch")
	fs.Float64("mouse-threshold", gesture.DefaultMouseThresholdDeg, "degrees of mouse rotation per step")
	fs.Float64("touch-threshold", gesture.DefaultTouchThresholdDeg, "degrees of touch rotation per step")
	fs.Float64("scroll-threshold", gesture.DefaultScrollThreshold, "accumulated wheel delta per step")
	fs.Duration("duration", defaultDuration, "nominal length of every track")
	fs.Bool("mouse", true, "capture mouse input")
	fs.Bool("footer", false, "enable footer hint row (disabled by default)")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	fs.String("env-file", defaultEnvFile, "dotenv file read for CLICKWHEEL_ settings")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("clickwheel", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Resolve(fs, args, environ)
}

// Resolve builds a Config from a parsed flag set. Flags win over the process
// environment, which wins over the env file.
func Resolve(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	envFile, err := loadEnvFile(fs, env)
	if err != nil {
		return Config{}, err
	}

	catalogPath := stringValue(fs, env, "catalog", envCatalog)
	play := stringValue(fs, env, "play", envPlay)
	mouseThreshold := floatValue(fs, env, "mouse-threshold", envMouseThreshold)
	touchThreshold := floatValue(fs, env, "touch-threshold", envTouchThreshold)
	scrollThreshold := floatValue(fs, env, "scroll-threshold", envScrollThreshold)
	duration := durationValue(fs, env, "duration", envDuration)
	mouse := boolValue(fs, env, "mouse", envMouse)
	footer := boolValue(fs, env, "footer", envShowFooter)
	trace := boolValue(fs, env, "trace", envTrace)
	logFile := stringValue(fs, env, "log-file", envLogFile)

	cfg := Config{
		App: app.Config{
			CatalogPath:       catalogPath,
			Play:              play,
			MouseThresholdDeg: mouseThreshold,
			TouchThresholdDeg: touchThreshold,
			ScrollThreshold:   scrollThreshold,
			TrackDuration:     duration,
			Mouse:             mouse,
			ShowFooter:        footer,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		EnvFile: envFile,
		Flags: map[string]string{
			"catalog":         catalogPath,
			"play":            play,
			"mouseThreshold":  strconv.FormatFloat(mouseThreshold, 'g', -1, 64),
			"touchThreshold":  strconv.FormatFloat(touchThreshold, 'g', -1, 64),
			"scrollThreshold": strconv.FormatFloat(scrollThreshold, 'g', -1, 64),
			"duration":        duration.String(),
			"mouse":           strconv.FormatBool(mouse),
			"footer":          strconv.FormatBool(footer),
			"trace":           strconv.FormatBool(trace),
			"logFile":         logFile,
			"envFile":         envFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile merges the dotenv file into env without overriding values the
// process environment already carries. The default file is optional; an
// explicitly named one must exist. It returns the path that was read, or ""
// when none was.
func loadEnvFile(fs *pflag.FlagSet, env map[string]string) (string, error) {
	path, _ := fs.GetString("env-file")
	required := fs.Changed("env-file")
	if !required {
		if v, ok := env[envEnvFile]; ok && strings.TrimSpace(v) != "" {
			path = v
			required = true
		}
	}
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return path, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func stringValue(fs *pflag.FlagSet, env map[string]string, name, key string) string {
	v, _ := fs.GetString(name)
	if fs.Changed(name) {
		return v
	}
	if e, ok := env[key]; ok {
		return e
	}
	return v
}

func floatValue(fs *pflag.FlagSet, env map[string]string, name, key string) float64 {
	v, _ := fs.GetFloat64(name)
	if fs.Changed(name) {
		return v
	}
	e, ok := env[key]
	if !ok || strings.TrimSpace(e) == "" {
		return v
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(e), 64)
	if err != nil {
		return v
	}
	return parsed
}

// durationValue accepts Go durations ("3m") and bare seconds ("180") from the
// environment.
func durationValue(fs *pflag.FlagSet, env map[string]string, name, key string) time.Duration {
	v, _ := fs.GetDuration(name)
	if fs.Changed(name) {
		return v
	}
	e, ok := env[key]
	e = strings.TrimSpace(e)
	if !ok || e == "" {
		return v
	}
	if secs, err := strconv.Atoi(e); err == nil {
		return time.Duration(secs) * time.Second
	}
	parsed, err := time.ParseDuration(e)
	if err != nil {
		return v
	}
	return parsed
}

func boolValue(fs *pflag.FlagSet, env map[string]string, name, key string) bool {
	v, _ := fs.GetBool(name)
	if fs.Changed(name) {
		return v
	}
	e, ok := env[key]
	if !ok || strings.TrimSpace(e) == "" {
		return v
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(e))
	if err != nil {
		return v
	}
	return parsed
}

// Validate ensures the thresholds and track length are usable.
func Validate(cfg Config) error {
	thresholds := []struct {
		name  string
		value float64
	}{
		{"mouse-threshold", cfg.App.MouseThresholdDeg},
		{"touch-threshold", cfg.App.TouchThresholdDeg},
		{"scroll-threshold", cfg.App.ScrollThreshold},
	}
	for _, th := range thresholds {
		if math.IsNaN(th.value) || math.IsInf(th.value, 0) || th.value <= 0 {
			return fmt.Errorf("%s must be a finite value > 0 (got %g)", th.name, th.value)
		}
	}
	if cfg.App.TrackDuration < time.Second {
		return fmt.Errorf("duration must be at least 1s (got %s)", cfg.App.TrackDuration)
	}
	return nil
}
