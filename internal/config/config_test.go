package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/clickwheel/internal/gesture"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.CatalogPath != "" || cfg.App.Play != "" {
		t.Fatalf("expected empty catalog and play, got %#v", cfg.App)
	}
	if cfg.App.MouseThresholdDeg != gesture.DefaultMouseThresholdDeg {
		t.Fatalf("expected default mouse threshold, got %g", cfg.App.MouseThresholdDeg)
	}
	if cfg.App.TrackDuration != 180*time.Second {
		t.Fatalf("expected 3m tracks, got %s", cfg.App.TrackDuration)
	}
	if !cfg.App.Mouse || cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("unexpected toggles %#v %#v", cfg.App, cfg.Logging)
	}
	if cfg.EnvFile != "" {
		t.Fatalf("expected no env file read, got %q", cfg.EnvFile)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	env := []string{
		"CLICKWHEEL_CATALOG=env.yaml",
		"CLICKWHEEL_PLAY=brightside",
		"CLICKWHEEL_FOOTER=true",
		"CLICKWHEEL_MOUSE_THRESHOLD=30",
		"CLICKWHEEL_DURATION=90",
	}
	cfg, err := LoadArgs([]string{"--catalog", "flag.yaml", "--mouse-threshold=12.5"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.CatalogPath != "flag.yaml" {
		t.Fatalf("expected flag to win, got %q", cfg.App.CatalogPath)
	}
	if cfg.App.MouseThresholdDeg != 12.5 {
		t.Fatalf("expected flag threshold, got %g", cfg.App.MouseThresholdDeg)
	}
	if cfg.App.Play != "brightside" || !cfg.App.ShowFooter {
		t.Fatalf("expected env fallbacks, got %#v", cfg.App)
	}
	if cfg.App.TrackDuration != 90*time.Second {
		t.Fatalf("expected bare seconds from env, got %s", cfg.App.TrackDuration)
	}
	if cfg.Flags["catalog"] != "flag.yaml" || cfg.Flags["footer"] != "true" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"CLICKWHEEL_TRACE=maybe",
		"CLICKWHEEL_TOUCH_THRESHOLD=lots",
		"CLICKWHEEL_DURATION=soon",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace to stay off")
	}
	if cfg.App.TouchThresholdDeg != gesture.DefaultTouchThresholdDeg {
		t.Fatalf("expected default touch threshold, got %g", cfg.App.TouchThresholdDeg)
	}
	if cfg.App.TrackDuration != 180*time.Second {
		t.Fatalf("expected default duration, got %s", cfg.App.TrackDuration)
	}
}

func TestEnvFileFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickwheel.env")
	body := "CLICKWHEEL_PLAY=hey ya\nCLICKWHEEL_LOG_FILE=/tmp/wheel.log\nCLICKWHEEL_DURATION=2m\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := LoadArgs([]string{"--env-file", path}, []string{"CLICKWHEEL_PLAY=somebody"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Play != "somebody" {
		t.Fatalf("expected process env to win over env file, got %q", cfg.App.Play)
	}
	if cfg.Logging.FilePath != "/tmp/wheel.log" {
		t.Fatalf("expected log file from env file, got %q", cfg.Logging.FilePath)
	}
	if cfg.App.TrackDuration != 2*time.Minute {
		t.Fatalf("expected 2m from env file, got %s", cfg.App.TrackDuration)
	}
	if cfg.EnvFile != path {
		t.Fatalf("expected env file %q recorded, got %q", path, cfg.EnvFile)
	}
}

func TestEnvFileFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.env")
	if err := os.WriteFile(path, []byte("CLICKWHEEL_FOOTER=1\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"CLICKWHEEL_ENV_FILE=" + path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by env file")
	}
}

func TestMissingExplicitEnvFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	_, err := LoadArgs([]string{"--env-file=" + missing}, nil)
	if err == nil || !strings.Contains(err.Error(), "read env file") {
		t.Fatalf("expected env file error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"mouse", []string{"--mouse-threshold=0"}, "mouse-threshold"},
		{"touch", []string{"--touch-threshold=-3"}, "touch-threshold"},
		{"scroll", []string{"--scroll-threshold=0"}, "scroll-threshold"},
		{"duration", []string{"--duration=500ms"}, "duration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %s error, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateRejectsNonFiniteThresholds(t *testing.T) {
	cases := []struct {
		name string
		env  string
		want string
	}{
		{"mouse nan", "CLICKWHEEL_MOUSE_THRESHOLD=NaN", "mouse-threshold"},
		{"touch inf", "CLICKWHEEL_TOUCH_THRESHOLD=+Inf", "touch-threshold"},
		{"scroll inf", "CLICKWHEEL_SCROLL_THRESHOLD=Inf", "scroll-threshold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(nil, []string{tc.env})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %s error, got %v", tc.want, err)
			}
		})
	}
}

func TestUnknownFlagFails(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}
