package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/atomicstack/clickwheel/internal/app"
	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/config"
	"github.com/atomicstack/clickwheel/internal/format/table"
	"github.com/atomicstack/clickwheel/internal/logging"
	"github.com/atomicstack/clickwheel/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// configError marks failures that exit with status 2.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clickwheel",
		Short:   "Click-wheel music player for the terminal",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return configError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtimeCfg, err := config.Resolve(cmd.Flags(), os.Args[1:], os.Environ())
			if err != nil {
				return configError{err: err}
			}
			logging.Configure(runtimeCfg.Logging.FilePath)
			logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

			traceStartup(runtimeCfg)

			return app.Run(runtimeCfg.App)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err: err}
	})
	config.Bind(cmd.PersistentFlags())
	cmd.AddCommand(newTracksCommand())
	return cmd
}

// newTracksCommand prints the catalog's track list.
func newTracksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List the tracks in the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return configError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtimeCfg, err := config.Resolve(cmd.Flags(), os.Args[1:], os.Environ())
			if err != nil {
				return configError{err: err}
			}
			cat, err := app.LoadCatalog(runtimeCfg.App.CatalogPath)
			if err != nil {
				return err
			}
			for _, line := range trackTable(cat) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func trackTable(cat *catalog.Catalog) []string {
	rows := [][]string{{"#", "TITLE", "ARTIST", "ID"}}
	for i, t := range cat.Tracks {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Title, t.Artist, t.ID})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft})
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
