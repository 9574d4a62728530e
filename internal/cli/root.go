// Package cli implements the payloads command-line interface, a terminal
// viewer for result documents.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/payloads/internal/loader"
	"github.com/mesh-intelligence/payloads/internal/paths"
	"github.com/mesh-intelligence/payloads/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state built from them before a
// subcommand runs.
type app struct {
	configDir string
	jsonMode  bool
	logLevel  string

	settings settings
	logger   *slog.Logger
	loader   *loader.Loader
}

// NewRootCmd creates the top-level "payloads" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "payloads",
		Short: "Inspect result payload documents",
		Long: "payloads reads result documents ({uri, payload, layout}) and shows\n" +
			"which items are plots, artifacts or informational values.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newKeysCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newLayoutCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, reads the config and builds the
// logger and loader shared by subcommands.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	dir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return sysErr(fmt.Errorf("load config: %w", err))
	}
	if a.logLevel != "" {
		v.Set(cfgKeyLogLevel, a.logLevel)
	}
	if a.jsonMode {
		v.Set(cfgKeyOutput, outputJSON)
	}

	s, err := settingsFrom(v)
	if err != nil {
		return err
	}
	a.settings = s

	logger, err := newLogger(cmd.ErrOrStderr(), s.LogLevel, s.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	a.loader = loader.New(logger)
	return nil
}

// loadStores reads the document file at path.
func (a *app) loadStores(path string) ([]*types.Store, error) {
	stores, err := a.loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("read documents", "path", path, "count", len(stores))
	return stores, nil
}

// sysError marks failures of the environment rather than of user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErr(err error) error {
	return &sysError{err: err}
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
