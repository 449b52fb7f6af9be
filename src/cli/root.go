// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/H0llyW00dzZ/fmld/src/config"
	"github.com/H0llyW00dzZ/fmld/src/diaglog"
	"github.com/H0llyW00dzZ/fmld/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/fmld/src/internal/logdir"
	"github.com/H0llyW00dzZ/fmld/src/internal/paste"
	"github.com/H0llyW00dzZ/fmld/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrExportFailed is returned when the log buffer could not be written.
	ErrExportFailed = errors.New("failed to export diagnostic log")

	// ErrPasteFailed is returned when an explicit paste upload fails.
	ErrPasteFailed = errors.New("failed to create paste")
)

// app holds what the commands share once the configuration is loaded.
type app struct {
	version string
	reg     *logger.Registry
	cfg     *config.Config
	paste   *paste.HTTPClient
	dl      *diaglog.DiagnosticLog
}

// setup loads the configuration and builds the diagnostic log.
func (a *app) setup(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.ConsoleFormat == config.ConsoleFormatJSON {
		a.reg.SetPlain(logger.JSONFormatter{})
	}
	if debug || cfg.Log.Debug {
		a.reg.EnableDebug()
	}

	log := a.reg.Logger()

	a.paste = paste.NewHTTPClient(cfg.Paste.Endpoint, paste.Credentials{
		AppID:    cfg.Paste.AppID,
		AppToken: cfg.Paste.AppToken,
	}, a.version)
	a.paste.Timeout = time.Duration(cfg.Paste.Timeout) * time.Second
	a.paste.SetCABundle(cfg.Paste.CABundle)
	if len(cfg.Paste.CABundlePaths) > 0 {
		a.paste.BundleCandidates = cfg.Paste.CABundlePaths
	}

	a.dl = diaglog.New(diaglog.Options{
		Registry:   a.reg,
		Resolver:   logdir.New(log, cfg.Log.SystemDir),
		Paste:      a.paste,
		FilePrefix: cfg.Log.FilePrefix,
	})

	log.Debugf("fmld %s started", a.version)
	return nil
}

// NewRootCommand builds the fmld command tree. Every command logs through
// reg, which must be the registry owned by the caller.
func NewRootCommand(version string, reg *logger.Registry) *cobra.Command {
	a := &app{version: version, reg: reg}

	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Field machine diagnostic log collector",
		Long:          "Collects diagnostic logs into a writable log directory and shares them through the paste service.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath, debug)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (JSON or YAML, default: $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "show detailed DEBUG output on the console")

	rootCmd.AddCommand(
		newLogDirCommand(a),
		newCollectCommand(a),
		newPasteCommand(a),
	)

	return rootCmd
}

// Execute runs the fmld command tree with the process arguments.
//
// Parameters:
//   - ctx: Context for cancellation of paste uploads
//   - version: Version reported by --version and the paste User-Agent
//   - reg: Registry owning the shared logger
//
// Returns:
//   - error: First error reported by the selected command
func Execute(ctx context.Context, version string, reg *logger.Registry) error {
	return NewRootCommand(version, reg).ExecuteContext(ctx)
}
