// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/fmld/src/diaglog"
	"github.com/H0llyW00dzZ/fmld/src/internal/sysinfo"
	x509certs "github.com/H0llyW00dzZ/fmld/src/internal/x509/certs"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newLogDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logdir",
		Short: "Print the directory diagnostic logs are written to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.dl.LogDirectory()
			if !dir.Writable {
				a.dl.Logger().Warnf("Log directory %s is not writable", dir.Path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir.Path)
			return nil
		},
	}
}

type collectOptions struct {
	output    string
	paste     bool
	permanent bool
	colorized bool
}

func newCollectCommand(a *app) *cobra.Command {
	var opts collectOptions

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Record a host summary and export the log buffer to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.collect(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the log to OUTPUT (default: generated name in the log directory)")
	cmd.Flags().BoolVarP(&opts.paste, "paste", "p", false, "also upload the log to the paste service")
	cmd.Flags().BoolVar(&opts.permanent, "permanent", false, "keep the uploaded paste instead of letting it expire")
	cmd.Flags().BoolVar(&opts.colorized, "color", false, "enable syntax coloring of the uploaded paste")

	return cmd
}

func (a *app) collect(cmd *cobra.Command, opts collectOptions) error {
	ctx := cmd.Context()
	log := a.dl.Logger()
	out := cmd.OutOrStdout()

	host := sysinfo.Describe(ctx)
	log.Infof("Collecting diagnostics on %s", host.Hostname)

	dir := a.dl.LogDirectory()
	free := "unknown"
	if n, err := sysinfo.DiskFree(ctx, dir.Path); err != nil {
		log.Debugf("%v", err)
	} else {
		free = humanize.IBytes(n)
	}

	candidates := x509certs.DefaultBundlePaths
	if len(a.cfg.Paste.CABundlePaths) > 0 {
		candidates = a.cfg.Paste.CABundlePaths
	}
	bundle := x509certs.DiscoverBundle(afero.NewOsFs(), a.cfg.Paste.CABundle, candidates)
	if bundle == "" {
		bundle = "system roots"
	}

	summary, err := renderSummary([][]string{
		{"Host", host.String()},
		{"Version", a.version},
		{"Log directory", dir.Path},
		{"Fallback", fmt.Sprintf("%t", dir.Fallback)},
		{"Writable", fmt.Sprintf("%t", dir.Writable)},
		{"Free space", free},
		{"CA bundle", bundle},
		{"Debug console", fmt.Sprintf("%t", a.reg.Debug())},
	})
	if err != nil {
		log.Debugf("%v", err)
	} else {
		log.Debugf("Diagnostic summary:\n%s", summary)
	}

	path, ok := a.dl.ExportBufferToFile(opts.output)
	if !ok {
		return ErrExportFailed
	}
	log.Infof("Diagnostic log written to %s", path)
	fmt.Fprintln(out, path)

	if !opts.paste {
		return nil
	}

	contents, err := a.dl.BufferContents()
	if err != nil {
		return err
	}
	url, ok := a.dl.CreatePaste(ctx, contents, diaglog.PasteOptions{
		Permanent: opts.permanent,
		Colorized: opts.colorized,
	})
	if !ok {
		// The file export already succeeded; the upload is a convenience.
		log.Warnf("Paste upload failed, the log is still available at %s", path)
		return nil
	}
	fmt.Fprintln(out, url)
	return nil
}

func newPasteCommand(a *app) *cobra.Command {
	var opts diaglog.PasteOptions

	cmd := &cobra.Command{
		Use:   "paste [FILE]",
		Short: "Upload FILE or standard input to the paste service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read paste content: %w", err)
			}

			url, ok := a.dl.CreatePaste(cmd.Context(), string(data), opts)
			if !ok {
				return ErrPasteFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Permanent, "permanent", false, "keep the paste instead of letting it expire")
	cmd.Flags().BoolVar(&opts.Colorized, "color", false, "enable syntax coloring")

	return cmd
}
