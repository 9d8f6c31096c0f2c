package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/selimozcann/RedirectCheck/internal/banner"
	"github.com/selimozcann/RedirectCheck/internal/checker"
	"github.com/selimozcann/RedirectCheck/internal/config"
	"github.com/selimozcann/RedirectCheck/internal/detect"
	"github.com/selimozcann/RedirectCheck/internal/httpclient"
	"github.com/selimozcann/RedirectCheck/internal/logging"
	"github.com/selimozcann/RedirectCheck/internal/output"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

type app struct {
	stdout io.Writer
	// stdoutFile is the terminal candidate behind stdout, nil when stdout
	// is not a file.
	stdoutFile *os.File
	stderr     io.Writer
	configDir  string
}

func newRootCmd(a *app) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "redirectcheck [flags] <url>",
		Short: "Report whether a URL answers with a redirect, without following it",
		Long: `redirectcheck sends a single GET request to the given URL with redirect
following disabled and reports the Location offered by a 3xx response.

The exit status is 0 whenever a result line is printed, including request
failures.`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.run(cmd.Context(), args[0], opts, changedFlags(cmd.Flags()))
		},
	}
	cmd.SetErr(a.stderr)
	bindFlags(cmd.Flags(), opts)

	return cmd
}

func (a *app) run(ctx context.Context, target string, opts *options, changed map[string]bool) error {
	logger := logging.New(logging.WARN, a.stderr)

	settings, err := config.Load(config.NewEnvFile(a.configDir, logger))
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := opts.merge(settings, changed); err != nil {
		return err
	}

	level := logging.DEBUG
	if !opts.verbose {
		if level, err = logging.ParseLevel(opts.logLevel); err != nil {
			return err
		}
	}
	logger.ChangeLevel(level)

	colorMode, err := output.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	colored := output.ColorEnabled(colorMode, a.stdoutFile)
	color.NoColor = !colored

	headers, err := httpclient.ParseHeaders(opts.headers)
	if err != nil {
		return err
	}

	if opts.banner {
		banner.Fprint(a.stderr, version, colored)
	}

	timeout := time.Duration(opts.timeout) * time.Second
	logger.Debugf("[config] timeout=%s proxy=%q insecure=%t headers=%d color=%s json=%t", describeTimeout(timeout), opts.proxy, opts.insecure, len(headers), colorMode, opts.json)

	client, err := httpclient.New(httpclient.Config{
		Timeout:   timeout,
		Proxy:     opts.proxy,
		Headers:   headers,
		Cookie:    opts.cookie,
		UserAgent: opts.userAgent,
		Insecure:  opts.insecure,
	})
	if err != nil {
		logger.Fatalf("failed to create HTTP client: %v", err)
		return err
	}

	outcome := checker.New(client, logger).Check(ctx, target)
	for _, f := range detect.Evaluate(outcome) {
		logger.Infof("[finding] %s (%s): %s", f.Type, f.Severity, f.Detail)
	}

	if opts.json {
		if err := output.WriteJSONL(a.stdout, output.BuildRecord(outcome)); err != nil {
			return fmt.Errorf("write JSON record: %w", err)
		}
		return nil
	}
	if err := output.NewPrinter(a.stdout, colored).Print(outcome); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func describeTimeout(d time.Duration) string {
	if d == 0 {
		return "none"
	}
	return d.String()
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		stdout:     colorable.NewColorable(os.Stdout),
		stdoutFile: os.Stdout,
		stderr:     colorable.NewColorable(os.Stderr),
		configDir:  ".",
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
