package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/bubbletea"
	"github.com/fwojciec/gitwebhl/chroma"
	"github.com/fwojciec/gitwebhl/clipboard"
	"github.com/fwojciec/gitwebhl/config"
	"github.com/fwojciec/gitwebhl/git"
	"github.com/fwojciec/gitwebhl/jsonl"
	"github.com/fwojciec/gitwebhl/lipgloss"
	"github.com/fwojciec/gitwebhl/resolve"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// options holds global flags shared by all commands.
type options struct {
	configPath string
	verbose    bool
	repoRoot   string
	style      string

	cfg    *config.Config
	logger *slog.Logger
}

// newApp wires the production collaborators from the loaded configuration.
func (o *options) newApp(stdout io.Writer) (*App, error) {
	theme, err := lipgloss.ThemeByName(o.cfg.Theme)
	if err != nil {
		return nil, err
	}
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}

	clip := clipboard.NewSystem()
	return &App{
		Stdout:          stdout,
		Logger:          o.logger,
		Resolver:        resolve.NewResolver(),
		Blobs:           git.NewRunner(o.cfg.RepoRoot),
		Highlighter:     chroma.NewHighlighter(o.cfg.Style),
		Viewer:          bubbletea.NewViewer(theme.WithLineNumberColor(o.cfg.LineNumberColor), tokenizer, clip),
		Clipboard:       clip,
		Loader:          jsonl.NewLoader(),
		Saver:           jsonl.NewSaver(),
		Store:           jsonl.NewStore(),
		LineNumberColor: o.cfg.LineNumberColor,
		Jobs:            o.cfg.Jobs,
	}, nil
}

// isNoOp reports whether err means the page should be left unhighlighted.
func isNoOp(err error) bool {
	return errors.Is(err, gitwebhl.ErrNotBlobView) || errors.Is(err, gitwebhl.ErrUnresolved)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gitwebhl",
		Short: "Resolve and highlight files shown on gitweb blob pages",
		Long: `gitwebhl decides which language a gitweb blob page should be highlighted as.

The decision uses the file extension from the "f" query field and any
interpreter directive on the file's first line, which always wins. The
resolved type is expanded with the grammars commonly embedded in it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("repo-root") {
				cfg.RepoRoot = opts.repoRoot
			}
			if cmd.Flags().Changed("style") {
				cfg.Style = opts.style
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log resolution details")

	root.AddCommand(
		newResolveCmd(opts, stdout),
		newRenderCmd(opts, stdout),
		newViewCmd(opts, stdout),
		newBatchCmd(opts, stdout),
		newTablesCmd(stdout),
	)
	return root
}

func newResolveCmd(opts *options, stdout io.Writer) *cobra.Command {
	var (
		firstLine string
		record    string
		toClip    bool
	)
	cmd := &cobra.Command{
		Use:   "resolve QUERY",
		Short: "Print the languages a page resolves to",
		Example: `  gitwebhl resolve 'p=git.git;a=blob;f=lib/app.php5'
  gitwebhl resolve ';a=blob;f=bin/deploy' --first-line '#!/usr/bin/env python'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(stdout)
			if err != nil {
				return err
			}
			d, err := app.Resolve(gitwebhl.Page{Query: args[0], FirstLine: firstLine}, record)
			if err != nil {
				return err
			}
			if !d.OK() {
				opts.logger.Info("nothing to highlight", "query", args[0], "resolvable", d.Resolvable)
				return nil
			}
			line := joinLanguages(d.Languages)
			fmt.Fprintln(stdout, line)
			if toClip {
				return app.Clipboard.Copy(line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&firstLine, "first-line", "", "text of the file's first line")
	cmd.Flags().StringVar(&record, "record", "", "append the decision to this JSONL file")
	cmd.Flags().BoolVar(&toClip, "copy", false, "copy the result to the clipboard")
	return cmd
}

func newRenderCmd(opts *options, stdout io.Writer) *cobra.Command {
	var toClip bool
	cmd := &cobra.Command{
		Use:   "render QUERY",
		Short: "Write the blob behind a page as highlighted HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(stdout)
			if err != nil {
				return err
			}
			err = app.Render(cmd.Context(), args[0], toClip)
			if isNoOp(err) {
				opts.logger.Info("nothing to highlight", "query", args[0], "reason", err)
				return nil
			}
			return err
		},
	}
	addBlobFlags(cmd, opts)
	cmd.Flags().BoolVar(&toClip, "copy", false, "copy the HTML to the clipboard")
	return cmd
}

func newViewCmd(opts *options, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view QUERY",
		Short: "Show the blob behind a page in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(stdout)
			if err != nil {
				return err
			}
			err = app.View(cmd.Context(), args[0])
			if isNoOp(err) {
				opts.logger.Info("nothing to highlight", "query", args[0], "reason", err)
				return nil
			}
			return err
		},
	}
	addBlobFlags(cmd, opts)
	return cmd
}

func addBlobFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.repoRoot, "repo-root", "", "directory holding gitweb projects")
	cmd.Flags().StringVar(&opts.style, "style", "", "chroma style for HTML output")
}

func newBatchCmd(opts *options, stdout io.Writer) *cobra.Command {
	var (
		baseline string
		jobs     int
	)
	cmd := &cobra.Command{
		Use:   "batch IN.jsonl OUT.jsonl",
		Short: "Resolve recorded page views and write the decisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(stdout)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("jobs") {
				app.Jobs = jobs
			}
			report, err := app.Batch(cmd.Context(), args[0], args[1], baseline)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%d page views, %d highlighted", report.Total, report.Resolved)
			if baseline != "" {
				fmt.Fprintf(stdout, ", %d changed since baseline", report.Changed)
			}
			fmt.Fprintln(stdout)
			return nil
		},
	}
	cmd.Flags().StringVar(&baseline, "baseline", "", "earlier decisions to compare against")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of concurrent workers")
	return cmd
}

func newTablesCmd(stdout io.Writer) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the resolution tables as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !check {
				return WriteTables(stdout)
			}
			missing, err := CheckTables()
			if err != nil {
				return err
			}
			if len(missing) == 0 {
				fmt.Fprintln(stdout, "tables ok")
				return nil
			}
			names := make([]string, len(missing))
			for i, t := range missing {
				names[i] = string(t)
			}
			fmt.Fprintf(stdout, "tables ok; no HTML grammar for: %s\n", strings.Join(names, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "validate the tables instead of printing them")
	return cmd
}
