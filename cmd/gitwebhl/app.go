package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/gitwebhl"
	"github.com/fwojciec/gitwebhl/resolve"
)

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Logger *slog.Logger

	Resolver    gitwebhl.Resolver
	Blobs       gitwebhl.BlobSource
	Highlighter gitwebhl.Highlighter
	Viewer      gitwebhl.Viewer
	Clipboard   gitwebhl.Clipboard
	Loader      gitwebhl.PageViewLoader
	Saver       gitwebhl.DecisionSaver
	Store       gitwebhl.DecisionStore

	LineNumberColor string
	Jobs            int
}

// Resolve decides the languages for a page and, when record is set, appends
// the decision to that JSONL file.
func (a *App) Resolve(page gitwebhl.Page, record string) (gitwebhl.Decision, error) {
	d := a.Resolver.Resolve(page)
	a.Logger.Debug("resolved page",
		"query", page.Query,
		"resolvable", d.Resolvable,
		"path_type", d.PathType,
		"shebang_type", d.ShebangType,
		"source", d.Source,
	)
	if record != "" {
		if err := a.Saver.Save(record, d); err != nil {
			return d, fmt.Errorf("record decision: %w", err)
		}
	}
	return d, nil
}

// load fetches the blob behind a page identifier and resolves it using the
// blob's first line.
func (a *App) load(ctx context.Context, query string) (gitwebhl.Blob, gitwebhl.Decision, error) {
	ref, ok := resolve.ParseBlobRef(query)
	if !ok {
		return gitwebhl.Blob{}, gitwebhl.Decision{}, gitwebhl.ErrNotBlobView
	}
	source, err := a.Blobs.Blob(ctx, ref)
	if err != nil {
		return gitwebhl.Blob{}, gitwebhl.Decision{}, fmt.Errorf("fetch %s: %w", ref.Object(), err)
	}
	d, err := a.Resolve(gitwebhl.Page{Query: query, FirstLine: gitwebhl.FirstLine(source)}, "")
	if err != nil {
		return gitwebhl.Blob{}, d, err
	}
	if !d.OK() {
		return gitwebhl.Blob{}, d, gitwebhl.ErrUnresolved
	}
	return gitwebhl.Blob{Ref: ref, Source: source, Languages: d.Languages}, d, nil
}

// Render writes the blob behind a page identifier as highlighted HTML. With
// toClipboard set, the HTML is also placed on the clipboard.
func (a *App) Render(ctx context.Context, query string, toClipboard bool) error {
	blob, d, err := a.load(ctx, query)
	if err != nil {
		return err
	}

	if err := a.Highlighter.Configure(resolve.Config(d, a.LineNumberColor)); err != nil {
		return fmt.Errorf("configure highlighter: %w", err)
	}

	var buf bytes.Buffer
	w := a.Stdout
	if toClipboard {
		w = io.MultiWriter(a.Stdout, &buf)
	}
	if err := a.Highlighter.HighlightBlock(w, blob.Source); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	if toClipboard {
		return a.Clipboard.Copy(buf.String())
	}
	return nil
}

// View shows the blob behind a page identifier in the terminal viewer.
func (a *App) View(ctx context.Context, query string) error {
	blob, _, err := a.load(ctx, query)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, blob)
}

// BatchReport summarizes a batch run.
type BatchReport struct {
	Total    int // Page views read
	Resolved int // Decisions that trigger highlighting
	Changed  int // Decisions whose languages differ from the baseline
}

// Batch resolves every page view in the input file concurrently and writes
// the decisions to the output file in input order. With a baseline file the
// report counts decisions whose languages changed.
func (a *App) Batch(ctx context.Context, in, out, baseline string) (BatchReport, error) {
	pages, err := a.Loader.Load(in)
	if err != nil {
		return BatchReport{}, fmt.Errorf("load page views: %w", err)
	}

	decisions := make([]gitwebhl.Decision, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Jobs, 1))
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decisions[i] = a.Resolver.Resolve(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchReport{}, err
	}

	if err := a.Store.Save(out, decisions); err != nil {
		return BatchReport{}, fmt.Errorf("save decisions: %w", err)
	}

	report := BatchReport{Total: len(decisions)}
	for _, d := range decisions {
		if d.OK() {
			report.Resolved++
		}
	}

	if baseline == "" {
		return report, nil
	}
	previous, err := a.Store.Load(baseline)
	if err != nil {
		return report, fmt.Errorf("load baseline: %w", err)
	}
	report.Changed = countChanged(previous, decisions)
	return report, nil
}

// countChanged compares decisions by page and counts differing language lists.
// Pages missing from the baseline count as changed.
func countChanged(previous, current []gitwebhl.Decision) int {
	before := make(map[gitwebhl.Page]string, len(previous))
	for _, d := range previous {
		before[d.Page] = joinLanguages(d.Languages)
	}
	changed := 0
	for _, d := range current {
		if langs, ok := before[d.Page]; !ok || langs != joinLanguages(d.Languages) {
			changed++
		}
	}
	return changed
}

func joinLanguages(languages []gitwebhl.CanonicalType) string {
	parts := make([]string, len(languages))
	for i, l := range languages {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}
