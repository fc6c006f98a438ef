// Package app implements the application layer for fg.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/framegraph/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/framegraph/internal/engine/framegraph"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultFrames is the number of frames fg run processes per graph load.
const DefaultFrames = 3

var headingStyle = lipgloss.NewStyle().Bold(true)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.PipelineStore
	tracer       ports.Tracer
	telemetry    ports.Telemetry
	watcher      ports.Watcher
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.PipelineStore,
	tracer ports.Tracer,
	telemetry ports.Telemetry,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		tracer:       tracer,
		telemetry:    telemetry,
		watcher:      w,
		out:          os.Stdout,
	}
}

// WithOutput redirects plans and reports to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Plan loads the graph file at path and prints the physical passes a frame would record.
func (a *App) Plan(_ context.Context, path string) error {
	spec, err := a.configLoader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load graph file")
	}
	s, err := newSession(spec, framegraph.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	plan, err := s.graph.Plan()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid frame graph"), "graph", spec.Name)
	}
	return writePlan(a.out, spec, plan)
}

func writePlan(w io.Writer, spec *domain.GraphSpec, plan []framegraph.PlanEntry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf("graph %q at %s, %d frames in flight", spec.Name, spec.Extent, spec.FramesInFlight)))
	for i, entry := range plan {
		fmt.Fprintf(&b, "#%d %s %s\n", i, entry.Extent, strings.Join(entry.Subpasses, " > "))
		if entry.Depth != "" {
			fmt.Fprintf(&b, "   depth: %s\n", entry.Depth)
		}
		fmt.Fprintf(&b, "   attachments: %s\n", strings.Join(entry.Attachments, ", "))
		if len(entry.Dependencies) > 0 {
			deps := make([]string, len(entry.Dependencies))
			for j, d := range entry.Dependencies {
				deps[j] = fmt.Sprintf("#%d", d)
			}
			fmt.Fprintf(&b, "   after: %s\n", strings.Join(deps, ", "))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RunOptions configures Run.
type RunOptions struct {
	Path     string
	Frames   int
	Watch    bool
	CacheDir string
	JSON     bool
}

// Report summarizes one run of a graph.
type Report struct {
	Graph           string                   `json:"graph"`
	Frames          int                      `json:"frames"`
	Rebuilds        int                      `json:"rebuilds"`
	PhysicalPasses  int                      `json:"physicalPasses"`
	Images          pool.Stats               `json:"images"`
	Pipelines       pool.Stats               `json:"pipelines"`
	DescriptorPools pool.DescriptorPoolStats `json:"descriptorPools"`
	Draws           int                      `json:"draws"`
	PipelineBinds   int                      `json:"pipelineBinds"`
	SetBinds        int                      `json:"setBinds"`
	Submits         int                      `json:"submits"`
	Presents        int                      `json:"presents"`
}

// Run loads the graph file, processes opts.Frames frames on the headless device and prints a
// report. With opts.Watch it then reloads and reruns the graph whenever the file changes,
// until ctx is done.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.Frames <= 0 {
		opts.Frames = DefaultFrames
	}
	store := a.store
	if opts.CacheDir != "" {
		s, err := cas.NewStore(opts.CacheDir)
		if err != nil {
			return err
		}
		store = s
	}

	if !opts.Watch {
		return a.runOnce(ctx, opts, store)
	}
	return a.watch(ctx, opts, store)
}

func (a *App) runOnce(ctx context.Context, opts RunOptions, store ports.PipelineStore) (err error) {
	spec, err := a.configLoader.Load(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to load graph file")
	}

	if a.tracer != nil {
		var span ports.Span
		ctx, span = a.tracer.Start(ctx, "fg.run", ports.WithAttribute("graph", spec.Name))
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()
	}

	graphOpts := []framegraph.Option{framegraph.WithLogger(a.logger)}
	if a.tracer != nil {
		graphOpts = append(graphOpts, framegraph.WithTracer(a.tracer))
	}
	if a.telemetry != nil {
		graphOpts = append(graphOpts, framegraph.WithTelemetry(a.telemetry))
	}
	s, err := newSession(spec, graphOpts...)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.Close()) }()

	if store != nil {
		if err := s.graph.Pipelines().Load(ctx, store); err != nil {
			a.logger.Warn("ignoring saved pipeline cache", "error", err)
		}
	}

	for range opts.Frames {
		if err := s.graph.Process(ctx); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to process frame"), "graph", spec.Name)
		}
	}

	if store != nil {
		if err := s.graph.Pipelines().Save(ctx, store); err != nil {
			return err
		}
	}
	return a.report(s, opts.JSON)
}

func (a *App) report(s *session, asJSON bool) error {
	stats := s.graph.Stats()
	counters := s.device.Counters()
	r := Report{
		Graph:           s.spec.Name,
		Frames:          stats.Frames,
		Rebuilds:        stats.Rebuilds,
		PhysicalPasses:  stats.PhysicalPasses,
		Images:          stats.Images,
		Pipelines:       stats.Pipelines,
		DescriptorPools: stats.DescriptorPools,
		Draws:           stats.Recorder.Draws,
		PipelineBinds:   stats.Recorder.PipelineBinds,
		SetBinds:        stats.Recorder.SetBinds,
		Submits:         counters.Submits,
		Presents:        s.surface.Presents(),
	}
	if asJSON {
		enc := json.NewEncoder(a.out)
		return enc.Encode(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf("graph %q: %d frames, %d rebuilds, %d physical passes", r.Graph, r.Frames, r.Rebuilds, r.PhysicalPasses)))
	fmt.Fprintf(&b, "  images:           %d created, %d reused\n", r.Images.Created, r.Images.Reused)
	fmt.Fprintf(&b, "  pipelines:        %d created, %d reused\n", r.Pipelines.Created, r.Pipelines.Reused)
	fmt.Fprintf(&b, "  descriptor pools: %d pools, %d sets\n", r.DescriptorPools.Pools, r.DescriptorPools.Sets)
	fmt.Fprintf(&b, "  last frame:       %d draws, %d pipeline binds, %d set binds\n", r.Draws, r.PipelineBinds, r.SetBinds)
	fmt.Fprintf(&b, "  submits:          %d, presents: %d\n", r.Submits, r.Presents)
	_, err := io.WriteString(a.out, b.String())
	return err
}

// watch runs the graph, then reruns it after every debounced change of the graph file.
// A failing run is logged and the loop keeps waiting for the next change.
func (a *App) watch(ctx context.Context, opts RunOptions, store ports.PipelineStore) error {
	if a.watcher == nil {
		return zerr.New("watching requires a file watcher")
	}
	g, ctx := errgroup.WithContext(ctx)
	if err := a.watcher.Start(ctx, opts.Path); err != nil {
		return err
	}

	reload := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		a.logger.Debug("graph file events", "paths", paths)
		select {
		case reload <- struct{}{}:
		default:
		}
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		defer func() { _ = a.watcher.Stop() }()
		for {
			if err := a.runOnce(ctx, opts, store); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
			a.logger.Info("watching for changes", "path", opts.Path)
			select {
			case <-ctx.Done():
				debouncer.Flush()
				return nil
			case <-reload:
				a.logger.Info("graph file changed, reloading", "path", opts.Path)
			}
		}
	})

	return g.Wait()
}
