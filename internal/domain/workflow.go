// Package domain contains the inject-DUT-hierarchy transform and its driver.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mouse-blink/hierwrap/internal/adapter"
	"github.com/mouse-blink/hierwrap/internal/controller"
	m "github.com/mouse-blink/hierwrap/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Transform failure kinds. All abort the run for the affected design; none is
// retried. Directive problems are detected before any mutation begins.
var (
	// ErrMalformedDirective reports a directive without its required 'name' field.
	ErrMalformedDirective = errors.New("inject-hierarchy directive did not contain a 'name' field")
	// ErrDuplicateDirective reports more than one directive on a single design.
	ErrDuplicateDirective = errors.New("multiple inject-hierarchy directives when at most one is allowed")
	// ErrMissingDUT reports a directive on a design with no module marked as DUT.
	ErrMissingDUT = errors.New("inject-hierarchy directive present but no module is marked as the DUT")
)

// TransformArgs configures a batch transform run.
type TransformArgs struct {
	Paths   []m.Path // design files or directories to scan
	OutDir  m.Path   // when set, write results here instead of in place
	Threads int      // worker bound for the batch; each design stays single-threaded
}

// ListArgs configures the list operation.
type ListArgs struct {
	Paths []m.Path
}

// ViewArgs configures the hierarchy view operation.
type ViewArgs struct {
	Design m.Path
}

// Workflow defines the operations offered by the tool.
type Workflow interface {
	// Transform applies the inject-DUT-hierarchy transform to one circuit in
	// place. It is strictly sequential and not atomic: on failure past the
	// pre-flight directive checks, structural edits already applied are not
	// rolled back.
	Transform(c *m.Circuit) (m.Report, error)
	Run(args TransformArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	store adapter.DesignStore
	fs    adapter.DesignFSAdapter
	ui    controller.UI
	log   *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(store adapter.DesignStore, fs adapter.DesignFSAdapter, ui controller.UI, log *zap.Logger) Workflow {
	return &workflow{store: store, fs: fs, ui: ui, log: log}
}

// directive is the parsed configuration entry point of the transform.
type directive struct {
	wrapperName string
	moveDut     bool
}

// parseDirective reads the zero-or-one inject-hierarchy directive from the
// circuit's annotations. The directive itself is left in place: downstream
// extraction tooling keys off it too.
func parseDirective(c *m.Circuit) (*directive, error) {
	var (
		dir  *directive
		errs []error
	)

	for _, a := range c.Annotations {
		if !a.IsClass(m.InjectHierarchyClass) {
			continue
		}

		name, ok := a.StringField("name")
		if !ok || name == "" {
			errs = append(errs, fmt.Errorf("circuit %q: %w", c.Name, ErrMalformedDirective))
			continue
		}

		if dir != nil {
			errs = append(errs, fmt.Errorf("circuit %q: %w", c.Name, ErrDuplicateDirective))
			continue
		}

		dir = &directive{wrapperName: name}
		if moveDut, ok := a.BoolField("moveDut"); ok {
			dir.moveDut = moveDut
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return dir, nil
}

func (w *workflow) Transform(c *m.Circuit) (m.Report, error) {
	dir, err := parseDirective(c)
	if err != nil {
		return m.Report{Err: err}, err
	}

	// No directive: nothing to do, and every prior analysis remains valid.
	if dir == nil {
		w.log.Debug("no inject-hierarchy directive, design left unchanged",
			zap.String("circuit", c.Name))

		return m.Report{Changed: false}, nil
	}

	dut := FindDUT(c)
	if dut == nil {
		err := fmt.Errorf("circuit %q: %w", c.Name, ErrMissingDUT)
		return m.Report{Err: err}, err
	}

	w.log.Debug("injecting hierarchy above DUT",
		zap.String("circuit", c.Name),
		zap.String("dut", dut.Name),
		zap.String("wrapper", dir.wrapperName),
		zap.Bool("moveDut", dir.moveDut))

	circuitNS := NewCircuitNamespace(c)
	split := splitDUT(c, dut, circuitNS, dir.wrapperName, dir.moveDut)

	// The table is built after the rename: lookups key off the shell, which
	// holds the old DUT name that every pre-existing path still spells.
	table := NewPathTable(c)
	renames, stats := rewritePaths(c, table, split, circuitNS, w.log)

	retargetShellMetadata(split.Shell, renames)
	relocateLocalRefs(split.Wrapper)

	return m.Report{
		Changed:        true,
		Shell:          split.Shell.Name,
		Wrapper:        split.Wrapper.Name,
		PathsRewritten: stats.Rewritten,
		PathsCloned:    stats.Cloned,
	}, nil
}

// Run transforms every design found under args.Paths. Designs are independent
// of each other, so the batch is processed concurrently up to args.Threads; a
// failed design does not stop the rest.
func (w *workflow) Run(args TransformArgs) error {
	files, err := w.fs.Scan(args.Paths...)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	reports := make([]m.Report, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range files {
		g.Go(func() error {
			reports[i] = w.transformFile(file, args.OutDir)
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(reports, func(i, j int) bool { return reports[i].Design < reports[j].Design })

	if err := w.ui.DisplayReports(reports); err != nil {
		return err
	}

	failed := 0

	for _, r := range reports {
		if r.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d designs failed", failed, len(files))
	}

	return nil
}

func (w *workflow) transformFile(file m.Path, outDir m.Path) m.Report {
	c, err := w.store.Load(file)
	if err != nil {
		return m.Report{Design: file, Err: err}
	}

	report, err := w.Transform(c)
	report.Design = file

	if err != nil {
		w.log.Error("transform failed", zap.String("design", string(file)), zap.Error(err))
		return report
	}

	target := file
	if outDir != "" {
		target = m.Path(filepath.Join(string(outDir), filepath.Base(string(file))))
	}

	// The no-op fast path leaves the design file byte-for-byte alone.
	if !report.Changed && target == file {
		return report
	}

	if err := w.store.Save(target, c); err != nil {
		report.Err = err
	}

	return report
}

func (w *workflow) List(args ListArgs) error {
	files, err := w.fs.Scan(args.Paths...)
	if err != nil {
		return err
	}

	for _, file := range files {
		c, err := w.store.Load(file)
		if err != nil {
			return err
		}

		if err := w.ui.DisplayModules(c); err != nil {
			return err
		}

		if err := w.ui.DisplayPaths(c); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) View(args ViewArgs) error {
	c, err := w.store.Load(args.Design)
	if err != nil {
		return err
	}

	return w.ui.DisplayHierarchy(c)
}
