// Package compiler drives an external knowledge compiler as a subprocess:
// it writes a formula out as DIMACS CNF, invokes the compiler binary, and
// parses the resulting d-DNNF back into a circuit.Circuit. No compilation
// happens in-process.
package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pkg/errors"

	"github.com/ML-KULeuven/amc-grad/pkg/circuit"
	"github.com/ML-KULeuven/amc-grad/pkg/formula"
)

// Solver names a supported external knowledge compiler binary.
type Solver string

const (
	D4       Solver = "d4"
	SharpSAT Solver = "sharpsat"
)

// ErrSharpSATUnsupported is returned by Compile when Solver is SharpSAT.
// The sharpSAT driver was never finished upstream (its subprocess wiring
// exists but the output-parsing half is missing), so rather than invent a
// parser against undocumented output this binding surfaces the gap
// explicitly instead of silently falling back to d4.
var ErrSharpSATUnsupported = errors.New("compiler: sharpsat support is incomplete upstream and is not wired up")

// Options configures Compile. The zero value is not valid; Compile builds
// its Options from the Option arguments it is given.
type Options struct {
	Solver     Solver
	SolverPath string
	KeepTemps  bool
}

// Option mutates Options.
type Option func(*Options)

// WithSolver selects which external compiler binary to invoke. Defaults to D4.
func WithSolver(s Solver) Option { return func(o *Options) { o.Solver = s } }

// WithSolverPath overrides the path to the solver binary. Defaults to the
// bare solver name, resolved against PATH.
func WithSolverPath(path string) Option { return func(o *Options) { o.SolverPath = path } }

// WithKeepTemps leaves the intermediate DIMACS/d-DNNF temp files on disk
// instead of removing them on return, useful when debugging a solver
// invocation by hand.
func WithKeepTemps() Option { return func(o *Options) { o.KeepTemps = true } }

func newOptions(opts []Option) Options {
	o := Options{Solver: D4}
	for _, apply := range opts {
		apply(&o)
	}
	if o.SolverPath == "" {
		o.SolverPath = string(o.Solver)
	}
	return o
}

// Compile simplifies node, Tseitin-transforms it into CNF over nbVars
// variables (short-circuiting the transform if node is already CNF),
// writes it to a scoped temp DIMACS file, invokes the configured external
// compiler, and parses its d-DNNF output into a flat Circuit. Temp files
// are cleaned up on every return path unless WithKeepTemps was given.
func Compile(node *formula.RNode, nbVars int, opts ...Option) (*circuit.Circuit, error) {
	o := newOptions(opts)

	cnf := formula.Tseitin(node.Simplify(), nbVars)
	dimacs, err := formula.ToDIMACS(cnf)
	if err != nil {
		return nil, errors.Wrap(err, "compiler: rendering DIMACS input")
	}

	dimacsFile, err := os.CreateTemp("", "amc-*.cnf")
	if err != nil {
		return nil, errors.Wrap(err, "compiler: creating DIMACS temp file")
	}
	defer cleanupTemp(dimacsFile.Name(), o.KeepTemps)

	if _, err := dimacsFile.WriteString(dimacs); err != nil {
		dimacsFile.Close()
		return nil, errors.Wrap(err, "compiler: writing DIMACS temp file")
	}
	if err := dimacsFile.Close(); err != nil {
		return nil, errors.Wrap(err, "compiler: closing DIMACS temp file")
	}

	nnfFile, err := os.CreateTemp("", "amc-*.nnf")
	if err != nil {
		return nil, errors.Wrap(err, "compiler: creating d-DNNF temp file")
	}
	nnfPath := nnfFile.Name()
	nnfFile.Close()
	defer cleanupTemp(nnfPath, o.KeepTemps)

	switch o.Solver {
	case D4:
		return compileD4(o.SolverPath, dimacsFile.Name(), nnfPath)
	case SharpSAT:
		return nil, ErrSharpSATUnsupported
	default:
		return nil, errors.Errorf("compiler: unsupported solver %q", o.Solver)
	}
}

func compileD4(solverPath, dimacsPath, nnfPath string) (*circuit.Circuit, error) {
	log.Debugf("Compile d4   -- BEGIN %s", dimacsPath)

	cmd := exec.Command(solverPath, "-dDNNF", dimacsPath, fmt.Sprintf("-out=%s", nnfPath))
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Debugf("Compile d4   -- ERROR %s : %s", dimacsPath, strings.TrimSpace(string(out)))
		return nil, errors.Wrapf(err, "compiler: running d4 (output: %s)", strings.TrimSpace(string(out)))
	}

	f, err := os.Open(nnfPath)
	if err != nil {
		return nil, errors.Wrap(err, "compiler: opening d4 output")
	}
	defer f.Close()

	c, err := circuit.ParseDDNNF(f)
	if err != nil {
		log.Debugf("Compile d4   -- ERROR %s : parse error=%s", dimacsPath, err)
		return nil, errors.Wrap(err, "compiler: parsing d4 output")
	}
	log.Debugf("Compile d4   -- OK    %s", dimacsPath)
	return c, nil
}

func cleanupTemp(path string, keep bool) {
	if keep {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Debugf("Compile      -- WARN  could not remove temp file %s: %s", path, err)
	}
}
