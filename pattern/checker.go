package pattern

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/rexsat/rexsat/cnf"
)

// ErrUnsupportedEngine indicates that a matching engine cannot run the
// patterns this package builds, because it lacks numbered back-references
// or lookahead assertions. The error is reported at compile time, never as
// a wrong match result.
var ErrUnsupportedEngine = errors.New("pattern: matching engine lacks back-reference or lookahead support")

// Matcher is a compiled pattern. MatchString reports whether s matches;
// patterns built by this package are anchored, so no search semantics are
// required beyond matching at the start of s.
type Matcher interface {
	MatchString(s string) (bool, error)
}

// Engine compiles pattern text into a Matcher.
type Engine interface {
	Compile(pattern string) (Matcher, error)
}

// Options configures a Checker.
type Options struct {
	// Engine used to compile the pattern. Leave nil to use the regexp2
	// backtracking engine.
	Engine Engine

	// MatchTimeout bounds the time a single match may spend backtracking.
	// Matching is exponential in the worst case, so callers running large
	// formulas should set an explicit budget here. Zero means no bound.
	// Only honored by the default engine.
	MatchTimeout time.Duration
}

// DefaultOptions are the options used by NewChecker.
var DefaultOptions = Options{
	Engine:       nil,
	MatchTimeout: 0,
}

// regexp2Engine is the default Engine.
type regexp2Engine struct {
	matchTimeout time.Duration
}

func (e regexp2Engine) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("pattern: compiling %q: %w", pattern, err)
	}
	if e.matchTimeout > 0 {
		re.MatchTimeout = e.matchTimeout
	}
	return re, nil
}

// VerifyEngine checks that the engine supports the constructs Build relies
// on: numbered capturing groups, back-references, and lookahead assertions.
// It compiles a small canary pattern and matches it against probes with
// known outcomes, and returns an error wrapping ErrUnsupportedEngine if the
// engine rejects the pattern or misclassifies a probe.
func VerifyEngine(e Engine) error {
	// Unit formula over one variable: variable 1 must be T, and the
	// lookahead must reject a probe with a trailing extra marker.
	const canary = `^(F|T);(?=FT$)F\1`
	m, err := e.Compile(canary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedEngine, err)
	}
	for _, tt := range []struct {
		probe string
		want  bool
	}{
		{"T;FT", true},
		{"F;FT", false},
		{"T;FT,FT", false},
	} {
		got, err := m.MatchString(tt.probe)
		if err != nil {
			return fmt.Errorf("%w: matching %q: %v", ErrUnsupportedEngine, tt.probe, err)
		}
		if got != tt.want {
			return fmt.Errorf("%w: probe %q matched %v, want %v", ErrUnsupportedEngine, tt.probe, got, tt.want)
		}
	}
	return nil
}

// Checker binds a compiled pattern to the variable and clause counts of the
// formula it was built from, so that probes are always well-formed for that
// very pattern. A Checker is immutable and safe for concurrent use as long
// as the engine's matchers are reentrant (regexp2's are).
type Checker struct {
	matcher    Matcher
	pattern    string
	numVars    int
	numClauses int
}

// NewChecker builds, verifies, and compiles the pattern for the given
// formula using DefaultOptions.
func NewChecker(f *cnf.Formula) (*Checker, error) {
	return NewCheckerOptions(f, DefaultOptions)
}

// NewCheckerOptions is like NewChecker with explicit options. All failure
// modes, including an engine that cannot run the generated patterns, are
// reported here rather than at Check time.
func NewCheckerOptions(f *cnf.Formula, options Options) (*Checker, error) {
	text, err := Build(f.Variables, f.Clauses)
	if err != nil {
		return nil, err
	}
	engine := options.Engine
	if engine == nil {
		engine = regexp2Engine{matchTimeout: options.MatchTimeout}
	}
	if err := VerifyEngine(engine); err != nil {
		return nil, err
	}
	m, err := engine.Compile(text)
	if err != nil {
		return nil, err
	}
	return &Checker{
		matcher:    m,
		pattern:    text,
		numVars:    f.Variables,
		numClauses: len(f.Clauses),
	}, nil
}

// Pattern returns the pattern text the checker was compiled from, so that
// callers can feed it to a matching capability of their own.
func (c *Checker) Pattern() string {
	return c.pattern
}

// Check reports whether the assignment satisfies the checker's formula. It
// fails with cnf.ErrLengthMismatch before any matching is attempted if the
// assignment does not have exactly one 'F' or 'T' per variable.
func (c *Checker) Check(assignment string) (bool, error) {
	if err := cnf.CheckAssignment(assignment, c.numVars); err != nil {
		return false, err
	}
	return CheckSAT(assignment, c.matcher, c.numClauses)
}
