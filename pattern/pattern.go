// Package pattern reduces CNF satisfiability checking to a single regex
// match. Build compiles a formula into a pattern with one capturing group
// per variable and one back-referencing alternation group per clause, such
// that the pattern matches the probe string of an assignment if and only if
// the assignment satisfies every clause.
//
// The technique requires a backtracking engine with numbered captures,
// back-references, and lookahead. Go's standard regexp package is RE2-based
// and supports none of these; the default engine here is
// github.com/dlclark/regexp2.
package pattern

import (
	"fmt"
	"strings"

	"github.com/rexsat/rexsat/cnf"
)

// marker is the two-character token a satisfied clause group must produce.
// Given the captured assignment, a positive literal v contributes the
// alternative `F\v` (equals "FT" iff variable v captured "T") and a negative
// literal v contributes `\vT` (equals "FT" iff variable v captured "F").
const marker = "FT"

// Build returns the pattern text for the given formula. The text has three
// parts, concatenated:
//
//  1. an anchored capture prefix `^(F|T)(F|T)...;` binding group k to the
//     truth value of variable k,
//  2. a lookahead `(?=FT,FT,...,FT$)` requiring the rest of the probe to be
//     exactly one comma-separated marker per clause, so that probes with
//     too few or too many markers never match regardless of assignment,
//  3. one non-capturing group per clause, comma-joined in clause order,
//     alternating over the clause's literals.
//
// For example, the formula with 3 variables and clauses
// [[1 2 -3] [1 -2 3] [-1 -2 3] [-1 -2 -3]] builds the pattern
//
//	^(F|T)(F|T)(F|T);(?=FT,FT,FT,FT$)(?:F\1|F\2|\3T),(?:F\1|\2T|F\3),(?:\1T|\2T|F\3),(?:\1T|\2T|\3T)
//
// which matches "TFT;FT,FT,FT,FT" but not "TTT;FT,FT,FT,FT".
//
// The output is a deterministic function of the input: structurally equal
// formulas produce byte-identical text. Clauses are emitted as given, so
// duplicated or tautological clauses each contribute their own group.
// Build fails with cnf.ErrInvalidFormula if the formula's invariants do not
// hold.
func Build(numVars int, clauses []cnf.Clause) (string, error) {
	f := cnf.Formula{Variables: numVars, Clauses: clauses}
	if err := f.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < numVars; i++ {
		b.WriteString("(F|T)")
	}
	b.WriteByte(';')

	b.WriteString("(?=")
	for i := range clauses {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(marker)
	}
	b.WriteString("$)")

	for i, c := range clauses {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("(?:")
		for j, l := range c {
			if j > 0 {
				b.WriteByte('|')
			}
			if l < 0 {
				fmt.Fprintf(&b, `\%dT`, -l)
			} else {
				fmt.Fprintf(&b, `F\%d`, l)
			}
		}
		b.WriteByte(')')
	}

	return b.String(), nil
}

// Probe returns the string the pattern is matched against: the assignment,
// a ';' separator, and one "FT" marker per clause, comma-separated. This
// format is the one boundary contract shared with Build and must not
// change independently of it.
func Probe(assignment string, numClauses int) string {
	var b strings.Builder
	b.Grow(len(assignment) + 1 + 3*numClauses)
	b.WriteString(assignment)
	b.WriteByte(';')
	for i := 0; i < numClauses; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(marker)
	}
	return b.String()
}

// CheckSAT reports whether the assignment satisfies the formula whose
// pattern was compiled into m. numClauses must be the clause count of that
// same formula; use a Checker to keep the two bound together.
func CheckSAT(assignment string, m Matcher, numClauses int) (bool, error) {
	return m.MatchString(Probe(assignment, numClauses))
}
