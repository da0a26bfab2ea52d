// Package cnf provides value types for propositional formulas in Conjunctive
// Normal Form, a direct brute-force evaluator, and an assignment enumerator.
//
// Variables are identified by 1-based indices. A literal is a nonzero integer
// whose magnitude is the variable index and whose sign encodes polarity: -3
// is the negation of variable 3. Assignments are strings over the alphabet
// {'F', 'T'} where position i (0-based) gives the truth value of variable
// i+1.
package cnf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormula indicates a malformed formula: no variable, no
	// clause, an empty clause, a zero literal, or a literal referencing a
	// variable outside [1, Variables].
	ErrInvalidFormula = errors.New("cnf: invalid formula")

	// ErrLengthMismatch indicates an assignment whose length differs from
	// the formula's number of variables, or which contains a byte other
	// than 'F' or 'T'.
	ErrLengthMismatch = errors.New("cnf: invalid assignment")
)

// Clause is a disjunction of literals. A clause is satisfied if at least one
// of its literals is true under the assignment.
type Clause []int

// Formula is a conjunction of clauses over variables 1..Variables. Formulas
// are plain values: once built they are never mutated, and structurally
// equal formulas are interchangeable everywhere in this module.
type Formula struct {
	Variables int
	Clauses   []Clause
}

// Validate verifies the formula's structural invariants. It returns an error
// wrapping ErrInvalidFormula describing the first violation found.
func (f *Formula) Validate() error {
	if f.Variables < 1 {
		return fmt.Errorf("%w: must have at least one variable, got %d", ErrInvalidFormula, f.Variables)
	}
	if len(f.Clauses) == 0 {
		return fmt.Errorf("%w: must have at least one clause", ErrInvalidFormula)
	}
	for i, c := range f.Clauses {
		if len(c) == 0 {
			return fmt.Errorf("%w: clause %d is empty", ErrInvalidFormula, i)
		}
		for _, l := range c {
			if l == 0 {
				return fmt.Errorf("%w: clause %d contains a zero literal", ErrInvalidFormula, i)
			}
			if v := abs(l); v > f.Variables {
				return fmt.Errorf("%w: clause %d references variable %d, formula has %d", ErrInvalidFormula, i, v, f.Variables)
			}
		}
	}
	return nil
}

// Eval reports whether the assignment satisfies every clause of the formula.
// It walks the clause and literal structures directly, without any pattern
// matching; the pattern package must agree with it on every input.
func (f *Formula) Eval(assignment string) (bool, error) {
	if err := CheckAssignment(assignment, f.Variables); err != nil {
		return false, err
	}
	for _, c := range f.Clauses {
		if !c.eval(assignment) {
			return false, nil
		}
	}
	return true, nil
}

// eval reports whether at least one literal is true under the assignment.
// The assignment must have been checked against the formula before.
func (c Clause) eval(assignment string) bool {
	for _, l := range c {
		value := assignment[abs(l)-1] == 'T'
		if value == (l > 0) {
			return true
		}
	}
	return false
}

// CheckAssignment verifies that assignment is a string of exactly numVars
// 'F' or 'T' bytes. It returns an error wrapping ErrLengthMismatch
// otherwise.
func CheckAssignment(assignment string, numVars int) error {
	if len(assignment) != numVars {
		return fmt.Errorf("%w: got %d values, formula has %d variables", ErrLengthMismatch, len(assignment), numVars)
	}
	for i := 0; i < len(assignment); i++ {
		if b := assignment[i]; b != 'F' && b != 'T' {
			return fmt.Errorf("%w: position %d is %q, want 'F' or 'T'", ErrLengthMismatch, i, assignment[i])
		}
	}
	return nil
}

func abs(l int) int {
	if l < 0 {
		return -l
	}
	return l
}
