package cnf

import "fmt"

// Maximum number of variables accepted by EnumerateAssignments. The
// enumerator counts assignments with an int64, and 2^62 of them is already
// far past anything a backtracking matcher will chew through.
const MaxEnumVariables = 62

// Enumerator produces every assignment over a fixed number of variables in
// ascending binary order, with 'F' as the 0 bit, 'T' as the 1 bit, and
// variable 1 as the most significant bit. Each call to Next returns a fresh
// string; the sequence contains exactly 2^numVars elements and does not
// repeat. Separate enumerators share no state.
type Enumerator struct {
	numVars int
	next    int64
	count   int64
}

// EnumerateAssignments returns an enumerator over all 2^numVars assignments.
// numVars must be in [1, MaxEnumVariables].
func EnumerateAssignments(numVars int) (*Enumerator, error) {
	if numVars < 1 || numVars > MaxEnumVariables {
		return nil, fmt.Errorf("%w: number of variables must be in [1, %d], got %d", ErrInvalidFormula, MaxEnumVariables, numVars)
	}
	return &Enumerator{
		numVars: numVars,
		next:    0,
		count:   1 << numVars,
	}, nil
}

// Next returns the next assignment in the sequence. It returns ("", false)
// once the sequence is exhausted.
func (e *Enumerator) Next() (string, bool) {
	if e.next == e.count {
		return "", false
	}
	a := formatAssignment(e.next, e.numVars)
	e.next++
	return a, true
}

// Reset restarts the enumerator from the first assignment.
func (e *Enumerator) Reset() {
	e.next = 0
}

// formatAssignment writes i in binary using exactly numVars digits, with
// 'F' for 0 and 'T' for 1.
func formatAssignment(i int64, numVars int) string {
	buf := make([]byte, numVars)
	for k := 0; k < numVars; k++ {
		if i&(1<<(numVars-1-k)) != 0 {
			buf[k] = 'T'
		} else {
			buf[k] = 'F'
		}
	}
	return string(buf)
}

// AssignmentString converts a model, as returned by parsers.ReadModels, into
// its assignment string. For example, model [true, false, false] results in
// string "TFF".
func AssignmentString(model []bool) string {
	buf := make([]byte, len(model))
	for i, b := range model {
		if b {
			buf[i] = 'T'
		} else {
			buf[i] = 'F'
		}
	}
	return string(buf)
}
