// Package parsers reads DIMACS CNF instance files and model files.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/rexsat/rexsat/cnf"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file and returns its formula. The
// returned formula is validated.
func LoadDIMACS(filename string, gzipped bool) (*cnf.Formula, error) {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &builder{formula: &cnf.Formula{}}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}
	if err := b.formula.Validate(); err != nil {
		return nil, err
	}
	return b.formula, nil
}

// builder accumulates a formula to implement dimacs.Builder.
type builder struct {
	formula *cnf.Formula
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.formula.Variables = nVars
	b.formula.Clauses = make([]cnf.Clause, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make(cnf.Clause, len(tmpClause))
	copy(clause, tmpClause)
	b.formula.Clauses = append(b.formula.Clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// file. Model files contain one model per line, written with the same
// literal syntax as the corresponding instance file.
func ReadModels(filename string) ([][]bool, error) {
	reader, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}

	return b.models, nil
}

// modelBuilder accumulates models to implement dimacs.Builder.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
