package cnf_test

import (
	"fmt"

	"github.com/rexsat/rexsat/cnf"
)

func ExampleEnumerateAssignments() {
	e, _ := cnf.EnumerateAssignments(2)
	for a, ok := e.Next(); ok; a, ok = e.Next() {
		fmt.Println(a)
	}

	// Output:
	// FF
	// FT
	// TF
	// TT
}

func ExampleFormula_Eval() {
	// (x1 v !x2) ^ (x2 v x3)
	f := &cnf.Formula{
		Variables: 3,
		Clauses:   []cnf.Clause{{1, -2}, {2, 3}},
	}

	sat, _ := f.Eval("TFT")
	fmt.Println(sat)
	sat, _ = f.Eval("FTF")
	fmt.Println(sat)

	// Output:
	// true
	// false
}
