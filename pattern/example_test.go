package pattern_test

import (
	"fmt"

	"github.com/rexsat/rexsat/cnf"
	"github.com/rexsat/rexsat/pattern"
)

func ExampleBuild() {
	// (x1 v x2 v !x3) ^ (x1 v !x2 v x3) ^ (!x1 v !x2 v x3) ^ (!x1 v !x2 v !x3)
	clauses := []cnf.Clause{
		{1, 2, -3},
		{1, -2, 3},
		{-1, -2, 3},
		{-1, -2, -3},
	}

	text, _ := pattern.Build(3, clauses)
	fmt.Println(text)

	// Output:
	// ^(F|T)(F|T)(F|T);(?=FT,FT,FT,FT$)(?:F\1|F\2|\3T),(?:F\1|\2T|F\3),(?:\1T|\2T|F\3),(?:\1T|\2T|\3T)
}

func ExampleChecker_Check() {
	f := &cnf.Formula{
		Variables: 3,
		Clauses: []cnf.Clause{
			{1, 2, -3},
			{1, -2, 3},
			{-1, -2, 3},
			{-1, -2, -3},
		},
	}

	checker, err := pattern.NewChecker(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	enum, _ := cnf.EnumerateAssignments(f.Variables)
	for a, ok := enum.Next(); ok; a, ok = enum.Next() {
		sat, err := checker.Check(a)
		if err != nil {
			fmt.Println(err)
			return
		}
		if sat {
			fmt.Printf("%s\tSAT\n", a)
		} else {
			fmt.Printf("%s\tUNSAT\n", a)
		}
	}

	// Output:
	// FFF	SAT
	// FFT	UNSAT
	// FTF	UNSAT
	// FTT	SAT
	// TFF	SAT
	// TFT	SAT
	// TTF	UNSAT
	// TTT	UNSAT
}
