package evaluator_test

import (
	"math"
	"testing"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
)

func FuzzEvaluate(f *testing.F) {
	f.Add(referenceExpr)
	f.Add("(1+2")
	f.Add("1+2)")
	f.Add("1.2.3")
	f.Add("--+-.5*/")
	f.Add("((((")
	f.Fuzz(func(t *testing.T, s string) {
		permissive, err := evaluator.Evaluate(s)
		if err != nil {
			return
		}
		// Whatever strict mode accepts, it evaluates like permissive mode.
		strict, err := evaluator.Evaluate(s, parser.Strict())
		if err != nil {
			return
		}
		if math.IsNaN(strict) && math.IsNaN(permissive) {
			return
		}
		if strict != permissive {
			t.Fatalf("strict %v != permissive %v for %q", strict, permissive, s)
		}
	})
}
