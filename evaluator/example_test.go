package evaluator_test

import (
	"fmt"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
)

func ExampleEvaluate() {
	fmt.Println(evaluator.Evaluate("2+3*4"))
	fmt.Println(evaluator.Evaluate("10-3-2"))
	fmt.Println(evaluator.Evaluate("(1+2"))
	fmt.Println(evaluator.Evaluate("(1+2", parser.Strict()))
	fmt.Println(evaluator.Evaluate("1.2.3"))

	// Output:
	// 14 <nil>
	// 5 <nil>
	// 3 <nil>
	// 0 parse: syntax error at 4: expected [PAREN_RIGHT] but got EOF
	// 0 tokenize: invalid number "1.2.3" at 0: strconv.ParseFloat: parsing "1.2.3": invalid syntax
}
