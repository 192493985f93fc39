package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kr/pretty"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

const defaultExpr = "((2.33 / (2.9+3.5)*4) - -6)"

var (
	flStrict = flag.Bool("strict", false, "Fail on malformed input instead of repairing it")
	flAST    = flag.Bool("ast", false, "Dump the parsed tree")
)

func run(expr string, opts []parser.Option) error {
	if *flAST {
		tokens, err := lexer.Tokenize(expr)
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}
		tree, err := parser.Parse(tokens, opts...)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		pretty.Println(tree)
	}

	result, err := evaluator.Evaluate(expr, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("%s=%v\n", expr, result)
	return nil
}

func main() {
	flag.Parse()

	var opts []parser.Option
	if *flStrict {
		opts = append(opts, parser.Strict())
	}

	exprs := flag.Args()
	if len(exprs) == 0 {
		exprs = []string{defaultExpr}
	}

	exitCode := 0
	for _, expr := range exprs {
		if err := run(expr, opts); err != nil {
			log.Printf("Evaluate %q: %s.", expr, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
