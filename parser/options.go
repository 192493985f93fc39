package parser

// Option configures the parser.
type Option func(*parser)

// Strict makes malformed input an error instead of repairing it. A missing
// operand, an unclosed parenthesis or a trailing token yields a
// *SyntaxError. Well-formed input parses to the same tree in both modes.
func Strict() Option {
	return func(p *parser) { p.strict = true }
}
