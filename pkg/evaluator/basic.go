package evaluator

import "github.com/arborlang/arbor/pkg/value"

// doQuote implements (quote expr): expr is returned exactly as written,
// never evaluated.
func doQuote(operands value.Value, env value.Environment) (value.Value, error) {
	items, err := operandSlice("quote", operands)
	if err != nil {
		return nil, err
	}
	if err := requireArity("quote", len(items), 1, 1); err != nil {
		return nil, err
	}
	return items[0], nil
}
