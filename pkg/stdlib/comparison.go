package stdlib

import "github.com/arborlang/arbor/pkg/value"

func numCompare(name string, x, y value.Value) (int, error) {
	if err := checkNums(name, x, y); err != nil {
		return 0, err
	}
	if xi, ok := x.(value.Integer); ok {
		if yi, ok := y.(value.Integer); ok {
			return xi.V.Cmp(yi.V), nil
		}
	}
	xf, yf := asFloat(x), asFloat(y)
	switch {
	case xf < yf:
		return -1, nil
	case xf > yf:
		return 1, nil
	default:
		return 0, nil
	}
}

func numericEq(x, y value.Value) (value.Value, error) {
	c, err := numCompare("=", x, y)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c == 0), nil
}

func lessThan(x, y value.Value) (value.Value, error) {
	c, err := numCompare("<", x, y)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c < 0), nil
}

func greaterThan(x, y value.Value) (value.Value, error) {
	c, err := numCompare(">", x, y)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c > 0), nil
}

func lessEqual(x, y value.Value) (value.Value, error) {
	c, err := numCompare("<=", x, y)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c <= 0), nil
}

func greaterEqual(x, y value.Value) (value.Value, error) {
	c, err := numCompare(">=", x, y)
	if err != nil {
		return nil, err
	}
	return value.Boolean(c >= 0), nil
}
