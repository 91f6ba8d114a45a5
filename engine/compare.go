package engine

import "github.com/vegasq/csvql/query"

// tryCompare evaluates cell <operator> operand. ok is false when the
// row cannot participate in the comparison at all: a null cell, a cell
// with no numeric reading against a numeric operand, or an operator
// the operand kind does not support. A not-ok comparison filters the
// row, it never aborts the query.
func tryCompare(cell Value, operator query.TokenType, operand query.Literal) (match, ok bool) {
	if cell.IsNull() {
		return false, false
	}

	if operand.Kind == query.LiteralNumber {
		left, ok := cell.AsFloat()
		if !ok {
			return false, false
		}
		return compareFloats(left, operator, operand.Num)
	}

	// text operand: both sides compare as their string forms
	return compareStrings(cell.String(), operator, operand.Text)
}

// compareFloats compares two numbers
func compareFloats(left float64, operator query.TokenType, right float64) (bool, bool) {
	switch operator {
	case query.TokenEqual:
		return left == right, true
	case query.TokenNotEqual:
		return left != right, true
	case query.TokenLess:
		return left < right, true
	case query.TokenGreater:
		return left > right, true
	case query.TokenLessEqual:
		return left <= right, true
	case query.TokenGreaterEqual:
		return left >= right, true
	default:
		return false, false
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator query.TokenType, right string) (bool, bool) {
	switch operator {
	case query.TokenEqual:
		return left == right, true
	case query.TokenNotEqual:
		return left != right, true
	case query.TokenLess:
		return left < right, true
	case query.TokenGreater:
		return left > right, true
	case query.TokenLessEqual:
		return left <= right, true
	case query.TokenGreaterEqual:
		return left >= right, true
	default:
		return false, false
	}
}
