// Package op defines the comparison operators understood by the host
// dispatcher and the operation names they dispatch to.
package op

// CompareOpType describes a type of comparison operation. For example, less
// than, greater than, equal, etc.
type CompareOpType uint16

const (
	LessThan           CompareOpType = 1
	LessThanOrEqual    CompareOpType = 2
	Equal              CompareOpType = 3
	NotEqual           CompareOpType = 4
	GreaterThan        CompareOpType = 5
	GreaterThanOrEqual CompareOpType = 6
)

// String returns a string representation of the comparison operation.
// For example "<" for less than.
func (cop CompareOpType) String() string {
	switch cop {
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return ""
	}
}

// Operation returns the name of the class operation implementing cop,
// e.g. "lt" for LessThan.
func (cop CompareOpType) Operation() string {
	switch cop {
	case LessThan:
		return "lt"
	case LessThanOrEqual:
		return "le"
	case Equal:
		return "eq"
	case NotEqual:
		return "ne"
	case GreaterThan:
		return "gt"
	case GreaterThanOrEqual:
		return "ge"
	default:
		return ""
	}
}

// Reflect returns the operator to try on the right-hand operand when the
// left-hand operand does not support cop. a < b is retried as b > a.
func (cop CompareOpType) Reflect() CompareOpType {
	switch cop {
	case LessThan:
		return GreaterThan
	case LessThanOrEqual:
		return GreaterThanOrEqual
	case GreaterThan:
		return LessThan
	case GreaterThanOrEqual:
		return LessThanOrEqual
	default:
		return cop
	}
}

// IsOrdering returns true for <, <=, > and >=.
func (cop CompareOpType) IsOrdering() bool {
	switch cop {
	case LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual:
		return true
	}
	return false
}

// Evaluate converts a three-way comparison result into the boolean outcome
// of cop.
func (cop CompareOpType) Evaluate(cmp int) bool {
	switch cop {
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	case Equal:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	default:
		return false
	}
}

// CompareOps lists every comparison operator.
var CompareOps = []CompareOpType{
	LessThan,
	LessThanOrEqual,
	Equal,
	NotEqual,
	GreaterThan,
	GreaterThanOrEqual,
}
