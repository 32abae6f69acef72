package object

import (
	"encoding/json"
	"strconv"

	"github.com/deepnoodle-ai/byteobj/internal/bytesx"
	"github.com/deepnoodle-ai/byteobj/op"
)

// String is text. It becomes bytes only through an explicit encoding.
type String struct {
	value string
}

func NewString(s string) *String {
	return &String{value: s}
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Class() *Class {
	return stringClass
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	return strconv.Quote(s.value)
}

func (s *String) String() string {
	return s.value
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) Equals(other Object) bool {
	o, ok := other.(*String)
	return ok && o.value == s.value
}

func (s *String) IsTruthy() bool {
	return s.value != ""
}

func (s *String) Len() *Int {
	return NewInt(int64(len([]rune(s.value))))
}

func (s *String) Hash() int64 {
	return bytesx.Hash(s.value)
}

// RichCompare implements RichComparer. Only Strings are comparable.
func (s *String) RichCompare(cop op.CompareOpType, other Object) CompareResult {
	o, ok := other.(*String)
	if !ok {
		return NotApplicable
	}
	return Applicable(cop.Evaluate(bytesx.Compare(s.value, o.value)))
}

func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
