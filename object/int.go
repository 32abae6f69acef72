package object

import (
	"encoding/json"
	"fmt"

	"github.com/deepnoodle-ai/byteobj/op"
)

// Int wraps an int64. Small values are shared.
type Int struct {
	value int64
}

const (
	tableMin = -10
	tableMax = 255
)

var intCache = func() []*Int {
	cache := make([]*Int, tableMax-tableMin+1)
	for i := range cache {
		cache[i] = &Int{value: int64(i + tableMin)}
	}
	return cache
}()

// NewInt returns an Int holding value.
func NewInt(value int64) *Int {
	if value >= tableMin && value <= tableMax {
		return intCache[value-tableMin]
	}
	return &Int{value: value}
}

func (i *Int) Type() Type {
	return INT
}

func (i *Int) Class() *Class {
	return intClass
}

func (i *Int) Value() int64 {
	return i.value
}

func (i *Int) Inspect() string {
	return fmt.Sprintf("%d", i.value)
}

func (i *Int) String() string {
	return i.Inspect()
}

func (i *Int) Interface() interface{} {
	return i.value
}

func (i *Int) Equals(other Object) bool {
	o, ok := other.(*Int)
	return ok && o.value == i.value
}

func (i *Int) IsTruthy() bool {
	return i.value != 0
}

func (i *Int) Hash() int64 {
	return i.value
}

// RichCompare implements RichComparer. Only Ints are comparable.
func (i *Int) RichCompare(cop op.CompareOpType, other Object) CompareResult {
	o, ok := other.(*Int)
	if !ok {
		return NotApplicable
	}
	var cmp int
	switch {
	case i.value < o.value:
		cmp = -1
	case i.value > o.value:
		cmp = 1
	}
	return Applicable(cop.Evaluate(cmp))
}

func (i *Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}
