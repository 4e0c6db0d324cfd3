// Package value implements SmartQuery's runtime value type: a tagged union
// of null, boolean, decimal number, string, list, map, slice descriptor,
// and callable (§3.1).
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
	KindSlice
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindSlice:
		return "slice"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// Callable is a host function, intrinsic, or compiled lambda closure. All
// three inhabit this single variant so the evaluator has one call path
// (§9 "Callables unified with values").
type Callable func(args []Value) (Value, error)

// Slice is the (start?, stop?, step?) descriptor produced by slice syntax;
// each field is an integer or absent.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// listBox holds list storage behind a pointer so that every Value copy
// sharing one list (assigned to multiple names, or the same name read
// multiple times within one expression) observes push/pop/insert/remove
// the way Python's mutable list objects do. DeepCopy is what severs this
// sharing on store (§3.5 invariant (d)) — without the indirection, Go's
// by-value slice header would let push silently fail to grow a list held
// under a second name.
type listBox struct {
	items []Value
}

// Value is SmartQuery's dynamically-typed runtime value.
type Value struct {
	Kind Kind
	b    bool
	n    decimal.Decimal
	s    string
	list *listBox
	m    *Map
	sl   Slice
	call Callable
}

func Null() Value                    { return Value{Kind: KindNull} }
func Bool(b bool) Value              { return Value{Kind: KindBool, b: b} }
func Number(d decimal.Decimal) Value  { return Value{Kind: KindNumber, n: d} }
func String(s string) Value          { return Value{Kind: KindString, s: s} }
func List(items []Value) Value       { return Value{Kind: KindList, list: &listBox{items: items}} }
func MapVal(m *Map) Value            { return Value{Kind: KindMap, m: m} }
func SliceVal(s Slice) Value         { return Value{Kind: KindSlice, sl: s} }
func Func(c Callable) Value          { return Value{Kind: KindCallable, call: c} }

func (v Value) IsNull() bool     { return v.Kind == KindNull }
func (v Value) Bool() bool       { return v.b }
func (v Value) Number() decimal.Decimal { return v.n }
func (v Value) Str() string      { return v.s }
func (v Value) List() []Value {
	if v.list == nil {
		return nil
	}
	return v.list.items
}
func (v Value) Map() *Map        { return v.m }
func (v Value) SliceDescriptor() Slice { return v.sl }
func (v Value) Callable() Callable { return v.call }

// ListAppend grows the shared list in place (functions.py::_push).
func (v Value) ListAppend(x Value) { v.list.items = append(v.list.items, x) }

// ListSet overwrites index i in place.
func (v Value) ListSet(i int, x Value) { v.list.items[i] = x }

// ListInsert inserts x at index i, shifting later elements right
// (functions.py::_insert, Python list.insert clamps out-of-range i to the
// nearest end rather than erroring).
func (v Value) ListInsert(i int, x Value) {
	items := v.list.items
	if i < 0 {
		i = 0
	}
	if i > len(items) {
		i = len(items)
	}
	items = append(items, Value{})
	copy(items[i+1:], items[i:])
	items[i] = x
	v.list.items = items
}

// ListRemoveAt deletes the element at index i, shifting later elements
// left (functions.py::_remove / _pop).
func (v Value) ListRemoveAt(i int) {
	items := v.list.items
	v.list.items = append(items[:i], items[i+1:]...)
}

// TypeName is the human-readable type name used in error messages.
func (v Value) TypeName() string { return v.Kind.String() }

func (v Value) GoString() string {
	return fmt.Sprintf("Value{%s}", v.Kind)
}
