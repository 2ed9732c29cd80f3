package entity

import "encoding/json"

// Optional is a payload field that remembers whether it was present at all.
// A JSON null is present (Set) with Null reported.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Assignment is one column = value pair of a partial update, named by its store column.
type Assignment struct {
	Column string
	Value  any
}
