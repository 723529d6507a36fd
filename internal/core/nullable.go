// AngelaMos | 2026
// nullable.go

package core

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes an absent JSON key from an explicit null, which
// partial updates need for clearing nullable columns.
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}

	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// IsNull reports an explicit null in the decoded body.
func (n Nullable[T]) IsNull() bool {
	return n.Set && !n.Valid
}

func (n Nullable[T]) pointer() any {
	return n.Ptr()
}

// Ptr returns nil for null, or a pointer to the value.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
