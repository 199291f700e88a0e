package services

import "encoding/json"

// Optional is a tri-state JSON field: omitted from the payload, explicitly
// null, or carrying a value. Daily-log upserts are presence-sensitive; an
// omitted field leaves the stored value unchanged while an explicit null
// clears it, so the three states must never collapse into each other.
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Present: true, Valid: true, Value: value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// Ptr returns the value as a pointer, nil unless the field carries a value.
func (optional Optional[T]) Ptr() *T {
	if !optional.Present || !optional.Valid {
		return nil
	}
	value := optional.Value
	return &value
}

func (optional *Optional[T]) UnmarshalJSON(data []byte) error {
	optional.Present = true
	if string(data) == "null" {
		optional.Valid = false
		var zero T
		optional.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &optional.Value); err != nil {
		return err
	}
	optional.Valid = true
	return nil
}

func (optional Optional[T]) MarshalJSON() ([]byte, error) {
	if !optional.Present || !optional.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(optional.Value)
}
