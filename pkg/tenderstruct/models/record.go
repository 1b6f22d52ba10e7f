package models

// Record is one extracted row: a position or a summary entry. The
// contractor part of the field set varies with the layout slot's
// column span, so records stay key-value shaped rather than struct
// shaped; the keys are the Key* constants of this package.
type Record map[string]any

// Clone returns a deep copy of the record. Nested cost blocks are
// map[string]any and are copied recursively.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = cloneValue(vv)
		}
		return out
	default:
		return v
	}
}
