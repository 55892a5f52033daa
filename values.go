package fluid

import "sort"

// Values maps breakpoint names, plus an optional DefaultKey entry, to values
// of one type. Entries keep the order in which they were first set; that
// order decides the last-resort fallback of ResponsiveValue.
type Values[T any] struct {
	keys []string
	vals map[string]T
}

// NewValues returns an empty value map.
func NewValues[T any]() *Values[T] {
	return &Values[T]{vals: make(map[string]T)}
}

// ValuesFromMap copies m into a value map. Go maps carry no order, so keys are
// inserted alphabetically.
func ValuesFromMap[T any](m map[string]T) *Values[T] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	v := NewValues[T]()
	for _, k := range keys {
		v.Set(k, m[k])
	}
	return v
}

// Set stores value under name. Overwriting keeps the original position.
func (v *Values[T]) Set(name string, value T) *Values[T] {
	if v.vals == nil {
		v.vals = make(map[string]T)
	}
	if _, ok := v.vals[name]; !ok {
		v.keys = append(v.keys, name)
	}
	v.vals[name] = value
	return v
}

// Default stores the fallback value.
func (v *Values[T]) Default(value T) *Values[T] {
	return v.Set(DefaultKey, value)
}

// Get returns the value stored under name.
func (v *Values[T]) Get(name string) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	val, ok := v.vals[name]
	return val, ok
}

// Len returns the number of entries, including the default.
func (v *Values[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns the entry names in insertion order.
func (v *Values[T]) Keys() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Clone returns an independent copy.
func (v *Values[T]) Clone() *Values[T] {
	c := NewValues[T]()
	if v == nil {
		return c
	}
	for _, k := range v.keys {
		c.Set(k, v.vals[k])
	}
	return c
}

// ResponsiveValue selects the value of the largest breakpoint in bps whose
// width does not exceed width and which has an entry in values. Without such
// a breakpoint it falls back to the default entry, then to "sm", then to the
// first entry set. It reports false only when values is empty.
func ResponsiveValue[T any](bps Breakpoints, values *Values[T], width int) (T, bool) {
	key, ok := selectKey(bps, values, width)
	if !ok {
		var zero T
		return zero, false
	}
	return values.Get(key)
}

// selectKey returns the entry name ResponsiveValue resolves to.
func selectKey[T any](bps Breakpoints, values *Values[T], width int) (string, bool) {
	if values.Len() == 0 {
		return "", false
	}
	for i := len(bps.list) - 1; i >= 0; i-- {
		bp := bps.list[i]
		if width < bp.Width {
			continue
		}
		if _, ok := values.vals[bp.Name]; ok {
			return bp.Name, true
		}
	}
	if _, ok := values.vals[DefaultKey]; ok {
		return DefaultKey, true
	}
	if _, ok := values.vals["sm"]; ok {
		return "sm", true
	}
	return values.keys[0], true
}
