package value

// Map is an insertion-ordered string-keyed map, mirroring Python dict's
// iteration-order guarantee (needed for keys/values/items/pretty to be
// deterministic, and so later duplicate keys overwrite earlier ones in
// place per §4.3's Dict evaluation rule).
type Map struct {
	keys []string
	vals map[string]Value
}

// NewMap constructs an empty ordered map.
func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Set stores value under key, preserving the original position if key
// already existed (later duplicate keys overwrite earlier ones, §4.3).
func (m *Map) Set(key string, v Value) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls f for every entry in insertion order.
func (m *Map) Each(f func(key string, v Value)) {
	for _, k := range m.keys {
		f(k, m.vals[k])
	}
}

// Clone deep-copies the map (used by value.DeepCopy).
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Each(func(k string, v Value) {
		out.Set(k, DeepCopy(v))
	})
	return out
}
