package timeline

// orderedMap is a map that remembers the order keys were first inserted.
type orderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{index: make(map[K]int)}
}

// Update applies fn to the value stored under k, starting from the zero value.
func (m *orderedMap[K, V]) Update(k K, fn func(V) V) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		i = len(m.keys)
		m.index[k] = i
		m.keys = append(m.keys, k)
		m.vals = append(m.vals, zero)
	}
	m.vals[i] = fn(m.vals[i])
}

// SetIfAbsent stores v under k unless k is already present. It reports whether v was stored.
func (m *orderedMap[K, V]) SetIfAbsent(k K, v V) bool {
	if _, ok := m.index[k]; ok {
		return false
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return true
}

// Values returns the values in first-insertion order.
func (m *orderedMap[K, V]) Values() []V {
	return m.vals
}

func (m *orderedMap[K, V]) Len() int { return len(m.keys) }

// textKey distinguishes an absent field from an empty one.
type textKey struct {
	text    string
	present bool
}

func keyOf(s *string) textKey {
	if s == nil {
		return textKey{}
	}
	return textKey{text: *s, present: true}
}
