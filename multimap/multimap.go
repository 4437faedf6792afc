// Package multimap provides a map from keys to sets of values, plus the
// set type it is built on. Both automaton builders lean on it for their
// transition tables.
package multimap

// Set is an unordered collection of unique values.
type Set[V comparable] map[V]struct{}

// NewSet returns a set holding the given values.
func NewSet[V comparable](values ...V) Set[V] {
	s := make(Set[V], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value. Inserting an existing value is a no-op.
func (s Set[V]) Add(v V) {
	s[v] = struct{}{}
}

// AddAll inserts every value from another set.
func (s Set[V]) AddAll(other Set[V]) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Has reports whether the set contains a value.
func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Clone returns an independent copy of the set. A nil set clones to an
// empty one.
func (s Set[V]) Clone() Set[V] {
	out := make(Set[V], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Equal reports whether two sets hold exactly the same values.
func (s Set[V]) Equal(other Set[V]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

// Disjoint reports whether two sets share no values.
func (s Set[V]) Disjoint(other Set[V]) bool {
	for v := range s {
		if _, ok := other[v]; ok {
			return false
		}
	}
	return true
}

// MultiMap maps keys to sets of values. Adding a duplicate key-value
// pair is a no-op.
type MultiMap[K, V comparable] map[K]Set[V]

// New returns an empty multimap.
func New[K, V comparable]() MultiMap[K, V] {
	return make(MultiMap[K, V])
}

// Get returns the values stored under a key. The result is a copy;
// mutating it does not affect the map. A missing key yields an empty
// set.
func (m MultiMap[K, V]) Get(key K) Set[V] {
	return m[key].Clone()
}

// Add inserts a value under a key.
func (m MultiMap[K, V]) Add(key K, value V) {
	set, ok := m[key]
	if !ok {
		set = make(Set[V])
		m[key] = set
	}
	set.Add(value)
}

// AddAll inserts every value in the given set under a key.
func (m MultiMap[K, V]) AddAll(key K, values Set[V]) {
	set, ok := m[key]
	if !ok {
		set = make(Set[V], len(values))
		m[key] = set
	}
	set.AddAll(values)
}

// Remove drops a key and all of its values.
func (m MultiMap[K, V]) Remove(key K) {
	delete(m, key)
}

// Clone returns a deep copy of the multimap.
func (m MultiMap[K, V]) Clone() MultiMap[K, V] {
	out := make(MultiMap[K, V], len(m))
	for key, values := range m {
		out[key] = values.Clone()
	}
	return out
}

// Union merges several multimaps into a new one.
func Union[K, V comparable](maps []MultiMap[K, V]) MultiMap[K, V] {
	union := New[K, V]()
	for _, m := range maps {
		for key, values := range m {
			union.AddAll(key, values)
		}
	}
	return union
}
