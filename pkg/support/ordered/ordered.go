// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ordered implements a map that remembers the insertion order of its keys.
//
// Iteration (Keys, Values, All) follows the order in which keys were first inserted.
// Overwriting the value of an existing key keeps its original position.
package ordered

import "iter"

// Map is an insertion-ordered map. The zero value is not usable, create it with Make.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Make returns an empty Map.
func Make[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Len returns the number of keys. A nil Map has length 0.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has returns whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	if m == nil {
		return false
	}
	_, found := m.values[key]
	return found
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	if m == nil {
		return
	}
	value, found = m.values[key]
	return
}

// Set sets the value for key. A new key is appended at the end, an existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, found := m.values[key]; !found {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetIfAbsent sets the value only if key is not yet present. It returns whether the value was set.
func (m *Map[K, V]) SetIfAbsent(key K, value V) bool {
	if _, found := m.values[key]; found {
		return false
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

// Update sets every entry of other into m, in other's order, with Set semantics.
func (m *Map[K, V]) Update(other *Map[K, V]) {
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key insertion order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// All iterates over the key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := Make[K, V]()
	c.Update(m)
	return c
}
