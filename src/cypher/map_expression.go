package cypher

import "fmt"

// KeyValueMapEntry is a single key: value pair inside a map expression.
type KeyValueMapEntry struct {
	key   string
	value Expression
}

// Entry creates a map entry. Uniqueness of key is checked by the map
// expression the entry is added to, not by the entry itself.
func Entry(key string, value Expression) *KeyValueMapEntry {
	mustNotBeEmpty("map key", key)
	mustHave("map value", value)
	return &KeyValueMapEntry{key: key, value: value}
}

// Key returns the key of this entry.
func (e *KeyValueMapEntry) Key() string { return e.key }

// Value returns the value of this entry.
func (e *KeyValueMapEntry) Value() Expression { return e.value }

// Accept implements Visitable.
func (e *KeyValueMapEntry) Accept(v Visitor) {
	v.Enter(e)
	e.value.Accept(v)
	v.Leave(e)
}

// MapExpression is a map literal such as {name: $name, age: 42}.
type MapExpression struct {
	entries []*KeyValueMapEntry
}

// NewMapExpression builds a map from alternating keys and values. Keys
// must be strings; values that are not expressions become literals.
func NewMapExpression(keysAndValues ...any) *MapExpression {
	if len(keysAndValues)%2 != 0 {
		panic(fmt.Errorf("%w: need an even number of map arguments, got %d", ErrInvalidArgument, len(keysAndValues)))
	}
	entries := make([]*KeyValueMapEntry, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			panic(fmt.Errorf("%w: map key at position %d is %T, not a string", ErrInvalidArgument, i, keysAndValues[i]))
		}
		entries = append(entries, Entry(key, asExpression(keysAndValues[i+1])))
	}
	return newMapExpression(entries)
}

// MapOf builds a map from existing entries.
func MapOf(entries ...*KeyValueMapEntry) *MapExpression {
	return newMapExpression(append([]*KeyValueMapEntry(nil), entries...))
}

func newMapExpression(entries []*KeyValueMapEntry) *MapExpression {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		mustHave("map entry", e)
		if _, dup := seen[e.key]; dup {
			panic(fmt.Errorf("%w: %q", ErrDuplicateKey, e.key))
		}
		seen[e.key] = struct{}{}
	}
	return &MapExpression{entries: entries}
}

// AddEntries returns a new map holding the entries of m followed by entries.
func (m *MapExpression) AddEntries(entries ...*KeyValueMapEntry) *MapExpression {
	merged := make([]*KeyValueMapEntry, 0, len(m.entries)+len(entries))
	merged = append(merged, m.entries...)
	merged = append(merged, entries...)
	return newMapExpression(merged)
}

// Entries returns the entries in insertion order.
func (m *MapExpression) Entries() []*KeyValueMapEntry {
	return append([]*KeyValueMapEntry(nil), m.entries...)
}

// Keys returns the keys in insertion order.
func (m *MapExpression) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Accept implements Visitable.
func (m *MapExpression) Accept(v Visitor) {
	v.Enter(m)
	visitAll(v, m.entries)
	v.Leave(m)
}

// Properties is the property map of a node or relationship pattern.
type Properties struct {
	properties *MapExpression
}

// NewProperties wraps m. It returns nil for a nil map so patterns can drop
// their properties.
func NewProperties(m *MapExpression) *Properties {
	if m == nil {
		return nil
	}
	return &Properties{properties: m}
}

// Map returns the wrapped map expression.
func (p *Properties) Map() *MapExpression { return p.properties }

// Accept implements Visitable.
func (p *Properties) Accept(v Visitor) {
	v.Enter(p)
	p.properties.Accept(v)
	v.Leave(p)
}
