package skills

// KeepFunc decides whether candidate replaces the value already stored under a key.
type KeepFunc[V any] func(existing, candidate V) bool

// KeepFirst never replaces: the first value seen for a key wins.
func KeepFirst[V any](V, V) bool { return false }

// KeepMaxImportance replaces only when the candidate is strictly more important.
func KeepMaxImportance(existing, candidate WeightedSkill) bool {
	return candidate.Importance > existing.Importance
}

// OrderedIndex is an insertion-ordered map. The position of a key is fixed by
// its first insertion; the stored value follows the tie-break given to Put.
type OrderedIndex[V any] struct {
	keys   []string
	values map[string]V
}

func NewOrderedIndex[V any](capacity int) *OrderedIndex[V] {
	return &OrderedIndex[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

// Put stores value under key, or asks replace whether to overwrite the existing value.
// It reports whether value was stored.
func (o *OrderedIndex[V]) Put(key string, value V, replace KeepFunc[V]) bool {
	existing, ok := o.values[key]
	if !ok {
		o.keys = append(o.keys, key)
		o.values[key] = value
		return true
	}
	if replace != nil && replace(existing, value) {
		o.values[key] = value
		return true
	}
	return false
}

// Update rewrites the value stored under an existing key in place.
func (o *OrderedIndex[V]) Update(key string, fn func(V) V) {
	if existing, ok := o.values[key]; ok {
		o.values[key] = fn(existing)
	}
}

func (o *OrderedIndex[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *OrderedIndex[V]) Len() int { return len(o.keys) }

func (o *OrderedIndex[V]) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Values returns the stored values in first-insertion order.
func (o *OrderedIndex[V]) Values() []V {
	out := make([]V, 0, len(o.keys))
	for _, key := range o.keys {
		out = append(out, o.values[key])
	}
	return out
}
