// Package task defines the value types shared by task-manipulation code:
// key/value task maps, statuses, tags, and command-line task references.
package task

import "sort"

// Pair is a single key/value entry of a task map.
type Pair struct {
	Key   string
	Value string
}

// KV is the key/value representation of a task. Every property of a task,
// including tags and dependencies, is stored as a string-keyed entry.
// A nil KV reads as empty; use Clone before mutating.
type KV map[string]string

// Get returns the value stored under key, or "" if absent.
func (kv KV) Get(key string) string {
	return kv[key]
}

// Has reports whether key is present. Keys with empty values (tags,
// dependencies) still count as present.
func (kv KV) Has(key string) bool {
	_, ok := kv[key]
	return ok
}

// Set stores value under key. The map must be non-nil.
func (kv KV) Set(key, value string) {
	kv[key] = value
}

// Delete removes key if present.
func (kv KV) Delete(key string) {
	delete(kv, key)
}

// Len returns the number of entries.
func (kv KV) Len() int {
	return len(kv)
}

// Clone returns an independent, non-nil copy of kv.
func (kv KV) Clone() KV {
	out := make(KV, len(kv))
	for k, v := range kv {
		out[k] = v
	}
	return out
}

// Pairs returns all entries sorted by key, for deterministic output.
func (kv KV) Pairs() []Pair {
	pairs := make([]Pair, 0, len(kv))
	for k, v := range kv {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}
