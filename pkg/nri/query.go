package nri

import "strings"

// QueryEntry is one key[=value] entry from an identifier's query tail.
//
// An entry without a value represents a flag-only parameter ("?flag"); one
// with a value represents "key=value". Entries are immutable and order is
// significant: the canonical rendering of an identifier preserves the order
// the entries were parsed in.
type QueryEntry struct {
	key      string
	value    string
	hasValue bool
}

// NewQueryEntry creates a key=value entry.
func NewQueryEntry(key, value string) QueryEntry {
	return QueryEntry{key: key, value: value, hasValue: true}
}

// NewQueryFlag creates a flag-only entry with no value.
func NewQueryFlag(key string) QueryEntry {
	return QueryEntry{key: key}
}

// Key returns the entry's key.
func (e QueryEntry) Key() string {
	return e.key
}

// Value returns the entry's value and whether one is present. Flag-only
// entries report ("", false).
func (e QueryEntry) Value() (string, bool) {
	return e.value, e.hasValue
}

// String renders the entry in wire form: "key=value", or "key" for a
// flag-only entry.
func (e QueryEntry) String() string {
	if e.hasValue {
		return e.key + "=" + e.value
	}
	return e.key
}

// ParseQuery decodes a query tail (the text after "?", without the "?"
// itself) into ordered entries. Tokens are split on "&"; each token splits on
// its first "=". A repeated key keeps only its first entry; later duplicates
// are dropped.
func ParseQuery(raw string) []QueryEntry {
	if raw == "" {
		return nil
	}

	var entries []QueryEntry
	seen := make(map[string]struct{})

	for _, token := range strings.Split(raw, "&") {
		var entry QueryEntry
		if key, value, found := strings.Cut(token, "="); found {
			entry = NewQueryEntry(key, value)
		} else {
			entry = NewQueryFlag(token)
		}

		if _, dup := seen[entry.key]; dup {
			continue
		}
		seen[entry.key] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}

// EncodeQuery renders entries back into a query tail without the leading
// "?". Returns the empty string for no entries.
func EncodeQuery(entries []QueryEntry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = entry.String()
	}
	return strings.Join(parts, "&")
}
