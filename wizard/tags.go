package wizard

import "strings"

// TagComposer builds an ad-hoc list of free-text values for the
// "Autres" sub-fields. Entries are committed by Enter or comma,
// deduplicated by exact match and removable by index.
type TagComposer struct {
	tags []string
}

// Input commits raw user input. A comma acts like Enter: every
// comma-separated segment is trimmed and committed on its own.
func (t *TagComposer) Input(raw string) {
	for _, part := range strings.Split(raw, ",") {
		t.Add(part)
	}
}

// Add commits a single trimmed entry. Duplicate and empty entries are
// dropped; it reports whether the entry was added.
func (t *TagComposer) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, existing := range t.tags {
		if existing == tag {
			return false
		}
	}
	t.tags = append(t.tags, tag)
	return true
}

// RemoveAt removes the entry at index i; it reports whether i was in
// range.
func (t *TagComposer) RemoveAt(i int) bool {
	if i < 0 || i >= len(t.tags) {
		return false
	}
	t.tags = append(t.tags[:i], t.tags[i+1:]...)
	return true
}

// Tags returns a copy of the committed entries in insertion order.
func (t *TagComposer) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

func (t *TagComposer) Len() int {
	return len(t.tags)
}
