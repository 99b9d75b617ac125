package usage

import "sort"

// Index is the set of identifiers found in the scanned sources
type Index struct {
	found map[string]struct{}
	// Files is the number of source files that were searched
	Files int
}

// NewIndex returns an index containing ids
func NewIndex(ids ...string) *Index {
	idx := &Index{found: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		idx.Add(id)
	}
	return idx
}

// Add records id as used
func (idx *Index) Add(id string) {
	idx.found[id] = struct{}{}
}

// Contains reports whether id was referenced at least once
func (idx *Index) Contains(id string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.found[id]
	return ok
}

// Len returns the number of distinct identifiers found
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.found)
}

// Identifiers returns the found identifiers in sorted order
func (idx *Index) Identifiers() []string {
	if idx == nil {
		return nil
	}
	ids := make([]string, 0, len(idx.found))
	for id := range idx.found {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
