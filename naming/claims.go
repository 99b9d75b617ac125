package naming

import "sort"

// Claims records which catalog key produced each identifier
type Claims struct {
	owners map[string]string
}

// NewClaims creates an empty Claims
func NewClaims() *Claims {
	return &Claims{owners: make(map[string]string)}
}

// Claim registers identifier for key. It returns false when identifier is
// already owned by a different key; Owner names that key.
func (c *Claims) Claim(identifier, key string) bool {
	if owner, exists := c.owners[identifier]; exists && owner != key {
		return false
	}
	c.owners[identifier] = key
	return true
}

// Owner returns the key that claimed identifier
func (c *Claims) Owner(identifier string) (string, bool) {
	owner, ok := c.owners[identifier]
	return owner, ok
}

// Identifiers returns all claimed identifiers sorted lexicographically
func (c *Claims) Identifiers() []string {
	ids := make([]string, 0, len(c.owners))
	for id := range c.owners {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of claimed identifiers
func (c *Claims) Len() int {
	return len(c.owners)
}
