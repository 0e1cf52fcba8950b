package ports

// Favorites is the session-scoped set of favorited product ids. It is
// independent of the query cache; the two meet only at the presentation
// boundary. State lives for the process lifetime and is never persisted.
type Favorites interface {
	// Toggle adds the id if absent and removes it if present. Returns true
	// when the id is a favorite after the call.
	Toggle(productID string) bool
	Contains(productID string) bool
	// List returns the favorited ids as a sorted copy.
	List() []string
	Len() int
}
