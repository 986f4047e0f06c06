package content

// Repository is the read-only collaborator interface over the content tree.
//
// Implementations must return immutable snapshots: callers may hold the
// returned slices and pointers for the duration of a request without copying.
type Repository interface {
	// ListAll returns every published post, newest first.
	ListAll() []*Post

	// GetByPath looks up a single post by its path segments.
	GetByPath(segments []string) (*Post, bool)

	// GetManifest returns the series manifest for a top-level group folder.
	// Absence (no file, unparsable file, missing title) reports false.
	GetManifest(groupKey string) (*SeriesManifest, bool)
}
