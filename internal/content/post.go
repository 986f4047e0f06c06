package content

import "time"

// Post represents one published article materialized from the content tree.
//
// Posts are immutable after loading: the repository hands out shared pointers
// and nothing in the request path is allowed to mutate them.
type Post struct {
	// Path is the ordered sequence of path segments identifying the post
	// (e.g. ["dsa", "part-1"]). Unique across the site.
	Path []string `json:"path"`

	// Key is Path joined with "/" and no leading separator ("dsa/part-1").
	// Computed once at ingestion; every subsystem keys on it.
	Key string `json:"key"`

	// Group is the first path segment when the post sits inside a folder,
	// or empty for top-level posts. Computed at ingestion so series grouping
	// is an explicit attribute instead of repeated string-splitting.
	Group string `json:"group,omitempty"`

	// URL is the canonical site-relative path, always starting with "/".
	URL string `json:"url"`

	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	ReadingTime *string   `json:"reading_time,omitempty"`
	Featured    bool      `json:"featured"`
	Image       *string   `json:"image,omitempty"`

	// Body is the raw markdown content after the front matter block.
	// It is only serialized on the single-post endpoint.
	Body string `json:"-"`
}

// SeriesManifest is the optional per-group meta.json file supplying display
// metadata and explicit ordering for a series folder.
type SeriesManifest struct {
	// Title is required. A manifest missing it is treated as absent.
	Title string `json:"title"`

	Description *string `json:"description,omitempty"`

	// Order lists post keys in their intended reading sequence. Posts absent
	// from it sort alphabetically after the listed ones.
	Order []string `json:"order,omitempty"`

	// Items maps post keys to display-title overrides.
	Items map[string]string `json:"items,omitempty"`
}
