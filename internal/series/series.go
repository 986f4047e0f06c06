package series

// Post is one entry of a resolved series, ordered for navigation.
type Post struct {
	// Key is the post's path joined with "/" (no leading separator).
	Key string `json:"key"`

	// Title is the manifest override when present, else the post's own title.
	Title string `json:"title"`

	URL string `json:"url"`

	// Order is the 1-based position after sorting.
	Order int `json:"order"`

	// IsCurrent marks the entry matching the post the series was resolved for.
	IsCurrent bool `json:"is_current"`
}

// Info is the fully resolved series for one post: ordered entries plus
// adjacency pointers for previous/next navigation.
type Info struct {
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Posts        []Post  `json:"posts"`
	CurrentIndex int     `json:"current_index"`
	NextPost     *Post   `json:"next_post,omitempty"`
	PreviousPost *Post   `json:"previous_post,omitempty"`
}

// Summary describes one series in the site-wide series listing.
type Summary struct {
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	EpisodeCount int     `json:"episode_count"`

	// LastUpdated is the most recent contained post date, display-formatted.
	LastUpdated string `json:"last_updated,omitempty"`

	// Category is the most frequent category across the group's posts.
	Category string `json:"category,omitempty"`
}
