package schema

// EngagementLikeTable represents the 'engagement.likes' table
type EngagementLikeTable struct {
	Table string
	Alias string
	Path  string
	Count string
}

// EngagementLike is the schema definition for engagement.likes
var EngagementLike = EngagementLikeTable{
	Table: "engagement.likes",
	Alias: "likes",
	Path:  "path",
	Count: "count",
}
