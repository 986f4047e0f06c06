package schema

// EngagementViewTable represents the 'engagement.views' table
type EngagementViewTable struct {
	Table string
	Alias string
	Path  string
	Count string
}

// EngagementView is the schema definition for engagement.views
var EngagementView = EngagementViewTable{
	Table: "engagement.views",
	Alias: "views",
	Path:  "path",
	Count: "count",
}

// EngagementViewUserTable represents the 'engagement.view_users' table
type EngagementViewUserTable struct {
	Table     string
	Path      string
	VisitorID string
}

// EngagementViewUser is the schema definition for engagement.view_users
var EngagementViewUser = EngagementViewUserTable{
	Table:     "engagement.view_users",
	Path:      "path",
	VisitorID: "visitor_id",
}
