package schema

// EngagementReactionTable represents the 'engagement.reactions' table
type EngagementReactionTable struct {
	Table string
	Alias string
	Path  string
	Kind  string
	Count string
}

// EngagementReaction is the schema definition for engagement.reactions
var EngagementReaction = EngagementReactionTable{
	Table: "engagement.reactions",
	Alias: "reactions",
	Path:  "path",
	Kind:  "kind",
	Count: "count",
}

// EngagementReactionUserTable represents the 'engagement.reaction_users' table
//
// One row per (path, visitor): the kind column records the visitor's single
// active reaction, enforcing exclusivity at the storage level.
type EngagementReactionUserTable struct {
	Table     string
	Path      string
	VisitorID string
	Kind      string
}

// EngagementReactionUser is the schema definition for engagement.reaction_users
var EngagementReactionUser = EngagementReactionUserTable{
	Table:     "engagement.reaction_users",
	Path:      "path",
	VisitorID: "visitor_id",
	Kind:      "kind",
}
