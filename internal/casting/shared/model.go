package shared

// Assignment is the join record linking one Actor to one Movie. Validation
// builds placeholders carrying only the referenced id; the row becomes
// durable as part of the owning aggregate's write, and the persistence layer
// rejects references that do not resolve.
type Assignment struct {
	ID      int64
	ActorID int64
	MovieID int64
}

// Field limits mirrored by the database schema.
const (
	MaxActorNameLen  = 60
	MaxMovieTitleLen = 120
)
