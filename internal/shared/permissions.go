package shared

// Casting agency permissions. Permission strings are opaque identifiers
// carried in the token's permissions claim; they are never parsed.
const (
	PermGetActors    = "get:actors"
	PermPostActors   = "post:actors"
	PermPatchActors  = "patch:actors"
	PermDeleteActors = "delete:actors"

	PermGetMovies    = "get:movies"
	PermPostMovies   = "post:movies"
	PermPatchMovies  = "patch:movies"
	PermDeleteMovies = "delete:movies"
)

// CastingScopes lists every permission the API recognises.
func CastingScopes() []string {
	return []string{
		PermGetActors,
		PermPostActors,
		PermPatchActors,
		PermDeleteActors,
		PermGetMovies,
		PermPostMovies,
		PermPatchMovies,
		PermDeleteMovies,
	}
}
