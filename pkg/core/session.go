package core

// Identity is the opaque user record returned by the remote API on
// registration or login.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session pairs an identity with its bearer credential.
// Invariant: the two travel together. A session either has both or it
// does not exist; components never hold a token without its identity.
type Session struct {
	Identity Identity
	Token    string
}
