// Package models contains the client-side data types of the interview
// client: the stored credential, the interview session with its transcript,
// and the progress summary used by the chart surface.
package models

// Credential is the locally persisted identity of the signed-in user.
// An empty Token means the client is anonymous; a non-empty Token must have
// been issued by a successful login.
type Credential struct {
	Token    string `json:"-"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IsAnonymous reports whether the credential carries no bearer token.
func (c Credential) IsAnonymous() bool {
	return c.Token == ""
}

// DisplayName returns the name shown in the UI for this credential.
// The username may legitimately be empty when the identity fetch after
// login failed; the email serves as the fallback.
func (c Credential) DisplayName() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Email
}
