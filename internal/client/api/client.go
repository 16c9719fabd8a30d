// Package api implements the HTTP transport of the interview client: the
// request/response contract of the backend and the extraction rule that
// turns non-2xx responses into typed failures.
package api

import (
	"context"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
)

// RegisterRequest is the payload of POST /register.
type RegisterRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Interests []string `json:"interests"`
}

// Identity is the answer of GET /me.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StartResult is the answer of POST /api/interview/start.
type StartResult struct {
	SessionID string   `json:"session_id"`
	Greeting  string   `json:"message"`
	CVSkills  []string `json:"cv_skills"`
}

// Reply is the assistant's answer to one interview message.
type Reply struct {
	Text           string `json:"reply"`
	Stage          string `json:"stage"`
	QuestionNumber int    `json:"question_number"`
}

// EndResult is the summary returned when an interview ends.
type EndResult struct {
	Message string        `json:"message"`
	Rating  models.Rating `json:"rating"`
}

// Client is the transport contract of the interview backend. The client is
// stateless with respect to sessions and credentials: the bearer token and
// the session id are supplied explicitly on every call.
type Client interface {
	Close() error

	// Register creates a new account. No token required.
	Register(ctx context.Context, req RegisterRequest) error

	// VerifyOTP confirms the one-time code sent to the email during
	// registration, activating the account.
	VerifyOTP(ctx context.Context, email, otp string) error

	// ResendOTP requests a fresh one-time code for a pending registration.
	ResendOTP(ctx context.Context, email string) error

	// Token exchanges email/password for a bearer token. The form field is
	// named "username" even though it carries the email address; that is
	// the server's contract, not a mistake.
	Token(ctx context.Context, email, password string) (string, error)

	// Me resolves the identity behind a token.
	Me(ctx context.Context, token string) (Identity, error)

	// StartInterview opens a new interview session.
	StartInterview(ctx context.Context, token, topic string, cvSkills []string) (StartResult, error)

	// SendMessage submits one user message and returns the assistant reply.
	SendMessage(ctx context.Context, token, sessionID, message string) (Reply, error)

	// EndInterview closes the session and returns the rating summary.
	EndInterview(ctx context.Context, token, sessionID string) (EndResult, error)

	// ProgressSummary fetches the user's interview history.
	ProgressSummary(ctx context.Context, token string) (models.ProgressSummary, error)

	// Health probes server reachability.
	Health(ctx context.Context) error
}
