package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/api"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for unit tests. Calls records the
// operations that actually went "over the wire", so tests can assert that
// guarded operations issue no request.
type fakeClient struct {
	RegisterErr error
	VerifyErr   error
	ResendErr   error

	TokenRet string
	TokenErr error

	MeRet api.Identity
	MeErr error

	StartRet api.StartResult
	StartErr error

	MessageRet api.Reply
	MessageErr error

	EndRet api.EndResult
	EndErr error

	ProgressRet models.ProgressSummary
	ProgressErr error

	HealthErr error

	Calls []string

	LastRegister  api.RegisterRequest
	LastTokenUser string
	LastTokenPass string
	LastToken     string
	LastSessionID string
	LastMessage   string
	LastTopic     string
	LastSkills    []string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) error {
	f.Calls = append(f.Calls, "register")
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) VerifyOTP(ctx context.Context, email, otp string) error {
	f.Calls = append(f.Calls, "verify-otp")
	return f.VerifyErr
}

func (f *fakeClient) ResendOTP(ctx context.Context, email string) error {
	f.Calls = append(f.Calls, "resend-otp")
	return f.ResendErr
}

func (f *fakeClient) Token(ctx context.Context, email, password string) (string, error) {
	f.Calls = append(f.Calls, "token")
	f.LastTokenUser = email
	f.LastTokenPass = password
	return f.TokenRet, f.TokenErr
}

func (f *fakeClient) Me(ctx context.Context, token string) (api.Identity, error) {
	f.Calls = append(f.Calls, "me")
	f.LastToken = token
	return f.MeRet, f.MeErr
}

func (f *fakeClient) StartInterview(ctx context.Context, token, topic string, cvSkills []string) (api.StartResult, error) {
	f.Calls = append(f.Calls, "start")
	f.LastToken = token
	f.LastTopic = topic
	f.LastSkills = append([]string{}, cvSkills...)
	return f.StartRet, f.StartErr
}

func (f *fakeClient) SendMessage(ctx context.Context, token, sessionID, message string) (api.Reply, error) {
	f.Calls = append(f.Calls, "message")
	f.LastToken = token
	f.LastSessionID = sessionID
	f.LastMessage = message
	return f.MessageRet, f.MessageErr
}

func (f *fakeClient) EndInterview(ctx context.Context, token, sessionID string) (api.EndResult, error) {
	f.Calls = append(f.Calls, "end")
	f.LastToken = token
	f.LastSessionID = sessionID
	return f.EndRet, f.EndErr
}

func (f *fakeClient) ProgressSummary(ctx context.Context, token string) (models.ProgressSummary, error) {
	f.Calls = append(f.Calls, "progress")
	f.LastToken = token
	return f.ProgressRet, f.ProgressErr
}

func (f *fakeClient) Health(ctx context.Context) error {
	f.Calls = append(f.Calls, "health")
	return f.HealthErr
}
