package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
)

const requestIDHeader = "X-Request-ID"

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient constructs an HTTPClient for the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, contentType, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// transportFailure wraps a network-level error (no response received) into
// the generic transport failure. The cause stays attached for logging but
// the Message is deliberately generic.
func transportFailure(op string, err error) error {
	return &Error{
		Kind:    KindTransport,
		Op:      op,
		Message: "server error, please try again later",
		Err:     fmt.Errorf("%w: %w", ErrUnavailable, err),
	}
}

// failure turns a non-2xx response into a typed Error. The server's
// "detail" field wins, then "message", then the per-operation fallback.
// A body that is not valid JSON is a client bug and propagates as a plain
// decode error, not as a typed failure.
func failure(resp *http.Response, kind Kind, op, fallback string) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: reading error response: %w", op, err)
	}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%s: decoding error response: %w", op, err)
	}

	msg := payload.Detail
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = fallback
	}

	var cause error
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		cause = ErrUnauthorized
	}

	return &Error{Kind: kind, Op: op, Message: msg, Err: cause}
}

func decodeBody(op string, resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: invalid response: %w", op, err)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", token, body)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

func (c *HTTPClient) Register(ctx context.Context, r RegisterRequest) error {
	const op = "register"

	if r.Interests == nil {
		r.Interests = []string{}
	}

	resp, err := c.postJSON(ctx, "/register", "", r)
	if err != nil {
		return transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(resp, KindAuth, op, "registration failed")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) error {
	const op = "verify-otp"

	payload := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{Email: email, OTP: otp}

	resp, err := c.postJSON(ctx, "/verify-otp", "", payload)
	if err != nil {
		return transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(resp, KindAuth, op, "verification failed")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string) error {
	const op = "resend-otp"

	// The server takes the email as a query parameter here.
	resp, err := c.postJSON(ctx, "/resend-otp?email="+url.QueryEscape(email), "", nil)
	if err != nil {
		return transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(resp, KindAuth, op, "could not resend code")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) Token(ctx context.Context, email, password string) (string, error) {
	const op = "token"

	// The server authenticates via an OAuth2 password form, so the email
	// travels in the "username" field.
	form := url.Values{
		"username": {email},
		"password": {password},
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/token", "application/x-www-form-urlencoded", "", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", failure(resp, KindAuth, op, "login failed")
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := decodeBody(op, resp, &payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", &Error{Kind: KindAuth, Op: op, Message: "login failed", Err: fmt.Errorf("no access token in response")}
	}
	return payload.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (Identity, error) {
	const op = "me"

	req, err := c.newRequest(ctx, http.MethodGet, "/me", "", token, nil)
	if err != nil {
		return Identity{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Identity{}, transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Identity{}, failure(resp, KindAuth, op, "could not load profile")
	}

	var ident Identity
	if err := decodeBody(op, resp, &ident); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

func (c *HTTPClient) StartInterview(ctx context.Context, token, topic string, cvSkills []string) (StartResult, error) {
	const op = "interview/start"

	if cvSkills == nil {
		cvSkills = []string{}
	}
	payload := struct {
		Topic    string   `json:"topic"`
		CVSkills []string `json:"cv_skills"`
	}{Topic: topic, CVSkills: cvSkills}

	resp, err := c.postJSON(ctx, "/api/interview/start", token, payload)
	if err != nil {
		return StartResult{}, transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return StartResult{}, failure(resp, KindSession, op, "could not start interview")
	}

	var res StartResult
	if err := decodeBody(op, resp, &res); err != nil {
		return StartResult{}, err
	}
	return res, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, token, sessionID, message string) (Reply, error) {
	const op = "interview/message"

	payload := struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}{Message: message, SessionID: sessionID}

	resp, err := c.postJSON(ctx, "/api/interview/message", token, payload)
	if err != nil {
		return Reply{}, transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reply{}, failure(resp, KindSession, op, "could not send message")
	}

	var reply Reply
	if err := decodeBody(op, resp, &reply); err != nil {
		return Reply{}, err
	}
	return reply, nil
}

func (c *HTTPClient) EndInterview(ctx context.Context, token, sessionID string) (EndResult, error) {
	const op = "interview/end"

	resp, err := c.postJSON(ctx, "/api/interview/end/"+url.PathEscape(sessionID), token, nil)
	if err != nil {
		return EndResult{}, transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return EndResult{}, failure(resp, KindSession, op, "could not end interview")
	}

	var res EndResult
	if err := decodeBody(op, resp, &res); err != nil {
		return EndResult{}, err
	}
	return res, nil
}

func (c *HTTPClient) ProgressSummary(ctx context.Context, token string) (models.ProgressSummary, error) {
	const op = "progress/summary"

	req, err := c.newRequest(ctx, http.MethodGet, "/api/progress/summary", "", token, nil)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ProgressSummary{}, transportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ProgressSummary{}, failure(resp, KindSession, op, "could not load progress")
	}

	var summary models.ProgressSummary
	if err := decodeBody(op, resp, &summary); err != nil {
		return models.ProgressSummary{}, err
	}
	return summary, nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	const op = "health"

	req, err := c.newRequest(ctx, http.MethodGet, "/health", "", "", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(op, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindTransport, Op: op, Message: "server unhealthy", Err: ErrUnavailable}
	}
	return nil
}
