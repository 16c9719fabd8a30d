package services

import (
	"context"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/api"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

// DefaultTopic is used when the caller starts an interview without naming
// a topic.
const DefaultTopic = "Software Development"

// InterviewService owns the interview state machine (NoSession → Active →
// Ended) and the append-only transcript of the current session. State is
// checked locally before any network call: operations against an ended or
// unknown session never reach the server.
//
// The service is not safe for concurrent use; callers serialize their own
// calls (the REPL is strictly sequential).
type InterviewService struct {
	client api.Client
	log    logging.Logger

	session *models.Session
	turns   []models.Turn
	ended   map[string]struct{}
}

// NewInterviewService constructs an InterviewService bound to the given
// API client.
func NewInterviewService(client api.Client, log logging.Logger) *InterviewService {
	return &InterviewService{
		client: client,
		log:    log,
		ended:  make(map[string]struct{}),
	}
}

// Start opens a new interview session. The token must be non-empty; topic
// defaults to DefaultTopic and cvSkills to an empty list. On failure the
// state remains NoSession.
func (s *InterviewService) Start(ctx context.Context, token, topic string, cvSkills []string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrNotAuthenticated
	}
	if s.session != nil && s.session.Status == models.StatusActive {
		return models.Session{}, ErrSessionActive
	}
	if topic == "" {
		topic = DefaultTopic
	}
	if cvSkills == nil {
		cvSkills = []string{}
	}

	res, err := s.client.StartInterview(ctx, token, topic, cvSkills)
	if err != nil {
		return models.Session{}, err
	}

	skills := res.CVSkills
	if skills == nil {
		skills = cvSkills
	}
	s.session = &models.Session{
		ID:       res.SessionID,
		Topic:    topic,
		CVSkills: skills,
		Status:   models.StatusActive,
	}
	s.turns = nil
	if res.Greeting != "" {
		s.append(models.RoleAssistant, res.Greeting)
	}

	s.log.Info(ctx, "interview started", "session_id", res.SessionID, "topic", topic)
	return *s.session, nil
}

// SendMessage submits one user message to the active session and records
// both the user turn and the assistant reply. On failure no turn is
// recorded and the session stays Active.
func (s *InterviewService) SendMessage(ctx context.Context, token, sessionID, message string) (models.Turn, error) {
	if err := s.checkActive(sessionID); err != nil {
		return models.Turn{}, err
	}

	reply, err := s.client.SendMessage(ctx, token, sessionID, message)
	if err != nil {
		return models.Turn{}, err
	}

	s.append(models.RoleUser, message)
	turn := s.append(models.RoleAssistant, reply.Text)
	return turn, nil
}

// End closes the active session and returns the server's rating summary.
// On failure the session stays Active.
func (s *InterviewService) End(ctx context.Context, token, sessionID string) (api.EndResult, error) {
	if err := s.checkActive(sessionID); err != nil {
		return api.EndResult{}, err
	}

	res, err := s.client.EndInterview(ctx, token, sessionID)
	if err != nil {
		return api.EndResult{}, err
	}

	s.session.Status = models.StatusEnded
	s.ended[sessionID] = struct{}{}
	s.log.Info(ctx, "interview ended", "session_id", sessionID, "score", res.Rating.Score)
	return res, nil
}

// Progress fetches the user's interview history for the chart surface.
func (s *InterviewService) Progress(ctx context.Context, token string) (models.ProgressSummary, error) {
	if token == "" {
		return models.ProgressSummary{}, ErrNotAuthenticated
	}
	return s.client.ProgressSummary(ctx, token)
}

// Session returns a copy of the current session, or nil when no interview
// was started since the client came up.
func (s *InterviewService) Session() *models.Session {
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// Turns returns a copy of the transcript of the current session, in append
// order.
func (s *InterviewService) Turns() []models.Turn {
	out := make([]models.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *InterviewService) checkActive(sessionID string) error {
	if _, ok := s.ended[sessionID]; ok {
		return ErrSessionEnded
	}
	if s.session == nil || s.session.ID != sessionID {
		return ErrNoSession
	}
	if s.session.Status == models.StatusEnded {
		return ErrSessionEnded
	}
	return nil
}

func (s *InterviewService) append(role models.Role, content string) models.Turn {
	turn := models.Turn{Role: role, Content: content, Seq: len(s.turns)}
	s.turns = append(s.turns, turn)
	return turn
}
