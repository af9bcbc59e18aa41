package session

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
	"github.com/campuslab/attendance-backend-go/internal/pkg/code"
	"github.com/campuslab/attendance-backend-go/internal/pkg/metrics"
	"github.com/go-chi/jwtauth/v5"
)

type SessionServiceImpl struct {
	sessionRepo session.SessionRepository
	slotRepo    schedule.SlotRepository
	clk         clock.Clock
	metrics     *metrics.Metrics

	codeLength int
	sessionTTL time.Duration
}

func NewSessionService(
	sessionRepo session.SessionRepository,
	slotRepo schedule.SlotRepository,
	clk clock.Clock,
	m *metrics.Metrics,
	codeLength int,
	sessionTTL time.Duration,
) session.SessionService {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		slotRepo:    slotRepo,
		clk:         clk,
		metrics:     m,
		codeLength:  codeLength,
		sessionTTL:  sessionTTL,
	}
}

// OpenOrRotate implements session.SessionService. Reopening an already
// open slot rotates the code: the previous code stops matching the
// stored digest the moment the upsert lands.
func (s *SessionServiceImpl) OpenOrRotate(ctx context.Context, req session.OpenSessionRequest) (session.OpenSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.OpenSessionResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return session.OpenSessionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	teacherID, ok := claims["user_id"].(string)
	if !ok || teacherID == "" {
		return session.OpenSessionResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		return session.OpenSessionResponse{}, err
	}

	if slot.TeacherID != teacherID {
		return session.OpenSessionResponse{}, session.ErrNotSlotOwner
	}

	rawCode, err := code.Generate(s.codeLength)
	if err != nil {
		return session.OpenSessionResponse{}, fmt.Errorf("failed to generate attendance code: %w", err)
	}

	now := s.clk.Now()
	created, err := s.sessionRepo.Upsert(ctx, session.Session{
		SlotID:    slot.ID,
		TeacherID: teacherID,
		CodeHash:  code.Digest(rawCode),
		StartTime: now,
		EndTime:   now.Add(s.sessionTTL),
	})
	if err != nil {
		return session.OpenSessionResponse{}, err
	}

	if s.metrics != nil {
		s.metrics.SessionsOpened.Inc()
	}

	return session.OpenSessionResponse{
		SessionID: created.ID,
		SlotID:    created.SlotID,
		Code:      rawCode,
		StartTime: created.StartTime.Format(time.RFC3339),
		EndTime:   created.EndTime.Format(time.RFC3339),
	}, nil
}
