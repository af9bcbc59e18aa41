package session

import (
	"context"
	"testing"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
	"github.com/campuslab/attendance-backend-go/internal/pkg/code"
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions map[string]session.Session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]session.Session), nextID: 1}
}

func (f *fakeSessionRepo) Upsert(ctx context.Context, s session.Session) (session.Session, error) {
	for id, existing := range f.sessions {
		if existing.SlotID == s.SlotID && existing.TeacherID == s.TeacherID {
			s.ID = id
			f.sessions[id] = s
			return s, nil
		}
	}
	s.ID = "sess-" + string(rune('0'+f.nextID))
	f.nextID++
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (session.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) ListActive(ctx context.Context, now time.Time) ([]session.Session, error) {
	var active []session.Session
	for _, s := range f.sessions {
		if s.ActiveAt(now) {
			active = append(active, s)
		}
	}
	return active, nil
}

func (f *fakeSessionRepo) GetActiveBySlot(ctx context.Context, slotID string, now time.Time) (*session.Session, error) {
	for _, s := range f.sessions {
		if s.SlotID == slotID && s.ActiveAt(now) {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, s := range f.sessions {
		if s.EndTime.Before(cutoff) {
			delete(f.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeSlotRepo struct {
	slots map[string]schedule.Slot
}

func (f *fakeSlotRepo) Create(ctx context.Context, s schedule.Slot) (schedule.Slot, error) {
	f.slots[s.ID] = s
	return s, nil
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (schedule.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return schedule.Slot{}, schedule.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) ListByTeacher(ctx context.Context, teacherID string) ([]schedule.Slot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) ListUpcomingByClasses(ctx context.Context, classIDs []string, from time.Time) ([]schedule.Slot, error) {
	return nil, nil
}

func (f *fakeSlotRepo) Update(ctx context.Context, s schedule.Slot) error { return nil }
func (f *fakeSlotRepo) Delete(ctx context.Context, id string) error       { return nil }

func (f *fakeSlotRepo) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

var sessionTestNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (session.SessionService, *fakeSessionRepo, *clock.Fixed) {
	t.Helper()

	slots := &fakeSlotRepo{slots: map[string]schedule.Slot{
		"slot-1": {
			ID:        "slot-1",
			TeacherID: "teacher-1",
			Date:      sessionTestNow.Truncate(24 * time.Hour),
			StartTime: "09:00",
			EndTime:   "10:40",
			Status:    schedule.SlotStatusScheduled,
		},
	}}

	sessions := newFakeSessionRepo()
	clk := &clock.Fixed{Time: sessionTestNow}
	svc := NewSessionService(sessions, slots, clk, nil, code.DefaultLength, 2*time.Minute)
	return svc, sessions, clk
}

func teacherCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "lecturer",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestOpenOrRotate_CreatesSession(t *testing.T) {
	svc, sessions, _ := newService(t)
	ctx := teacherCtx(t, "teacher-1")

	resp, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{SlotID: "slot-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "slot-1", resp.SlotID)
	assert.True(t, validator.IsValidAttendanceCode(resp.Code))
	assert.Equal(t, sessionTestNow.Format(time.RFC3339), resp.StartTime)
	assert.Equal(t, sessionTestNow.Add(2*time.Minute).Format(time.RFC3339), resp.EndTime)

	// Only the digest is stored
	stored := sessions.sessions[resp.SessionID]
	assert.Equal(t, code.Digest(resp.Code), stored.CodeHash)
	assert.NotContains(t, stored.CodeHash, resp.Code)
}

func TestOpenOrRotate_RotationReplacesDigestAndWindow(t *testing.T) {
	svc, sessions, clk := newService(t)
	ctx := teacherCtx(t, "teacher-1")

	first, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{SlotID: "slot-1"})
	require.NoError(t, err)

	clk.Time = sessionTestNow.Add(90 * time.Second)
	second, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{SlotID: "slot-1"})
	require.NoError(t, err)

	// Same row, fresh code and window
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.NotEqual(t, first.Code, second.Code)
	require.Len(t, sessions.sessions, 1)

	stored := sessions.sessions[second.SessionID]
	assert.Equal(t, code.Digest(second.Code), stored.CodeHash)
	assert.NotEqual(t, code.Digest(first.Code), stored.CodeHash)
	assert.Equal(t, clk.Time, stored.StartTime)
	assert.Equal(t, clk.Time.Add(2*time.Minute), stored.EndTime)
}

func TestOpenOrRotate_NotSlotOwner(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := teacherCtx(t, "teacher-2")

	_, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{SlotID: "slot-1"})

	assert.ErrorIs(t, err, session.ErrNotSlotOwner)
}

func TestOpenOrRotate_SlotNotFound(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := teacherCtx(t, "teacher-1")

	_, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{SlotID: "slot-missing"})

	assert.ErrorIs(t, err, schedule.ErrSlotNotFound)
}

func TestOpenOrRotate_MissingSlotID(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := teacherCtx(t, "teacher-1")

	_, err := svc.OpenOrRotate(ctx, session.OpenSessionRequest{})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestOpenOrRotate_NoClaims(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.OpenOrRotate(context.Background(), session.OpenSessionRequest{SlotID: "slot-1"})

	assert.Error(t, err)
}
