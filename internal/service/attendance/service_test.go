package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/config"
	"github.com/campuslab/attendance-backend-go/internal/domain/attendance"
	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/domain/report"
	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
	"github.com/campuslab/attendance-backend-go/internal/pkg/code"
	"github.com/campuslab/attendance-backend-go/internal/pkg/faceverify"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKES ====================

type fakeSessionRepo struct {
	sessions map[string]session.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]session.Session)}
}

func (f *fakeSessionRepo) Upsert(ctx context.Context, s session.Session) (session.Session, error) {
	for id, existing := range f.sessions {
		if existing.SlotID == s.SlotID && existing.TeacherID == s.TeacherID {
			s.ID = id
			f.sessions[id] = s
			return s, nil
		}
	}
	if s.ID == "" {
		s.ID = "sess-" + s.SlotID
	}
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

type fakeRecordRepo struct {
	records map[string]attendance.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func recordKey(sessionID, studentID string) string { return sessionID + "|" + studentID }

func (f *fakeRecordRepo) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	key := recordKey(rec.SessionID, rec.StudentID)
	if existing, ok := f.records[key]; ok {
		rec.ID = existing.ID
	} else {
		rec.ID = "rec-" + key
	}
	f.records[key] = rec
	return rec, nil
}

func (f *fakeRecordRepo) HasPresent(ctx context.Context, sessionID, studentID string) (bool, error) {
	rec, ok := f.records[recordKey(sessionID, studentID)]
	return ok && rec.Status == attendance.StatusPresent, nil
}

func (f *fakeRecordRepo) GetBySessionAndStudent(ctx context.Context, sessionID, studentID string) (attendance.Record, error) {
	rec, ok := f.records[recordKey(sessionID, studentID)]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) GetByStudentAndSlot(ctx context.Context, studentID, slotID string) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.StudentID == studentID && rec.SlotID == slotID {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) ListByStudent(ctx context.Context, studentID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	reports []report.CheatingReport
}

func (f *fakeReportRepo) Create(ctx context.Context, rep report.CheatingReport) (report.CheatingReport, error) {
	rep.ID = "rep-1"
	f.reports = append(f.reports, rep)
	return rep, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (report.CheatingReport, error) {
	for _, rep := range f.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return report.CheatingReport{}, report.ErrReportNotFound
}

func (f *fakeReportRepo) ListByTeacher(ctx context.Context, teacherID, status string) ([]report.CheatingReport, error) {
	return f.reports, nil
}

func (f *fakeReportRepo) UpdateReview(ctx context.Context, rep report.CheatingReport) (report.CheatingReport, error) {
	return rep, nil
}

type fakeEnrollRepo struct {
	enrolled map[string]bool // studentID|classID
}

func (f *fakeEnrollRepo) Enroll(ctx context.Context, classID, studentID string) (classroom.Enrollment, error) {
	f.enrolled[studentID+"|"+classID] = true
	return classroom.Enrollment{ClassID: classID, StudentID: studentID}, nil
}

func (f *fakeEnrollRepo) Unenroll(ctx context.Context, classID, studentID string) error {
	delete(f.enrolled, studentID+"|"+classID)
	return nil
}

func (f *fakeEnrollRepo) IsEnrolled(ctx context.Context, studentID, classID string) (bool, error) {
	return f.enrolled[studentID+"|"+classID], nil
}

func (f *fakeEnrollRepo) ListByClass(ctx context.Context, classID string) ([]classroom.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollRepo) ClassIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	var ids []string
	for key := range f.enrolled {
		if len(key) > len(studentID) && key[:len(studentID)] == studentID {
			ids = append(ids, key[len(studentID)+1:])
		}
	}
	return ids, nil
}

type fakeVerifier struct {
	result *faceverify.Result
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, studentID string, image string) (*faceverify.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// ==================== HARNESS ====================

const (
	testStudentID = "student-1"
	testTeacherID = "teacher-1"
	testSlotID    = "slot-1"
	testClassID   = "class-1"
	testRawCode   = "AB12CD"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type harness struct {
	svc      attendance.AttendanceService
	sessions *fakeSessionRepo
	slots    *fakeSlotRepo
	records  *fakeRecordRepo
	reports  *fakeReportRepo
	enroll   *fakeEnrollRepo
	verifier *fakeVerifier
	clk      *clock.Fixed
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	className := "CS-2A"
	subjectName := "Operating Systems"
	subjectCode := "CS301"
	roomName := "B-204"

	slots := &fakeSlotRepo{slots: map[string]schedule.Slot{
		testSlotID: {
			ID:          testSlotID,
			SubjectID:   "subj-1",
			ClassID:     testClassID,
			RoomID:      "room-1",
			TeacherID:   testTeacherID,
			Date:        testNow.Truncate(24 * time.Hour),
			StartTime:   "09:00",
			EndTime:     "10:40",
			Status:      schedule.SlotStatusScheduled,
			SubjectName: &subjectName,
			SubjectCode: &subjectCode,
			ClassName:   &className,
			RoomName:    &roomName,
		},
	}}

	sessions := newFakeSessionRepo()
	sessions.sessions["sess-1"] = session.Session{
		ID:        "sess-1",
		SlotID:    testSlotID,
		TeacherID: testTeacherID,
		CodeHash:  code.Digest(testRawCode),
		StartTime: testNow.Add(-30 * time.Second),
		EndTime:   testNow.Add(90 * time.Second),
	}

	records := newFakeRecordRepo()
	reports := &fakeReportRepo{}
	enroll := &fakeEnrollRepo{enrolled: map[string]bool{testStudentID + "|" + testClassID: true}}
	verifier := &fakeVerifier{result: &faceverify.Result{Verified: true, Confidence: 0.92}}
	clk := &clock.Fixed{Time: testNow}

	cfg := config.AttendanceConfig{
		CodeLength:        6,
		SessionTTL:        2 * time.Minute,
		FaceThreshold:     0.8,
		GeofenceEnabled:   true,
		GeofenceLatitude:  -6.2,
		GeofenceLongitude: 106.8,
		GeofenceRadiusM:   500,
		LivenessEnabled:   true,
		LivenessMin:       3,
	}

	svc := NewAttendanceService(sessions, slots, records, reports, enroll, verifier, nil, clk, nil, cfg)

	return &harness{
		svc:      svc,
		sessions: sessions,
		slots:    slots,
		records:  records,
		reports:  reports,
		enroll:   enroll,
		verifier: verifier,
		clk:      clk,
	}
}

func studentCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "student",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func validCheckIn() attendance.CheckInRequest {
	verified := true
	return attendance.CheckInRequest{
		SlotID:            testSlotID,
		SessionID:         "sess-1",
		Code:              testRawCode,
		FaceVerified:      &verified,
		Location:          &attendance.Location{Latitude: -6.2, Longitude: 106.8},
		LivenessCompleted: []string{"blink", "smile", "turn_head"},
	}
}

// ==================== VERIFY CODE ====================

func TestVerifyCode_Success(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	preview, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", preview.SessionID)
	assert.Equal(t, testSlotID, preview.SlotID)
	assert.Equal(t, "Operating Systems", preview.SubjectName)
	assert.Equal(t, "CS-2A", preview.ClassName)
	require.NotNil(t, preview.Geofence)
	assert.InDelta(t, 500, preview.Geofence.RadiusM, 1e-9)
}

func TestVerifyCode_UppercasesBeforeHashing(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	preview, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: "ab12cd"})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", preview.SessionID)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	_, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: "ZZ99ZZ"})

	assert.ErrorIs(t, err, attendance.ErrInvalidOrExpiredCode)
}

func TestVerifyCode_ExpiredSession(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)
	h.clk.Time = testNow.Add(5 * time.Minute)

	_, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})

	assert.ErrorIs(t, err, attendance.ErrInvalidOrExpiredCode)
}

func TestVerifyCode_NotEnrolled(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, "stranger-9")

	_, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})

	var notEnrolled *attendance.NotEnrolledError
	require.ErrorAs(t, err, &notEnrolled)
	assert.Equal(t, "CS-2A", notEnrolled.ClassName)
}

func TestVerifyCode_RejectsAfterPresentCheckIn(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	resp, err := h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)
	require.True(t, resp.Success)

	_, err = h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestVerifyCode_AbsentRecordDoesNotBlock(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	// A failed first attempt must not lock the student out of retrying
	req := validCheckIn()
	req.LivenessCompleted = []string{"blink"}
	resp, err := h.svc.CheckIn(ctx, req)
	require.NoError(t, err)
	require.Equal(t, attendance.StatusAbsent, resp.Record.Status)

	preview, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", preview.SessionID)
}

func TestVerifyCode_RotationInvalidatesOldCode(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	// Lecturer reopens the slot with a fresh code
	_, err := h.sessions.Upsert(context.Background(), session.Session{
		SlotID:    testSlotID,
		TeacherID: testTeacherID,
		CodeHash:  code.Digest("NEW999"),
		StartTime: testNow,
		EndTime:   testNow.Add(2 * time.Minute),
	})
	require.NoError(t, err)

	_, err = h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: testRawCode})
	assert.ErrorIs(t, err, attendance.ErrInvalidOrExpiredCode)

	preview, err := h.svc.VerifyCode(ctx, attendance.VerifyCodeRequest{Code: "NEW999"})
	require.NoError(t, err)
	assert.Equal(t, testSlotID, preview.SlotID)
}

// ==================== CHECK-IN GATES ====================

func TestCheckIn_Present(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	resp, err := h.svc.CheckIn(ctx, validCheckIn())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.CheatingDetected)
	require.NotNil(t, resp.Record)
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)
	assert.InDelta(t, 0.95, resp.Record.FaceConfidence, 1e-9)
}

func TestCheckIn_TrustedVerdictUsesMatchRate(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	rate := 0.88
	req.FaceMatchRate = &rate

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.InDelta(t, 0.88, resp.Record.FaceConfidence, 1e-9)
}

func TestCheckIn_UnknownSession(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.SessionID = "sess-missing"

	_, err := h.svc.CheckIn(ctx, req)

	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestCheckIn_SlotMismatch(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.SlotID = "slot-other"

	_, err := h.svc.CheckIn(ctx, req)

	assert.ErrorIs(t, err, attendance.ErrSlotMismatch)
}

func TestCheckIn_WindowBoundaries(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	// The window is closed on both ends
	h.clk.Time = h.sessions.sessions["sess-1"].EndTime
	resp, err := h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)
	assert.True(t, resp.Success)

	h2 := newHarness(t)
	ctx2 := studentCtx(t, testStudentID)
	h2.clk.Time = h2.sessions.sessions["sess-1"].EndTime.Add(time.Second)
	_, err = h2.svc.CheckIn(ctx2, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrSessionExpired)

	h3 := newHarness(t)
	ctx3 := studentCtx(t, testStudentID)
	h3.clk.Time = h3.sessions.sessions["sess-1"].StartTime.Add(-time.Second)
	_, err = h3.svc.CheckIn(ctx3, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrSessionExpired)
}

func TestCheckIn_CodeIsCaseSensitive(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.Code = "ab12cd"

	_, err := h.svc.CheckIn(ctx, req)

	assert.ErrorIs(t, err, attendance.ErrInvalidCode)
}

func TestCheckIn_NotEnrolled(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, "stranger-9")

	_, err := h.svc.CheckIn(ctx, validCheckIn())

	var notEnrolled *attendance.NotEnrolledError
	assert.ErrorAs(t, err, &notEnrolled)
}

func TestCheckIn_ResubmitAfterPresentOverwrites(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	resp, err := h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)
	require.True(t, resp.Success)
	first := h.records.records[recordKey("sess-1", testStudentID)]

	// A dropped-response retry lands on the same row with fresh values
	h.clk.Time = testNow.Add(30 * time.Second)
	resp, err = h.svc.CheckIn(ctx, validCheckIn())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, h.records.records, 1)

	second := h.records.records[recordKey("sess-1", testStudentID)]
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CheckinTime.After(first.CheckinTime))
}

func TestCheckIn_RetryAfterAbsentOverwrites(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	// First attempt fails liveness, lands ABSENT
	req := validCheckIn()
	req.LivenessCompleted = []string{"blink"}
	resp, err := h.svc.CheckIn(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)

	// Second attempt passes and overwrites the same row
	resp, err = h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, h.records.records, 1)
}

func TestCheckIn_OutsideGeofence(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	// Roughly 1.1km north of campus
	req.Location = &attendance.Location{Latitude: -6.19, Longitude: 106.8}

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, attendance.StatusInvalidLocation, resp.Record.Status)
}

func TestCheckIn_MissingLocation(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.Location = nil

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusInvalidLocation, resp.Record.Status)
}

func TestCheckIn_GeofenceDisabledSkipsLocation(t *testing.T) {
	h := newHarness(t)
	svc := h.svc.(*AttendanceServiceImpl)
	svc.cfg.GeofenceEnabled = false
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.Location = nil

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCheckIn_InsufficientLiveness(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.LivenessCompleted = []string{"blink", "smile"}

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
}

func TestCheckIn_LowFaceConfidence(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	req := validCheckIn()
	req.FaceVerified = nil
	req.FaceImage = "" // no signal at all, default 0.3

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
	assert.InDelta(t, 0.3, resp.Record.FaceConfidence, 1e-9)
}

// ==================== FACE SERVICE PATHS ====================

func TestCheckIn_RawImageVerified(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)
	h.verifier.result = &faceverify.Result{Verified: true, Confidence: 0.9}

	req := validCheckIn()
	req.FaceVerified = nil
	req.FaceImage = "not-base64-but-still-forwarded"

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.InDelta(t, 0.9, resp.Record.FaceConfidence, 1e-9)
}

func TestCheckIn_RawImageUnmatched(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)
	h.verifier.result = &faceverify.Result{Verified: false, Confidence: 0.1}

	req := validCheckIn()
	req.FaceVerified = nil
	req.FaceImage = "img"

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
	assert.InDelta(t, 0.3, resp.Record.FaceConfidence, 1e-9)
}

func TestCheckIn_FaceServiceDown(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)
	h.verifier.err = errors.New("connection refused")

	req := validCheckIn()
	req.FaceVerified = nil
	req.FaceImage = "img"

	_, err := h.svc.CheckIn(ctx, req)

	assert.ErrorIs(t, err, attendance.ErrFaceServiceUnavailable)
	assert.Empty(t, h.records.records)
}

func TestCheckIn_SpoofCreatesReportAndNoRecord(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)
	h.verifier.result = &faceverify.Result{SpoofDetected: true}

	req := validCheckIn()
	req.FaceVerified = nil
	req.FaceImage = "img"

	resp, err := h.svc.CheckIn(ctx, req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.True(t, resp.CheatingDetected)
	assert.Nil(t, resp.Record)
	assert.Empty(t, h.records.records)

	require.Len(t, h.reports.reports, 1)
	rep := h.reports.reports[0]
	assert.Equal(t, report.TypeSpoofing, rep.Type)
	assert.Equal(t, report.StatusPending, rep.Status)
	assert.Equal(t, testStudentID, rep.StudentID)
}

// ==================== STATUS AND HISTORY ====================

func TestSlotStatus(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	status, err := h.svc.SlotStatus(ctx, testSlotID)
	require.NoError(t, err)
	assert.True(t, status.SessionActive)
	assert.False(t, status.CheckedIn)
	assert.Nil(t, status.Record)

	_, err = h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)

	status, err = h.svc.SlotStatus(ctx, testSlotID)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	require.NotNil(t, status.Record)
	assert.Equal(t, attendance.StatusPresent, status.Record.Status)
}

func TestMyRecords(t *testing.T) {
	h := newHarness(t)
	ctx := studentCtx(t, testStudentID)

	records, err := h.svc.MyRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = h.svc.CheckIn(ctx, validCheckIn())
	require.NoError(t, err)

	records, err = h.svc.MyRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}
