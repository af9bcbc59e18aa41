package attendance

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
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
	"github.com/campuslab/attendance-backend-go/internal/pkg/metrics"
	"github.com/campuslab/attendance-backend-go/internal/pkg/storage"
	"github.com/campuslab/attendance-backend-go/internal/pkg/utils"
	"github.com/go-chi/jwtauth/v5"
)

// Confidence assigned when the client supplies neither a trusted
// verdict nor an image the face service can match.
const defaultFaceConfidence = 0.3

// Confidence assumed for a client-verified face without a match rate.
const trustedFaceConfidence = 0.95

type AttendanceServiceImpl struct {
	sessionRepo session.SessionRepository
	slotRepo    schedule.SlotRepository
	recordRepo  attendance.RecordRepository
	reportRepo  report.ReportRepository
	enrollRepo  classroom.EnrollmentRepository
	verifier    faceverify.Verifier
	fileStorage storage.FileStorage
	clk         clock.Clock
	metrics     *metrics.Metrics
	cfg         config.AttendanceConfig
}

func NewAttendanceService(
	sessionRepo session.SessionRepository,
	slotRepo schedule.SlotRepository,
	recordRepo attendance.RecordRepository,
	reportRepo report.ReportRepository,
	enrollRepo classroom.EnrollmentRepository,
	verifier faceverify.Verifier,
	fileStorage storage.FileStorage,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		sessionRepo: sessionRepo,
		slotRepo:    slotRepo,
		recordRepo:  recordRepo,
		reportRepo:  reportRepo,
		enrollRepo:  enrollRepo,
		verifier:    verifier,
		fileStorage: fileStorage,
		clk:         clk,
		metrics:     m,
		cfg:         cfg,
	}
}

// VerifyCode implements attendance.AttendanceService. The raw code is
// folded to upper case before hashing, then matched against every
// active session. First digest match wins.
func (s *AttendanceServiceImpl) VerifyCode(ctx context.Context, req attendance.VerifyCodeRequest) (attendance.SessionPreview, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionPreview{}, err
	}

	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return attendance.SessionPreview{}, err
	}

	digest := code.Digest(strings.ToUpper(req.Code))

	active, err := s.sessionRepo.ListActive(ctx, s.clk.Now())
	if err != nil {
		return attendance.SessionPreview{}, fmt.Errorf("failed to list active sessions: %w", err)
	}

	var matched *session.Session
	for i := range active {
		if active[i].CodeHash == digest {
			matched = &active[i]
			break
		}
	}
	if matched == nil {
		s.countVerify("no_match")
		return attendance.SessionPreview{}, attendance.ErrInvalidOrExpiredCode
	}

	slot, err := s.slotRepo.GetByID(ctx, matched.SlotID)
	if err != nil {
		return attendance.SessionPreview{}, err
	}

	enrolled, err := s.enrollRepo.IsEnrolled(ctx, studentID, slot.ClassID)
	if err != nil {
		return attendance.SessionPreview{}, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		s.countVerify("not_enrolled")
		return attendance.SessionPreview{}, &attendance.NotEnrolledError{ClassName: derefOr(slot.ClassName, "")}
	}

	present, err := s.recordRepo.HasPresent(ctx, matched.ID, studentID)
	if err != nil {
		return attendance.SessionPreview{}, fmt.Errorf("failed to check existing record: %w", err)
	}
	if present {
		s.countVerify("already_present")
		return attendance.SessionPreview{}, attendance.ErrAlreadyCheckedIn
	}

	s.countVerify("ok")

	preview := attendance.SessionPreview{
		SessionID:   matched.ID,
		SlotID:      slot.ID,
		SubjectName: derefOr(slot.SubjectName, ""),
		SubjectCode: derefOr(slot.SubjectCode, ""),
		ClassName:   derefOr(slot.ClassName, ""),
		RoomName:    derefOr(slot.RoomName, ""),
		SlotDate:    slot.Date.Format("2006-01-02"),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		ExpiresAt:   matched.EndTime.Format(time.RFC3339),
	}
	if s.cfg.GeofenceEnabled {
		preview.Geofence = &attendance.Fence{
			Latitude:  s.cfg.GeofenceLatitude,
			Longitude: s.cfg.GeofenceLongitude,
			RadiusM:   s.cfg.GeofenceRadiusM,
		}
	}

	return preview, nil
}

// CheckIn implements attendance.AttendanceService. Gates run in a fixed
// order; the first failing gate decides the error. A spoofed face
// short-circuits into a cheating report and no record at all. A
// resubmission overwrites the prior outcome through the upsert, so the
// operation is safe to retry.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	sess, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if sess.SlotID != req.SlotID {
		return attendance.CheckInResponse{}, attendance.ErrSlotMismatch
	}

	now := s.clk.Now()
	if !sess.ActiveAt(now) {
		return attendance.CheckInResponse{}, attendance.ErrSessionExpired
	}

	// No case folding here: the client resubmits the code exactly as
	// returned by verify-code
	if code.Digest(req.Code) != sess.CodeHash {
		return attendance.CheckInResponse{}, attendance.ErrInvalidCode
	}

	slot, err := s.slotRepo.GetByID(ctx, sess.SlotID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	enrolled, err := s.enrollRepo.IsEnrolled(ctx, studentID, slot.ClassID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return attendance.CheckInResponse{}, &attendance.NotEnrolledError{ClassName: derefOr(slot.ClassName, "")}
	}

	confidence, cheating, err := s.evaluateFace(ctx, studentID, req)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if cheating {
		if _, err := s.reportRepo.Create(ctx, report.CheatingReport{
			SessionID: sess.ID,
			SlotID:    slot.ID,
			StudentID: studentID,
			Type:      report.TypeSpoofing,
			Details:   "Anti-spoofing check flagged the submitted face image",
			Status:    report.StatusPending,
		}); err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to create cheating report: %w", err)
		}
		if s.metrics != nil {
			s.metrics.CheatingReports.Inc()
		}
		return attendance.CheckInResponse{
			Success:          false,
			CheatingDetected: true,
			Message:          "Check-in rejected: spoofing detected. The incident has been reported for review.",
		}, nil
	}

	locationOK := s.locationPasses(req.Location)
	livenessOK := !s.cfg.LivenessEnabled || len(req.LivenessCompleted) >= s.cfg.LivenessMin
	faceOK := confidence >= s.cfg.FaceThreshold

	status := attendance.StatusAbsent
	switch {
	case !locationOK:
		status = attendance.StatusInvalidLocation
	case faceOK && livenessOK:
		status = attendance.StatusPresent
	}

	rec := attendance.Record{
		SessionID:      sess.ID,
		SlotID:         slot.ID,
		StudentID:      studentID,
		Status:         status,
		FaceConfidence: confidence,
		CheckinTime:    now,
	}
	if req.Location != nil {
		rec.LocationLat = &req.Location.Latitude
		rec.LocationLng = &req.Location.Longitude
	}
	if len(req.LivenessCompleted) > 0 {
		joined := strings.Join(req.LivenessCompleted, ",")
		rec.LivenessCompleted = &joined
	}
	if url := s.storeFaceImage(ctx, sess.ID, studentID, req.FaceImage); url != "" {
		rec.FaceImageURL = &url
	}

	saved, err := s.recordRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if s.metrics != nil {
		s.metrics.CheckinsTotal.WithLabelValues(status).Inc()
	}

	resp := attendance.CheckInResponse{
		Success: status == attendance.StatusPresent,
		Record:  recordToResponse(saved),
	}
	switch status {
	case attendance.StatusPresent:
		resp.Message = "Check-in successful"
	case attendance.StatusInvalidLocation:
		resp.Message = "Check-in recorded outside the campus area"
	default:
		resp.Message = "Check-in did not pass verification"
	}

	return resp, nil
}

// evaluateFace resolves the face confidence from the request signals.
// A trusted client verdict wins; otherwise a raw image goes to the face
// service; with neither, the default low confidence applies.
func (s *AttendanceServiceImpl) evaluateFace(ctx context.Context, studentID string, req attendance.CheckInRequest) (confidence float64, cheating bool, err error) {
	if req.FaceVerified != nil && *req.FaceVerified {
		if req.FaceMatchRate != nil {
			s.countFace("client_verified")
			return *req.FaceMatchRate, false, nil
		}
		s.countFace("client_verified")
		return trustedFaceConfidence, false, nil
	}

	if req.FaceImage != "" {
		result, verr := s.verifier.Verify(ctx, studentID, req.FaceImage)
		if verr != nil {
			s.countFace("unavailable")
			slog.Warn("Face service verification failed", "student_id", studentID, "error", verr)
			return 0, false, attendance.ErrFaceServiceUnavailable
		}
		if result.SpoofDetected {
			s.countFace("spoof")
			return 0, true, nil
		}
		if result.Verified {
			s.countFace("verified")
			return result.Confidence, false, nil
		}
		s.countFace("unmatched")
		return defaultFaceConfidence, false, nil
	}

	s.countFace("absent")
	return defaultFaceConfidence, false, nil
}

func (s *AttendanceServiceImpl) locationPasses(loc *attendance.Location) bool {
	if !s.cfg.GeofenceEnabled {
		return true
	}
	if loc == nil {
		return false
	}
	distance := utils.CalculateHaversineDistance(
		s.cfg.GeofenceLatitude, s.cfg.GeofenceLongitude,
		loc.Latitude, loc.Longitude,
	)
	return distance <= s.cfg.GeofenceRadiusM
}

// storeFaceImage persists the submitted image as evidence. Failure to
// store is logged, not fatal: the record matters more than the proof.
func (s *AttendanceServiceImpl) storeFaceImage(ctx context.Context, sessionID, studentID, image string) string {
	if image == "" || s.fileStorage == nil {
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		slog.Warn("Skipping face image storage, not valid base64", "student_id", studentID)
		return ""
	}

	path := fmt.Sprintf("checkins/%s/%s.jpg", sessionID, studentID)
	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(raw), path, "image/jpeg")
	if err != nil {
		slog.Warn("Failed to store face image", "student_id", studentID, "error", err)
		return ""
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return stored
	}
	return url
}

// MyRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyRecords(ctx context.Context) ([]attendance.RecordResponse, error) {
	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, *recordToResponse(rec))
	}

	return responses, nil
}

// SlotStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SlotStatus(ctx context.Context, slotID string) (attendance.SlotStatusResponse, error) {
	studentID, err := studentIDFromContext(ctx)
	if err != nil {
		return attendance.SlotStatusResponse{}, err
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return attendance.SlotStatusResponse{}, err
	}

	active, err := s.sessionRepo.GetActiveBySlot(ctx, slot.ID, s.clk.Now())
	if err != nil {
		return attendance.SlotStatusResponse{}, err
	}

	rec, err := s.recordRepo.GetByStudentAndSlot(ctx, studentID, slot.ID)
	if err != nil {
		return attendance.SlotStatusResponse{}, err
	}

	resp := attendance.SlotStatusResponse{
		SlotID:        slot.ID,
		SessionActive: active != nil,
	}
	if rec != nil {
		resp.CheckedIn = rec.Status == attendance.StatusPresent
		resp.Record = recordToResponse(*rec)
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) countVerify(outcome string) {
	if s.metrics != nil {
		s.metrics.CodeVerifyTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *AttendanceServiceImpl) countFace(outcome string) {
	if s.metrics != nil {
		s.metrics.FaceVerifyTotal.WithLabelValues(outcome).Inc()
	}
}

func studentIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	studentID, ok := claims["user_id"].(string)
	if !ok || studentID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return studentID, nil
}

func recordToResponse(rec attendance.Record) *attendance.RecordResponse {
	return &attendance.RecordResponse{
		ID:             rec.ID,
		SessionID:      rec.SessionID,
		SlotID:         rec.SlotID,
		Status:         rec.Status,
		FaceConfidence: rec.FaceConfidence,
		CheckinTime:    rec.CheckinTime.Format(time.RFC3339),
		SubjectName:    rec.SubjectName,
		SubjectCode:    rec.SubjectCode,
		ClassName:      rec.ClassName,
		RoomName:       rec.RoomName,
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
