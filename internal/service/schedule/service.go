package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type ScheduleServiceImpl struct {
	slotRepo   schedule.SlotRepository
	enrollRepo classroom.EnrollmentRepository
	clk        clock.Clock
}

func NewScheduleService(
	slotRepo schedule.SlotRepository,
	enrollRepo classroom.EnrollmentRepository,
	clk clock.Clock,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		slotRepo:   slotRepo,
		enrollRepo: enrollRepo,
		clk:        clk,
	}
}

// CreateSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSlot(ctx context.Context, req schedule.CreateSlotRequest) (schedule.SlotResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.slotRepo.Create(ctx, schedule.Slot{
		SemesterID: req.SemesterID,
		SubjectID:  req.SubjectID,
		ClassID:    req.ClassID,
		RoomID:     req.RoomID,
		TeacherID:  req.TeacherID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     schedule.SlotStatusScheduled,
	})
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	return slotToResponse(created), nil
}

// GetSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSlot(ctx context.Context, id string) (schedule.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.SlotResponse{}, err
	}
	return slotToResponse(slot), nil
}

// MyTeachingSlots implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) MyTeachingSlots(ctx context.Context) ([]schedule.SlotResponse, error) {
	teacherID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return slotsToResponses(slots), nil
}

// MyUpcomingSlots implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) MyUpcomingSlots(ctx context.Context) ([]schedule.SlotResponse, error) {
	studentID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	classIDs, err := s.enrollRepo.ClassIDsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	today := s.clk.Now().Truncate(24 * time.Hour)
	slots, err := s.slotRepo.ListUpcomingByClasses(ctx, classIDs, today)
	if err != nil {
		return nil, err
	}

	return slotsToResponses(slots), nil
}

// DeleteSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSlot(ctx context.Context, id string) error {
	return s.slotRepo.Delete(ctx, id)
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func slotToResponse(s schedule.Slot) schedule.SlotResponse {
	return schedule.SlotResponse{
		ID:          s.ID,
		SemesterID:  s.SemesterID,
		SubjectID:   s.SubjectID,
		SubjectName: s.SubjectName,
		SubjectCode: s.SubjectCode,
		ClassID:     s.ClassID,
		ClassName:   s.ClassName,
		RoomID:      s.RoomID,
		RoomName:    s.RoomName,
		TeacherID:   s.TeacherID,
		TeacherName: s.TeacherName,
		Date:        s.Date.Format("2006-01-02"),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      s.Status,
	}
}

func slotsToResponses(slots []schedule.Slot) []schedule.SlotResponse {
	responses := make([]schedule.SlotResponse, 0, len(slots))
	for _, s := range slots {
		responses = append(responses, slotToResponse(s))
	}
	return responses
}
