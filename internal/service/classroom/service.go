package classroom

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/domain/user"
)

type ClassroomService interface {
	CreateClass(ctx context.Context, req classroom.CreateClassRequest) (classroom.ClassResponse, error)
	ListClasses(ctx context.Context) ([]classroom.ClassResponse, error)
	DeleteClass(ctx context.Context, id string) error

	// Enroll adds a student to a class; the user must hold the student role
	Enroll(ctx context.Context, classID string, req classroom.EnrollRequest) (classroom.EnrollmentResponse, error)
	Unenroll(ctx context.Context, classID, studentID string) error
	ListEnrollments(ctx context.Context, classID string) ([]classroom.EnrollmentResponse, error)
}

type classroomServiceImpl struct {
	classRepo  classroom.ClassRepository
	enrollRepo classroom.EnrollmentRepository
	userRepo   user.UserRepository
}

func NewClassroomService(
	classRepo classroom.ClassRepository,
	enrollRepo classroom.EnrollmentRepository,
	userRepo user.UserRepository,
) ClassroomService {
	return &classroomServiceImpl{
		classRepo:  classRepo,
		enrollRepo: enrollRepo,
		userRepo:   userRepo,
	}
}

func (s *classroomServiceImpl) CreateClass(ctx context.Context, req classroom.CreateClassRequest) (classroom.ClassResponse, error) {
	if err := req.Validate(); err != nil {
		return classroom.ClassResponse{}, err
	}

	created, err := s.classRepo.Create(ctx, classroom.Class{Name: req.Name})
	if err != nil {
		return classroom.ClassResponse{}, err
	}

	return classroom.ClassResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *classroomServiceImpl) ListClasses(ctx context.Context) ([]classroom.ClassResponse, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]classroom.ClassResponse, 0, len(classes))
	for _, c := range classes {
		responses = append(responses, classroom.ClassResponse{ID: c.ID, Name: c.Name})
	}
	return responses, nil
}

func (s *classroomServiceImpl) DeleteClass(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}

func (s *classroomServiceImpl) Enroll(ctx context.Context, classID string, req classroom.EnrollRequest) (classroom.EnrollmentResponse, error) {
	if err := req.Validate(); err != nil {
		return classroom.EnrollmentResponse{}, err
	}

	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return classroom.EnrollmentResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return classroom.EnrollmentResponse{}, user.ErrUserNotFound
		}
		return classroom.EnrollmentResponse{}, fmt.Errorf("failed to look up student: %w", err)
	}
	if !u.IsStudent() {
		return classroom.EnrollmentResponse{}, user.ErrStudentRoleRequired
	}

	e, err := s.enrollRepo.Enroll(ctx, classID, req.StudentID)
	if err != nil {
		return classroom.EnrollmentResponse{}, err
	}

	return enrollmentToResponse(e), nil
}

func (s *classroomServiceImpl) Unenroll(ctx context.Context, classID, studentID string) error {
	return s.enrollRepo.Unenroll(ctx, classID, studentID)
}

func (s *classroomServiceImpl) ListEnrollments(ctx context.Context, classID string) ([]classroom.EnrollmentResponse, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollRepo.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	responses := make([]classroom.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, enrollmentToResponse(e))
	}
	return responses, nil
}

func enrollmentToResponse(e classroom.Enrollment) classroom.EnrollmentResponse {
	return classroom.EnrollmentResponse{
		ID:           e.ID,
		ClassID:      e.ClassID,
		StudentID:    e.StudentID,
		StudentName:  e.StudentName,
		StudentEmail: e.StudentEmail,
	}
}
