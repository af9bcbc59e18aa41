package master

import (
	"context"

	"github.com/campuslab/attendance-backend-go/internal/domain/master/room"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/semester"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/subject"
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type MasterService interface {
	// Semester operations
	CreateSemester(ctx context.Context, req semester.CreateSemesterRequest) (semester.SemesterResponse, error)
	ListSemesters(ctx context.Context) ([]semester.SemesterResponse, error)
	DeleteSemester(ctx context.Context, id string) error

	// Subject operations
	CreateSubject(ctx context.Context, req subject.CreateSubjectRequest) (subject.SubjectResponse, error)
	ListSubjects(ctx context.Context) ([]subject.SubjectResponse, error)
	DeleteSubject(ctx context.Context, id string) error

	// Room operations
	CreateRoom(ctx context.Context, req room.CreateRoomRequest) (room.RoomResponse, error)
	ListRooms(ctx context.Context) ([]room.RoomResponse, error)
	DeleteRoom(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	semesterRepo semester.SemesterRepository
	subjectRepo  subject.SubjectRepository
	roomRepo     room.RoomRepository
}

func NewMasterService(
	semesterRepo semester.SemesterRepository,
	subjectRepo subject.SubjectRepository,
	roomRepo room.RoomRepository,
) MasterService {
	return &masterServiceImpl{
		semesterRepo: semesterRepo,
		subjectRepo:  subjectRepo,
		roomRepo:     roomRepo,
	}
}

// ==================== SEMESTER OPERATIONS ====================

func (s *masterServiceImpl) CreateSemester(ctx context.Context, req semester.CreateSemesterRequest) (semester.SemesterResponse, error) {
	if err := req.Validate(); err != nil {
		return semester.SemesterResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.semesterRepo.Create(ctx, semester.Semester{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return semester.SemesterResponse{}, err
	}

	return semesterToResponse(created), nil
}

func (s *masterServiceImpl) ListSemesters(ctx context.Context) ([]semester.SemesterResponse, error) {
	semesters, err := s.semesterRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]semester.SemesterResponse, 0, len(semesters))
	for _, sem := range semesters {
		responses = append(responses, semesterToResponse(sem))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteSemester(ctx context.Context, id string) error {
	return s.semesterRepo.Delete(ctx, id)
}

// ==================== SUBJECT OPERATIONS ====================

func (s *masterServiceImpl) CreateSubject(ctx context.Context, req subject.CreateSubjectRequest) (subject.SubjectResponse, error) {
	if err := req.Validate(); err != nil {
		return subject.SubjectResponse{}, err
	}

	created, err := s.subjectRepo.Create(ctx, subject.Subject{
		Code:    req.Code,
		Name:    req.Name,
		Credits: req.Credits,
	})
	if err != nil {
		return subject.SubjectResponse{}, err
	}

	return subjectToResponse(created), nil
}

func (s *masterServiceImpl) ListSubjects(ctx context.Context) ([]subject.SubjectResponse, error) {
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]subject.SubjectResponse, 0, len(subjects))
	for _, sub := range subjects {
		responses = append(responses, subjectToResponse(sub))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteSubject(ctx context.Context, id string) error {
	return s.subjectRepo.Delete(ctx, id)
}

// ==================== ROOM OPERATIONS ====================

func (s *masterServiceImpl) CreateRoom(ctx context.Context, req room.CreateRoomRequest) (room.RoomResponse, error) {
	if err := req.Validate(); err != nil {
		return room.RoomResponse{}, err
	}

	created, err := s.roomRepo.Create(ctx, room.Room{
		Name:     req.Name,
		Building: req.Building,
		Capacity: req.Capacity,
	})
	if err != nil {
		return room.RoomResponse{}, err
	}

	return roomToResponse(created), nil
}

func (s *masterServiceImpl) ListRooms(ctx context.Context) ([]room.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]room.RoomResponse, 0, len(rooms))
	for _, rm := range rooms {
		responses = append(responses, roomToResponse(rm))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteRoom(ctx context.Context, id string) error {
	return s.roomRepo.Delete(ctx, id)
}

func semesterToResponse(sem semester.Semester) semester.SemesterResponse {
	return semester.SemesterResponse{
		ID:        sem.ID,
		Name:      sem.Name,
		StartDate: sem.StartDate.Format("2006-01-02"),
		EndDate:   sem.EndDate.Format("2006-01-02"),
		IsActive:  sem.IsActive,
	}
}

func subjectToResponse(sub subject.Subject) subject.SubjectResponse {
	return subject.SubjectResponse{
		ID:      sub.ID,
		Code:    sub.Code,
		Name:    sub.Name,
		Credits: sub.Credits,
	}
}

func roomToResponse(rm room.Room) room.RoomResponse {
	return room.RoomResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Building: rm.Building,
		Capacity: rm.Capacity,
	}
}
