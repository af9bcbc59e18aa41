package face

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campuslab/attendance-backend-go/internal/domain/face"
	"github.com/campuslab/attendance-backend-go/internal/pkg/storage"
	"github.com/go-chi/jwtauth/v5"
)

type FaceServiceImpl struct {
	faceRepo    face.FaceRepository
	fileStorage storage.FileStorage
}

func NewFaceService(faceRepo face.FaceRepository, fileStorage storage.FileStorage) face.FaceService {
	return &FaceServiceImpl{faceRepo: faceRepo, fileStorage: fileStorage}
}

// Register implements face.FaceService. Re-registration replaces the
// whole descriptor set and the registration snapshot.
func (s *FaceServiceImpl) Register(ctx context.Context, req face.RegisterRequest) (face.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return face.RegisterResponse{}, err
	}

	studentID, err := userIDFromContext(ctx)
	if err != nil {
		return face.RegisterResponse{}, err
	}

	data := face.FaceData{
		StudentID:   studentID,
		Descriptors: req.Descriptors,
		Status:      face.StatusActive,
	}
	if url := s.storeSnapshot(ctx, studentID, req.Snapshot); url != "" {
		data.SnapshotURL = &url
	}

	saved, err := s.faceRepo.Upsert(ctx, data)
	if err != nil {
		return face.RegisterResponse{}, err
	}

	return face.RegisterResponse{
		StudentID:   saved.StudentID,
		SampleCount: saved.SampleCount,
		Registered:  true,
		Status:      saved.Status,
	}, nil
}

// storeSnapshot keeps the registration photo as evidence. Failure to
// store is logged, not fatal: the descriptors matter more than the
// photo.
func (s *FaceServiceImpl) storeSnapshot(ctx context.Context, studentID, snapshot string) string {
	if snapshot == "" || s.fileStorage == nil {
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(snapshot)
	if err != nil {
		slog.Warn("Skipping registration snapshot, not valid base64", "student_id", studentID)
		return ""
	}

	path := fmt.Sprintf("faces/%s.jpg", studentID)
	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(raw), path, "image/jpeg")
	if err != nil {
		slog.Warn("Failed to store registration snapshot", "student_id", studentID, "error", err)
		return ""
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return stored
	}
	return url
}

// Status implements face.FaceService.
func (s *FaceServiceImpl) Status(ctx context.Context) (face.StatusResponse, error) {
	studentID, err := userIDFromContext(ctx)
	if err != nil {
		return face.StatusResponse{}, err
	}

	data, err := s.faceRepo.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, face.ErrFaceNotRegistered) {
			return face.StatusResponse{Registered: false}, nil
		}
		return face.StatusResponse{}, err
	}

	return face.StatusResponse{
		Registered:  true,
		SampleCount: data.SampleCount,
		Status:      data.Status,
	}, nil
}

// Unregister implements face.FaceService.
func (s *FaceServiceImpl) Unregister(ctx context.Context) error {
	studentID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.faceRepo.Delete(ctx, studentID)
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
