package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
	classroomService "github.com/campuslab/attendance-backend-go/internal/service/classroom"
	"github.com/go-chi/chi/v5"
)

type ClassroomHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Enroll(w http.ResponseWriter, r *http.Request)
	Unenroll(w http.ResponseWriter, r *http.Request)
	ListEnrollments(w http.ResponseWriter, r *http.Request)
}

type classroomHandlerImpl struct {
	classroomService classroomService.ClassroomService
}

func NewClassroomHandler(svc classroomService.ClassroomService) ClassroomHandler {
	return &classroomHandlerImpl{classroomService: svc}
}

// Create implements ClassroomHandler.
func (h *classroomHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req classroom.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.classroomService.CreateClass(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Class created successfully", result)
}

// List implements ClassroomHandler.
func (h *classroomHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.classroomService.ListClasses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements ClassroomHandler.
func (h *classroomHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.classroomService.DeleteClass(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Class deleted successfully", nil)
}

// Enroll implements ClassroomHandler.
func (h *classroomHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")

	var req classroom.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.classroomService.Enroll(r.Context(), classID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student enrolled successfully", result)
}

// Unenroll implements ClassroomHandler.
func (h *classroomHandlerImpl) Unenroll(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	if err := h.classroomService.Unenroll(r.Context(), classID, studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student unenrolled successfully", nil)
}

// ListEnrollments implements ClassroomHandler.
func (h *classroomHandlerImpl) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")

	results, err := h.classroomService.ListEnrollments(r.Context(), classID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
