package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/master/room"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/semester"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/subject"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
	"github.com/campuslab/attendance-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateSemester(w http.ResponseWriter, r *http.Request)
	ListSemesters(w http.ResponseWriter, r *http.Request)
	DeleteSemester(w http.ResponseWriter, r *http.Request)

	CreateSubject(w http.ResponseWriter, r *http.Request)
	ListSubjects(w http.ResponseWriter, r *http.Request)
	DeleteSubject(w http.ResponseWriter, r *http.Request)

	CreateRoom(w http.ResponseWriter, r *http.Request)
	ListRooms(w http.ResponseWriter, r *http.Request)
	DeleteRoom(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

// CreateSemester implements MasterHandler.
func (h *masterHandlerImpl) CreateSemester(w http.ResponseWriter, r *http.Request) {
	var req semester.CreateSemesterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSemester(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Semester created successfully", result)
}

// ListSemesters implements MasterHandler.
func (h *masterHandlerImpl) ListSemesters(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListSemesters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteSemester implements MasterHandler.
func (h *masterHandlerImpl) DeleteSemester(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteSemester(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Semester deleted successfully", nil)
}

// CreateSubject implements MasterHandler.
func (h *masterHandlerImpl) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req subject.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSubject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subject created successfully", result)
}

// ListSubjects implements MasterHandler.
func (h *masterHandlerImpl) ListSubjects(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListSubjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteSubject implements MasterHandler.
func (h *masterHandlerImpl) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteSubject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subject deleted successfully", nil)
}

// CreateRoom implements MasterHandler.
func (h *masterHandlerImpl) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req room.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateRoom(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Room created successfully", result)
}

// ListRooms implements MasterHandler.
func (h *masterHandlerImpl) ListRooms(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListRooms(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteRoom implements MasterHandler.
func (h *masterHandlerImpl) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteRoom(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Room deleted successfully", nil)
}
