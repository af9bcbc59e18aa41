package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/attendance"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	VerifyCode(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	SlotStatus(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// VerifyCode implements AttendanceHandler.
func (h *attendanceHandlerImpl) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req attendance.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.VerifyCode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// A rejected check-in (spoof, bad location, failed face) is still a
	// processed request; the outcome travels in the body
	response.Success(w, result)
}

// MyRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.MyRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SlotStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) SlotStatus(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")

	result, err := h.attendanceService.SlotStatus(r.Context(), slotID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
