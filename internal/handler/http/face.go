package http

import (
	"encoding/json"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/face"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
)

type FaceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Unregister(w http.ResponseWriter, r *http.Request)
}

type faceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &faceHandlerImpl{faceService: faceService}
}

// Register implements FaceHandler. Re-registering replaces the stored
// sample set wholesale.
func (h *faceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req face.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.faceService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Face registered successfully", result)
}

// Status implements FaceHandler.
func (h *faceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.faceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Unregister implements FaceHandler.
func (h *faceHandlerImpl) Unregister(w http.ResponseWriter, r *http.Request) {
	if err := h.faceService.Unregister(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Face data removed successfully", nil)
}
