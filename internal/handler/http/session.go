package http

import (
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SessionHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.SessionService
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &sessionHandlerImpl{sessionService: sessionService}
}

// Open implements SessionHandler. POSTing to an already open slot
// rotates the code instead of failing.
func (h *sessionHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	req := session.OpenSessionRequest{SlotID: chi.URLParam(r, "id")}

	result, err := h.sessionService.OpenOrRotate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance session opened", result)
}
