package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
)

const (
	msgServerUp       = "Backend server is running normally!"
	msgLoginOK        = "Login successful!"
	msgLoginFailed    = "Invalid username or password."
	msgBadBody        = "Request body must be a JSON object."
	msgInternal       = "Internal server error."
	msgNotFound       = "Route not found."
	msgMethodNotAllow = "Method not allowed."
)

// maxBodyBytes caps request bodies on the JSON endpoints.
const maxBodyBytes = 64 << 10

type statusResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token,omitempty"`
}

type usersResponse struct {
	Success bool                `json:"success"`
	Users   []models.PublicUser `json:"users"`
	Total   int                 `json:"total"`
}

type processRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type processResponse struct {
	Success   bool                  `json:"success"`
	Action    string                `json:"action"`
	Data      *models.ProcessResult `json:"data"`
	Timestamp string                `json:"timestamp"`
}

func (s *HTTPServer) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Message: msgServerUp, Timestamp: timestamp()})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	s.logger.Info(r.Context(), "login attempt", "username", req.Username)

	res, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgLoginFailed)
			return
		}
		s.logger.Error(r.Context(), "login failed", "username", req.Username, "error", err)
		writeError(w, statusFor(err), msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: msgLoginOK,
		User:    res.User,
		Token:   res.Token,
	})
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "list users failed", "error", err)
		writeError(w, statusFor(err), msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, usersResponse{Success: true, Users: list, Total: len(list)})
}

func (s *HTTPServer) processData(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	logArgs := []any{"action", req.Action}
	if id, ok := identityFromContext(r.Context()); ok {
		logArgs = append(logArgs, "user_id", id.UserID, "username", id.Username)
	}
	s.logger.Info(r.Context(), "process data", logArgs...)

	res, err := s.processor.Process(req.Action, req.Data)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			writeError(w, status, err.Error())
			return
		}
		s.logger.Error(r.Context(), "process data failed", "action", req.Action, "error", err)
		writeError(w, status, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Success:   true,
		Action:    req.Action,
		Data:      res,
		Timestamp: timestamp(),
	})
}

func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

func (s *HTTPServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllow)
}
