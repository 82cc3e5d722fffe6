package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ece-devops/userapi/internal/handler/dto"
	"github.com/ece-devops/userapi/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /user.
// Every failure, including store errors, is reported as 400.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateUserRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	ack, err := h.svc.Create(r.Context(), service.CreateUserInput{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		h.logStoreError(r, err, req.Username)
		writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	h.logger.Info("user_created", "username", req.Username)

	writeJSON(w, http.StatusCreated, dto.ToCreateUserResponse(ack))
}

// Get handles GET /user/{username}.
// Every failure, including store errors, is reported as 404.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, err := usernameParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.NewErrorResponse(service.MsgUserNotFound))
		return
	}

	user, err := h.svc.Get(r.Context(), username)
	if err != nil {
		h.logStoreError(r, err, username)
		writeJSON(w, http.StatusNotFound, dto.NewErrorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// usernameParam returns the decoded {username} segment. chi routes on
// RawPath when the client escaped the path, leaving the param escaped.
func usernameParam(r *http.Request) (string, error) {
	username := chi.URLParam(r, "username")
	if r.URL.RawPath == "" {
		return username, nil
	}
	return url.PathUnescape(username)
}

func (h *UserHandler) logStoreError(r *http.Request, err error, username string) {
	if !errors.Is(err, service.ErrStore) {
		return
	}
	h.logger.Error("store_error",
		"method", r.Method,
		"path", r.URL.Path,
		"username", username,
		"error", err,
	)
}

// decodeCreateUserRequest reads a JSON or form-encoded body.
// An empty body decodes to an empty request.
func decodeCreateUserRequest(r *http.Request) (*dto.CreateUserRequest, error) {
	var req dto.CreateUserRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		req.Username = r.PostForm.Get("username")
		req.Firstname = r.PostForm.Get("firstname")
		req.Lastname = r.PostForm.Get("lastname")
		return &req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &req, nil
}
