package handler

import (
	"encoding/json"
	"net/http"
	"user_api/internal/app/service"
	"user_api/internal/common"
	"user_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createUser)           // POST /users
	r.Get("/", h.readAllUsers)          // GET /users
	r.Get("/{userID}", h.readUser)      // GET /users/{id}
	r.Patch("/{userID}", h.updateUser)  // PATCH /users/{id}
	r.Delete("/{userID}", h.deleteUser) // DELETE /users/{id}
}

// updateUserPayload is the PATCH body; the target id comes from the URL.
type updateUserPayload struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func decodeStrict(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var cmd model.CreateUserCommand
	if err := decodeStrict(r, &cmd); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), cmd)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user.ToResponse())
}

func (h *UserHandler) readUser(w http.ResponseWriter, r *http.Request) {
	query := model.ReadUserQuery{ID: chi.URLParam(r, "userID")}

	user, err := h.userService.ReadUser(r.Context(), query)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user.ToResponse())
}

func (h *UserHandler) readAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ReadAllUsers(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	common.RespondWithJSON(w, http.StatusOK, responses)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var payload updateUserPayload
	if err := decodeStrict(r, &payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	cmd := model.UpdateUserCommand{
		ID:       chi.URLParam(r, "userID"),
		Username: payload.Username,
		Password: payload.Password,
	}

	user, err := h.userService.UpdateUser(r.Context(), cmd)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user.ToResponse())
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	cmd := model.DeleteUserCommand{ID: chi.URLParam(r, "userID")}

	user, err := h.userService.DeleteUser(r.Context(), cmd)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user.ToResponse())
}
