// Package api implements the HTTP handlers for the flower shop endpoints.
package api

import (
	"net/http"

	"github.com/floravend/bloom-api/internal/api/middleware"
	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/platform/uploads"
	"github.com/floravend/bloom-api/internal/service/auth"
	"github.com/floravend/bloom-api/internal/store"
)

// maxSignupFormMemory bounds how much of the multipart signup body is held in
// memory before spilling to temp files.
const maxSignupFormMemory = 10 << 20 // 10 MiB

// AuthHandler handles signup, login and profile requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	fileStore        *uploads.FileStore
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	fileStore *uploads.FileStore,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		fileStore:        fileStore,
	}
}

// Signup handles the POST /signup endpoint.
// The request is multipart form data: username, password and a
// profile_picture file. The user row is inserted first (relying on the
// username UNIQUE constraint for duplicate detection), then the image is
// written to the uploads directory under its original filename.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSignupFormMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req := SignupRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Profile picture is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}
	user.ProfilePicture = header.Filename

	hashed, err := h.passwordVerifier.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}
	user.HashedPassword = hashed

	if err := h.userStore.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	storedName, err := h.fileStore.Save(header.Filename, file)
	if err != nil {
		// The user row exists at this point; surface the storage failure
		// rather than pretending signup succeeded without the picture.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to store profile picture", err)
		return
	}
	user.ProfilePicture = storedName

	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserProfileResponse(user))
}

// Login handles the POST /login endpoint.
// Credentials arrive form-encoded. Unknown usernames and wrong passwords both
// produce the same generic 400 so the response does not reveal which check
// failed. This deliberately bypasses MapErrorToStatusCode, which would give
// not-found a 404.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req := LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Incorrect username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Incorrect username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Profile handles the GET /profile endpoint.
// The auth middleware has already validated the token and resolved its
// subject, so the handler only shapes the response.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserProfileResponse(user))
}
