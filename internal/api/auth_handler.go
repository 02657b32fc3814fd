package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

// AuthHandler serves the credential endpoints under /api/auth. On sign-in
// the access token is both returned in the body and set as an HttpOnly
// cookie, so browser dashboards authenticate without storing the token.
type AuthHandler struct {
	userService  user.Service
	jwtManager   *auth.JWTManager
	cookieDomain string
	cookieSecure bool
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		jwtManager:   jwtManager,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", h.cookieDomain, h.cookieSecure, true)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, NewUserResponse(u))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "failed to generate token"))
		return
	}

	h.setSessionCookie(c, token, int(h.jwtManager.TTL().Seconds()))
	response.OK(c, SignInResponse{
		Token: token,
		User:  NewUserResponse(u),
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}
