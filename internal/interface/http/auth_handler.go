package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/auth"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type AuthHandler struct {
	Signup   *auth.SignupHandler
	Login    *auth.LoginHandler
	Forgot   *auth.ForgotPasswordHandler
	Reset    *auth.ResetPasswordHandler
	Cookies  *helpers.Manager
	Sessions SessionStore
	TokenTTL time.Duration
	Logger   logrus.FieldLogger
}

type signupRequest struct {
	FullName string `json:"full_name" binding:"max=100"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SignupUser POST /api/auth/signup
func (h *AuthHandler) SignupUser(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Signup.Handle(c.Request.Context(), auth.SignupCommand{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	h.respondWithSession(c, res, http.StatusCreated, "signup successful")
}

// LoginUser POST /api/auth/login
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Login.Handle(c.Request.Context(), auth.LoginCommand{Email: req.Email, Password: req.Password})
	h.respondWithSession(c, res, http.StatusOK, "login successful")
}

// ForgotPassword POST /api/auth/forgot-password
// Responds the same whether or not the email is registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Forgot.Handle(c.Request.Context(), auth.ForgotPasswordCommand{Email: req.Email})
	response.FromResult(c, res, http.StatusOK, "if the email is registered, a reset link has been sent")
}

// ResetPassword POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	res := h.Reset.Handle(c.Request.Context(), auth.ResetPasswordCommand{Token: req.Token, NewPassword: req.NewPassword})
	response.FromResult(c, res, http.StatusOK, "password has been reset")
}

func (h *AuthHandler) respondWithSession(c *gin.Context, res result.Result[auth.AuthResponse], status int, message string) {
	if res.IsFailure() {
		response.FromResult(c, res, status, message)
		return
	}
	out := res.Value()
	exp := time.Now().Add(h.TokenTTL)
	if h.Sessions != nil {
		if err := h.Sessions.Save(c.Request.Context(), out.User.ID, out.User.FullName, out.User.Email, h.TokenTTL); err != nil {
			h.Logger.WithError(err).WithField("user_id", out.User.ID).Error("save session failed")
			response.FromResult(c, result.Unexpected[auth.AuthResponse]("An unexpected error occurred"), status, "")
			return
		}
	}
	h.Cookies.SetAccess(c, out.Token, exp)
	c.JSON(status, response.Success(c, status, out, message, gin.H{"expires_at": exp.UTC()}))
}
