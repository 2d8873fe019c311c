package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicard/internal/database"
)

type AuthController struct {
	users UserStore
	auth  Authenticator
	now   func() time.Time
}

func NewAuthController(users UserStore, auth Authenticator) *AuthController {
	return &AuthController{users: users, auth: auth, now: time.Now}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a bearer token.
// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := ac.users.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondInternalError(c, err, "login")
		return
	}
	if err := ac.auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.auth.IssueToken(user.Username, ac.now())
	if err != nil {
		respondInternalError(c, err, "issue token")
		return
	}
	respondData(c, http.StatusOK, gin.H{"token": token})
}
