package httpserver

import (
	"net/http"

	usersvc "sneakerstore/internal/service/user"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginJSON struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func signupHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		u, err := users.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// loginFormHandler accepts the OAuth2 password form used by API tools;
// the username field carries the email.
func loginFormHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginForm
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password required"})
			return
		}
		issueToken(c, users, in.Username, in.Password)
	}
}

// loginJSONHandler accepts the JSON body used by the web client.
func loginJSONHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginJSON
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password required"})
			return
		}
		issueToken(c, users, in.Email, in.Password)
	}
}

func issueToken(c *gin.Context, users UserService, email, password string) {
	_, token, err := users.Login(c.Request.Context(), email, password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   users.TokenTTLSeconds(),
	})
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
