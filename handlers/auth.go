package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/podlesnov2602-commits/Dars2/models"
	"github.com/podlesnov2602-commits/Dars2/utils"
)

// TokenIssuer issues a signed token for an authenticated identity.
type TokenIssuer interface {
	Issue(identity string) (string, error)
}

type AuthController struct {
	admin  models.AdminIdentity
	tokens TokenIssuer
}

func NewAuthController(admin models.AdminIdentity, tokens TokenIssuer) *AuthController {
	return &AuthController{admin: admin, tokens: tokens}
}

// Login checks the supplied credentials against the static admin identity
// and returns a bearer token. The failure message is the same for a wrong
// username and a wrong password so usernames cannot be enumerated.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.admin.Username)) == 1
	passwordOK := utils.CheckPassword(ac.admin.PasswordHash, req.Password) == nil
	if !usernameOK || !passwordOK {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	}

	token, err := ac.tokens.Issue(ac.admin.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Verify confirms a held token is still valid. The JWT middleware has
// already verified the token and stored the identity in the context.
func (ac *AuthController) Verify(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return c.JSON(http.StatusOK, models.VerifyResponse{
		Username:      username,
		Authenticated: true,
	})
}
