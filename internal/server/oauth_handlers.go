package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"pulse/internal/middleware"
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	oauthStateCookie = "oauth_state"
	googleUserInfo   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// googleUser is the subset of the userinfo response the app needs.
type googleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin handles GET /api/auth/google
func (s *Server) GoogleLogin(c *fiber.Ctx) error {
	if s.oauthConfig == nil {
		return models.RespondWithError(c, fiber.StatusNotImplemented,
			models.NewValidationError("Google login is not configured"))
	}

	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(s.oauthConfig.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles GET /api/auth/google/callback
func (s *Server) GoogleCallback(c *fiber.Ctx) error {
	if s.oauthConfig == nil {
		return models.RespondWithError(c, fiber.StatusNotImplemented,
			models.NewValidationError("Google login is not configured"))
	}

	if c.Query("state") == "" || c.Query("state") != c.Cookies(oauthStateCookie) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid OAuth state"))
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Redirect("/", fiber.StatusTemporaryRedirect)
	}

	token, err := s.oauthConfig.Exchange(c.Context(), code)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "oauth code exchange failed", "error", err)
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("OAuth exchange failed"))
	}

	info, err := s.fetchGoogleUser(c, token)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "oauth userinfo fetch failed", "error", err)
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Failed to fetch Google profile"))
	}

	user, err := s.findOrCreateGoogleUser(c, info)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	jwtToken, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Hand the token to the frontend via redirect.
	payload, _ := json.Marshal(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
	return c.Redirect(fmt.Sprintf("/?token=%s&user=%s",
		url.QueryEscape(jwtToken), url.QueryEscape(string(payload))), fiber.StatusTemporaryRedirect)
}

func (s *Server) fetchGoogleUser(c *fiber.Ctx, token *oauth2.Token) (*googleUser, error) {
	client := s.oauthConfig.Client(c.Context(), token)
	resp, err := client.Get(googleUserInfo)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != fiber.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var info googleUser
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("incomplete userinfo response")
	}
	return &info, nil
}

// findOrCreateGoogleUser looks a federated account up by its Google ID, and
// registers one with a generated username on first login.
func (s *Server) findOrCreateGoogleUser(c *fiber.Ctx, info *googleUser) (*models.User, error) {
	user, err := s.userRepo.GetByGoogleID(c.Context(), info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	username := strings.ToLower(strings.ReplaceAll(info.Name, " ", "_"))
	if username == "" {
		username = "user"
	}
	username = fmt.Sprintf("%s_%d", username, time.Now().Unix())

	user = &models.User{
		Username: username,
		Email:    info.Email,
		GoogleID: info.ID,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return nil, err
	}
	return user, nil
}
