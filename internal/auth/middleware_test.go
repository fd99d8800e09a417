package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-core/internal/rest"
)

const testSecret = "test-secret"

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: rest.ErrorHandler})
	app.Use(Middleware(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		rc, err := rest.CtxFromFiber(c)
		if err != nil {
			return err
		}
		return c.SendString(rc.UserID().String())
	})
	return app
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateAccessToken(userID, []string{"admin"}, testSecret, AccessTokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := testApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_Rejects(t *testing.T) {
	expired, err := GenerateAccessToken(uuid.New(), nil, testSecret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := GenerateAccessToken(uuid.New(), nil, "other-secret", AccessTokenTTL)
	require.NoError(t, err)
	rootUser, err := GenerateAccessToken(uuid.Nil, nil, testSecret, AccessTokenTTL)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired", "Bearer " + expired},
		{"wrong key", "Bearer " + wrongKey},
		{"nil subject", "Bearer " + rootUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := testApp().Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestParseAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateAccessToken(userID, []string{"editor"}, testSecret, AccessTokenTTL)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, testSecret)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, []string{"editor"}, claims.Roles)
	assert.Equal(t, "rest-core", claims.Issuer)
}
