package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/koa-member-api/api/middleware"
	"github.com/sunthewhat/koa-member-api/common"
	"github.com/sunthewhat/koa-member-api/common/util"
	"github.com/sunthewhat/koa-member-api/type/shared"
)

func setupConfig(t *testing.T) {
	t.Helper()
	previous := common.Config
	secret := "middleware-secret"
	common.Config = &shared.Config{JWTSecret: &secret}
	t.Cleanup(func() { common.Config = previous })
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/badge/:koalm", middleware.Jwt(), middleware.RequireSelfOrAdmin("koalm"), func(c *fiber.Ctx) error {
		userID, _ := middleware.GetUserFromContext(c)
		return c.JSON(fiber.Map{"user_id": userID, "role": middleware.GetRoleFromContext(c)})
	})
	return app
}

func TestJwtAndRequireSelfOrAdmin(t *testing.T) {
	setupConfig(t)

	memberToken, err := util.GenerateAuthToken("KOA-1001", shared.RoleMember)
	require.NoError(t, err)
	adminToken, err := util.GenerateAuthToken("KOA-0001", shared.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		authorization  string
		wantStatusCode int
		checkResponse  func(t *testing.T, body map[string]any)
	}{
		{
			name:           "member reads own badge",
			path:           "/badge/KOA-1001",
			authorization:  "Bearer " + memberToken,
			wantStatusCode: fiber.StatusOK,
			checkResponse: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "KOA-1001", body["user_id"])
				assert.Equal(t, shared.RoleMember, body["role"])
			},
		},
		{
			name:           "member reads other badge",
			path:           "/badge/KOA-1002",
			authorization:  "Bearer " + memberToken,
			wantStatusCode: fiber.StatusForbidden,
			checkResponse: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
			},
		},
		{
			name:           "admin reads any badge",
			path:           "/badge/KOA-1002",
			authorization:  "Bearer " + adminToken,
			wantStatusCode: fiber.StatusOK,
			checkResponse: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "KOA-0001", body["user_id"])
				assert.Equal(t, shared.RoleAdmin, body["role"])
			},
		},
		{
			name:           "missing token",
			path:           "/badge/KOA-1001",
			wantStatusCode: fiber.StatusUnauthorized,
			checkResponse: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "JWT validation failure", body["message"])
			},
		},
		{
			name:           "garbage token",
			path:           "/badge/KOA-1001",
			authorization:  "Bearer not.a.token",
			wantStatusCode: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			if tt.checkResponse != nil {
				raw, _ := io.ReadAll(resp.Body)
				var body map[string]any
				require.NoError(t, json.Unmarshal(raw, &body))
				tt.checkResponse(t, body)
			}
		})
	}
}

func TestRequireSelfOrAdmin_NoContext(t *testing.T) {
	app := fiber.New()
	app.Get("/badge/:koalm", middleware.RequireSelfOrAdmin("koalm"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/badge/KOA-1001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRecover(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Recover())
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("render exploded")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCors(t *testing.T) {
	previous := common.Config
	origin := "https://members.koa.org.in"
	common.Config = &shared.Config{Cors: []*string{&origin}}
	t.Cleanup(func() { common.Config = previous })

	app := fiber.New()
	app.Use(middleware.Cors())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", origin)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, origin, resp.Header.Get("Access-Control-Allow-Origin"))
}
