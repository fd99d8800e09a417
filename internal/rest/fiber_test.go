package rest

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rest-core/internal/core"
	"rest-core/internal/model"
	"rest-core/internal/store"
)

func testApp(t *testing.T, bmc *mockBmc, authenticated bool) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	if authenticated {
		rc := testCtx(t)
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(CtxLocalsKey, rc)
			return c.Next()
		})
	}
	Mount(app.Group("/api"), nil, newWidgetHandlers(bmc).Routes())
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestFiber_CreateWidget(t *testing.T) {
	bmc := &mockBmc{}
	bmc.On("Create", mock.Anything, mock.Anything, mock.Anything, widgetForCreate{Name: "Widget"}).Return(u1, nil).Once()
	bmc.On("Get", mock.Anything, mock.Anything, mock.Anything, u1).Return(widget{ID: u1, Name: "Widget"}, nil).Once()

	resp, body := doRequest(t, testApp(t, bmc, true), "POST", "/api/widgets", `{"data": {"name": "Widget"}}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"data": {"id": "`+u1.String()+`", "name": "Widget"}}`, body)
	bmc.AssertExpectations(t)
}

func TestFiber_DeleteWidget(t *testing.T) {
	bmc := &mockBmc{}
	bmc.On("Delete", mock.Anything, mock.Anything, mock.Anything, u2).Return(nil).Once()

	resp, body := doRequest(t, testApp(t, bmc, true), "DELETE", "/api/widgets/"+u2.String(), "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
	bmc.AssertExpectations(t)
}

func TestFiber_ListWidgets(t *testing.T) {
	bmc := &mockBmc{}
	bmc.On("List", mock.Anything, mock.Anything, mock.Anything, []widgetFilter{{Name: "a"}}, (*model.ListOptions)(nil)).
		Return([]widget{{ID: u1, Name: "a"}}, nil).Once()

	resp, body := doRequest(t, testApp(t, bmc, true), "GET", `/api/widgets?filters=%7B%22name%22%3A%22a%22%7D`, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data": [{"id": "`+u1.String()+`", "name": "a"}]}`, body)
	bmc.AssertExpectations(t)
}

func TestFiber_PassesRequestCtxToController(t *testing.T) {
	bmc := &mockBmc{}
	bmc.On("Get", mock.Anything, mock.MatchedBy(func(rc *core.Ctx) bool { return !rc.IsRoot() }), mock.Anything, u1).
		Return(widget{ID: u1}, nil).Once()

	resp, _ := doRequest(t, testApp(t, bmc, true), "GET", "/api/widgets/"+u1.String(), "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	bmc.AssertExpectations(t)
}

func TestFiber_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", &model.ErrEntityNotFound{Entity: "widget", ID: u1}, 404, "NOT_FOUND"},
		{"rule violation", &model.ErrRuleViolation{Entity: "widget", Details: []model.RuleDetail{{Rule: "r", Message: "m"}}}, 422, "VALIDATION_FAILED"},
		{"unique", errors.Join(store.ErrUniqueViolation, errors.New("dup")), 409, "CONFLICT"},
		{"list options", model.ErrInvalidListOptions, 400, "INVALID_PARAM"},
		{"app error", NewAppError("FORBIDDEN", 403, "nope"), 403, "FORBIDDEN"},
		{"unknown", errors.New("db down"), 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmc := &mockBmc{}
			bmc.On("Get", mock.Anything, mock.Anything, mock.Anything, u1).Return(widget{}, tt.err)

			resp, body := doRequest(t, testApp(t, bmc, true), "GET", "/api/widgets/"+u1.String(), "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &errResp))
			assert.Equal(t, tt.wantCode, errResp.Error.Code)
		})
	}
}

func TestFiber_RequiresRequestCtx(t *testing.T) {
	bmc := &mockBmc{}

	resp, _ := doRequest(t, testApp(t, bmc, false), "GET", "/api/widgets/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, bmc.Calls)
}
