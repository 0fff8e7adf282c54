package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/application/serviceimpl"
	"taskboard/infrastructure/events"
	"taskboard/infrastructure/memory"
	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
	"taskboard/interfaces/api/routes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")

	userSvc := serviceimpl.NewUserService(memory.NewUserRepository(), nil, "test-secret")
	todoSvc := serviceimpl.NewTodoService(memory.NewTodoRepository(), events.NewNoopPublisher())
	dashSvc := serviceimpl.NewDashboardService(todoSvc)

	h := handlers.NewHandlers(&handlers.Services{
		UserService:      userSvc,
		TodoService:      todoSvc,
		DashboardService: dashSvc,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	routes.SetupRoutes(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"username": username,
		"password": "pw",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]any)
	return user["id"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRegisterAndDuplicate(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"username": "alice",
		"password": "pw",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Registration successful", body["message"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.NotEmpty(t, user["id"])

	resp, body = doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"username": "alice",
		"password": "other",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errInfo["code"])
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", fiber.Map{
		"username": "no-password",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errInfo["code"])
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "bob")

	resp, body := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"username": "bob",
		"password": "pw",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "bob", body["user"].(map[string]any)["username"])

	// password ผิดและ username ไม่มีต้องตอบเหมือนกัน
	resp, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"username": "bob",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"username": "ghost",
		"password": "pw",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "carol")

	resp, body := doJSON(t, app, "POST", "/auth/verify-email", fiber.Map{
		"username": "carol",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "carol", body["user"].(map[string]any)["username"])

	resp, _ = doJSON(t, app, "POST", "/auth/verify-email", fiber.Map{
		"username": "nobody",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/auth/reset-password", fiber.Map{
		"username":    "carol",
		"newPassword": "fresh",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"username": "carol",
		"password": "fresh",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedProfile(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "dave")

	// ไม่มี token
	resp, _ := doJSON(t, app, "GET", "/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	_, loginBody := doJSON(t, app, "POST", "/auth/login", fiber.Map{
		"username": "dave",
		"password": "pw",
	})
	token := loginBody["token"].(string)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTodoCRUDOverHTTP(t *testing.T) {
	app := newTestApp(t)
	userID := registerUser(t, app, "erin")

	// list ว่างตอบ [] ไม่ใช่ null
	req := httptest.NewRequest("GET", "/todos?userId="+userID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)))

	// create
	resp, body := doJSON(t, app, "POST", "/todos", fiber.Map{
		"userId":   userID,
		"task":     "write tests",
		"priority": "high",
		"dueDate":  "2026-09-15",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Task created", body["message"])

	result := body["result"].(map[string]any)
	todoID := int64(result["id"].(float64))
	assert.Equal(t, "write tests", result["task"])
	assert.Equal(t, "high", result["priority"])

	// status update ส่ง todoId เป็น string ก็ได้
	resp, body = doJSON(t, app, "PATCH", "/todos", fiber.Map{
		"userId":    userID,
		"todoId":    fmt.Sprintf("%d", todoID),
		"completed": true,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["result"].(map[string]any)["completed"])

	// partial update
	resp, body = doJSON(t, app, "PUT", "/todos", fiber.Map{
		"userId": userID,
		"todoId": todoID,
		"task":   "write better tests",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "write better tests", body["result"].(map[string]any)["task"])

	// update ที่ไม่มี field ไหนเลยตอบ 400
	resp, _ = doJSON(t, app, "PUT", "/todos", fiber.Map{
		"userId": userID,
		"todoId": todoID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// delete
	resp, body = doJSON(t, app, "DELETE", "/todos", fiber.Map{
		"userId": userID,
		"todoId": todoID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["result"])

	// ลบซ้ำ = no-op success, result เป็น null
	resp, body = doJSON(t, app, "DELETE", "/todos", fiber.Map{
		"userId": userID,
		"todoId": todoID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, body["result"])
}

func TestTodoDeleteViaQuery(t *testing.T) {
	app := newTestApp(t)
	userID := registerUser(t, app, "frank")

	_, body := doJSON(t, app, "POST", "/todos", fiber.Map{
		"userId": userID,
		"task":   "query delete",
	})
	todoID := int64(body["result"].(map[string]any)["id"].(float64))

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/todos?userId=%s&todoId=%d", userID, todoID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTodoListRequiresUserID(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/todos", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/todos?userId=not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardEndpoints(t *testing.T) {
	app := newTestApp(t)
	userID := registerUser(t, app, "grace")

	_, _ = doJSON(t, app, "POST", "/todos", fiber.Map{
		"userId":   userID,
		"task":     "summary fodder",
		"category": "Work",
	})

	resp, body := doJSON(t, app, "GET", "/dashboard/summary?userId="+userID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(0), body["completionRate"])

	resp, _ = doJSON(t, app, "GET", "/dashboard/focus?userId="+userID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/dashboard/planner?userId="+userID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/dashboard/recent?userId="+userID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/dashboard/summary", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
