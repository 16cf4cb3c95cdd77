package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/config"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/kvstore"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/printview"
	authService "github.com/cmlabs-hris/employee-dashboard-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/employee-dashboard-go/internal/service/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	store   kvstore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	sessions, err := authService.NewSessionService(ctx, store, "admin", "admin123")
	require.NoError(t, err)
	jwtService, err := jwt.NewJWTService("test-secret", "1h")
	require.NoError(t, err)
	renderer, err := printview.NewRenderer()
	require.NoError(t, err)

	employees := employeeService.NewEmployeeService(ctx, store)
	app := config.AppConfig{
		Name:        "employee-dashboard",
		Version:     "test",
		Env:         config.EnvDevelopment,
		LogLevel:    "error",
		FrontendURL: "http://localhost:3000",
	}

	router := NewRouter(app, jwtService, sessions,
		NewAuthHandler(jwtService, sessions, 0),
		NewEmployeeHandler(employees, fixtures.DefaultReferenceData(), renderer),
	)
	return &testServer{t: t, handler: router, store: store}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) login() string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var tokens auth.TokenResponse
	decode(s.t, rec, &tokens)
	require.NotEmpty(s.t, tokens.AccessToken)
	return tokens.AccessToken
}

func TestHeartbeat(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid username or password", env.Error.Message)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env = decode(t, rec, nil)
	assert.Contains(t, env.Error.Details, "username")
	assert.Contains(t, env.Error.Details, "password")

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tokens auth.TokenResponse
	decode(t, rec, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "admin", tokens.User.Username)
	assert.Positive(t, tokens.AccessTokenExpiresIn)
}

func TestSession(t *testing.T) {
	s := newTestServer(t)

	var session struct {
		State string         `json:"state"`
		User  *auth.Identity `json:"user"`
	}
	decode(t, s.do(http.MethodGet, "/api/v1/auth/session", "", ""), &session)
	assert.Equal(t, "unauthenticated", session.State)
	assert.Nil(t, session.User)

	s.login()
	decode(t, s.do(http.MethodGet, "/api/v1/auth/session", "", ""), &session)
	assert.Equal(t, "authenticated", session.State)
	require.NotNil(t, session.User)
	assert.Equal(t, "admin", session.User.Username)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/employees", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/employees", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/employees", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, err := s.store.Get(context.Background(), kvstore.KeyAuth)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	// A fresh login is accepted, the old token stays revoked
	fresh := s.login()
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/employees", fresh, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/employees", token, "").Code)
}

func TestListEmployees_WithFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	var list employee.ListEmployeeResponse
	decode(t, s.do(http.MethodGet, "/api/v1/employees", token, ""), &list)
	assert.Len(t, list.Employees, 4)
	assert.Equal(t, employee.Stats{Total: 4, Active: 3, Inactive: 1}, list.Stats)
	assert.True(t, list.Filters.IsEmpty())

	decode(t, s.do(http.MethodGet, "/api/v1/employees?gender=Female", token, ""), &list)
	require.Len(t, list.Employees, 2)
	assert.Equal(t, "Priya Patel", list.Employees[0].Name)
	assert.Equal(t, "Sneha Reddy", list.Employees[1].Name)
	assert.Equal(t, employee.Stats{Total: 4, Active: 3, Inactive: 1}, list.Stats)

	// Filters stick until changed
	decode(t, s.do(http.MethodGet, "/api/v1/employees?search=SNEHA", token, ""), &list)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, employee.EmployeeFilters{Search: "SNEHA", Gender: "Female"}, list.Filters)

	decode(t, s.do(http.MethodGet, "/api/v1/employees?gender=all&search=", token, ""), &list)
	assert.Len(t, list.Employees, 4)
	assert.True(t, list.Filters.IsEmpty())

	rec := s.do(http.MethodGet, "/api/v1/employees?status=retired", token, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFilterEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	var list employee.ListEmployeeResponse
	rec := s.do(http.MethodPatch, "/api/v1/employees/filters", token, `{"status":"inactive"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, "Amit Kumar", list.Employees[0].Name)

	var filters employee.EmployeeFilters
	decode(t, s.do(http.MethodGet, "/api/v1/employees/filters", token, ""), &filters)
	assert.Equal(t, employee.EmployeeFilters{Status: "inactive"}, filters)

	rec = s.do(http.MethodPatch, "/api/v1/employees/filters", token, `{"gender":"Robot"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	decode(t, s.do(http.MethodDelete, "/api/v1/employees/filters", token, ""), &list)
	assert.Len(t, list.Employees, 4)
	assert.True(t, list.Filters.IsEmpty())
}

func TestEmployeeCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	body := `{"name":"Kiran Rao","gender":"Other","dob":"1990-01-01","state":"Delhi","image":"","active":true}`
	rec := s.do(http.MethodPost, "/api/v1/employees", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created employee.Employee
	decode(t, rec, &created)
	assert.Regexp(t, `^EMP\d{4}$`, created.ID)
	assert.Equal(t, "Kiran Rao", created.Name)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	var got employee.Employee
	decode(t, s.do(http.MethodGet, "/api/v1/employees/"+created.ID, token, ""), &got)
	assert.Equal(t, created.ID, got.ID)

	update := `{"name":"Kiran R","gender":"Other","dob":"1990-01-01","state":"Goa","image":"","active":true}`
	rec = s.do(http.MethodPut, "/api/v1/employees/"+created.ID, token, update)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Equal(t, "Kiran R", got.Name)
	assert.Equal(t, "Goa", got.State)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	rec = s.do(http.MethodPatch, "/api/v1/employees/"+created.ID+"/status", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.False(t, got.Active)

	var stats employee.Stats
	decode(t, s.do(http.MethodGet, "/api/v1/employees/stats", token, ""), &stats)
	assert.Equal(t, employee.Stats{Total: 5, Active: 3, Inactive: 2}, stats)

	rec = s.do(http.MethodDelete, "/api/v1/employees/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/employees/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEmployee_Validation(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	body := `{"name":" ","gender":"Robot","dob":"2999-01-01","state":"Atlantis","image":"http://x/y.png"}`
	rec := s.do(http.MethodPost, "/api/v1/employees", token, body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decode(t, rec, nil)
	require.NotNil(t, env.Error)
	for _, field := range []string{"name", "gender", "dob", "state", "image"} {
		assert.Contains(t, env.Error.Details, field)
	}

	var stats employee.Stats
	decode(t, s.do(http.MethodGet, "/api/v1/employees/stats", token, ""), &stats)
	assert.Equal(t, 4, stats.Total)
}

func TestMissingIDIsNoOp(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	update := `{"name":"Ghost","gender":"Male","dob":"1990-01-01","state":"Goa","image":"","active":true}`
	rec := s.do(http.MethodPut, "/api/v1/employees/EMP9999", token, update)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec, nil)
	assert.True(t, env.Success)
	assert.Empty(t, env.Data)

	assert.Equal(t, http.StatusOK, s.do(http.MethodPatch, "/api/v1/employees/EMP9999/status", token, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/v1/employees/EMP9999", token, "").Code)

	var stats employee.Stats
	decode(t, s.do(http.MethodGet, "/api/v1/employees/stats", token, ""), &stats)
	assert.Equal(t, employee.Stats{Total: 4, Active: 3, Inactive: 1}, stats)
}

func TestPrintViews(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodGet, "/api/v1/employees/EMP0003/print", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Employee Details - Amit Kumar")
	assert.Contains(t, rec.Body.String(), "Dec 03, 1988")

	rec = s.do(http.MethodGet, "/api/v1/employees/EMP9999/print", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.do(http.MethodGet, "/api/v1/employees?status=active", token, "")
	rec = s.do(http.MethodGet, "/api/v1/employees/print", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rahul Sharma")
	assert.NotContains(t, rec.Body.String(), "Amit Kumar")
}

func TestReferenceData(t *testing.T) {
	s := newTestServer(t)

	var ref employee.ReferenceData
	rec := s.do(http.MethodGet, "/api/v1/reference", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ref)
	assert.Equal(t, []employee.Gender{employee.Male, employee.Female, employee.Other}, ref.Genders)
	assert.Contains(t, ref.Regions, "Maharashtra")
}

func TestProtectedRoutesRejectNonAccessToken(t *testing.T) {
	s := newTestServer(t)
	s.login()

	_, refresh, err := jwtauth.New("HS256", []byte("test-secret"), nil).Encode(map[string]interface{}{
		jwt.ClaimUsername: "admin",
		jwt.ClaimType:     "refresh",
		"exp":             time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := s.do(http.MethodGet, "/api/v1/employees", refresh, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
