package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lab-portal/internal/dto"
	"lab-portal/pkg/config"
	"lab-portal/pkg/session"
	"lab-portal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// PortalTestSuite drives the portal end to end against fake upstream
// services: login, gated navigation, a mutation and logout.
type PortalTestSuite struct {
	suite.Suite
	Echo     *echo.Echo
	Sessions *session.MemoryStore

	labsServer     *httptest.Server
	usersServer    *httptest.Server
	projectsServer *httptest.Server

	deletedLabs []string
}

func (s *PortalTestSuite) SetupTest() {
	s.labsServer = httptest.NewServer(http.HandlerFunc(s.handleLabs))
	s.usersServer = httptest.NewServer(http.HandlerFunc(s.handleUsers))
	s.projectsServer = httptest.NewServer(http.HandlerFunc(s.handleProjects))

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0"},
		Labs:     config.UpstreamConfig{BaseURL: s.labsServer.URL, Timeout: 5 * time.Second},
		Users:    config.UpstreamConfig{BaseURL: s.usersServer.URL, Timeout: 5 * time.Second},
		Projects: config.UpstreamConfig{BaseURL: s.projectsServer.URL, Timeout: 5 * time.Second},
		Session: config.SessionConfig{
			SecretKey:  "suite-secret",
			TTL:        time.Hour,
			CookieName: "lab_session",
		},
	}

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	s.Sessions = session.NewMemoryStore()
	InitRouter(e, cfg, s.Sessions, zap.NewNop())
	s.Echo = e
}

func (s *PortalTestSuite) TearDownTest() {
	s.labsServer.Close()
	s.usersServer.Close()
	s.projectsServer.Close()
}

func (s *PortalTestSuite) handleLabs(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/labs":
		json.NewEncoder(w).Encode([]dto.Lab{
			{LabID: "lab-1", Name: "Chemistry", Location: "B1", OccupactionType: "Available"},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/labs/equipment":
		json.NewEncoder(w).Encode([]string{"Microscope", "Centrifuge"})
	case r.Method == http.MethodDelete && r.URL.Path == "/labs":
		s.deletedLabs = append(s.deletedLabs, r.URL.Query().Get("labId"))
		w.WriteHeader(http.StatusOK)
	default:
		http.NotFound(w, r)
	}
}

func (s *PortalTestSuite) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/users/login":
		var payload dto.LoginDTO
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Password != "correct" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(dto.User{ID: 7, Name: "Ada", Email: payload.Email, Role: "employee", Position: "Biologist"})
	case r.Method == http.MethodGet && r.URL.Path == "/users":
		json.NewEncoder(w).Encode([]dto.User{{ID: 7, Name: "Ada"}, {ID: 9, Name: "Grace"}})
	default:
		http.NotFound(w, r)
	}
}

func (s *PortalTestSuite) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/projects":
		json.NewEncoder(w).Encode([]dto.Project{{ID: 1, Name: "Sequencing", LabID: "lab-1", ProjectLeader: 7, Status: "ACTIVE"}})
	case r.Method == http.MethodGet && r.URL.Path == "/projects/completed":
		json.NewEncoder(w).Encode([]dto.Project{})
	default:
		http.NotFound(w, r)
	}
}

func (s *PortalTestSuite) login(password string) *http.Response {
	body, _ := json.Marshal(dto.LoginDTO{Email: "ada@lab.example", Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)
	return res.Result()
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == "lab_session" {
			return c
		}
	}
	return nil
}

func (s *PortalTestSuite) TestDashboardRequiresSession() {
	req := httptest.NewRequest(http.MethodGet, "/views/dashboard", nil)
	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	s.Equal(http.StatusSeeOther, res.Code)
	s.Equal("/", res.Header().Get(echo.HeaderLocation))
	s.Empty(res.Body.String())
}

func (s *PortalTestSuite) TestLoginRejectsBadCredentials() {
	res := s.login("wrong")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
	s.Nil(sessionCookie(res))
	s.Equal(0, s.Sessions.Len())
}

func (s *PortalTestSuite) TestLoginBrowseLogout() {
	res := s.login("correct")
	s.Require().Equal(http.StatusOK, res.StatusCode)

	cookie := sessionCookie(res)
	s.Require().NotNil(cookie, "login must set the session cookie")
	s.True(cookie.HttpOnly)
	s.Require().Equal(1, s.Sessions.Len())

	// Dashboard with the session cookie.
	req := httptest.NewRequest(http.MethodGet, "/views/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var envelope struct {
		Body struct {
			CurrentUserName string        `json:"currentUserName"`
			Labs            []dto.LabView `json:"labs"`
		} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Equal("Ada", envelope.Body.CurrentUserName)
	s.Require().Len(envelope.Body.Labs, 1)
	s.False(envelope.Body.Labs[0].Occupancy.Occupied)

	// Logout removes the server-side record.
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.Sessions.Len())

	// The old cookie no longer opens anything.
	req = httptest.NewRequest(http.MethodGet, "/views/dashboard", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Equal(http.StatusSeeOther, rec.Code)
}

func (s *PortalTestSuite) TestNewProjectFormExcludesCurrentUser() {
	res := s.login("correct")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	cookie := sessionCookie(res)
	s.Require().NotNil(cookie)

	req := httptest.NewRequest(http.MethodGet, "/views/new-project", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var envelope struct {
		Body dto.NewProjectFormView `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Equal([]string{"Microscope", "Centrifuge"}, envelope.Body.EquipmentNames)
	s.Require().Len(envelope.Body.Employees, 1)
	s.Equal(int64(9), envelope.Body.Employees[0].ID)
}

func (s *PortalTestSuite) TestDeleteLabRequiresConfirmation() {
	res := s.login("correct")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	cookie := sessionCookie(res)
	s.Require().NotNil(cookie)

	// Without the confirmation flag the request never reaches upstream.
	req := httptest.NewRequest(http.MethodDelete, "/labs/lab-1", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "confirm=true")
	s.Empty(s.deletedLabs)

	req = httptest.NewRequest(http.MethodDelete, "/labs/lab-1?confirm=true", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"lab-1"}, s.deletedLabs)
}

func (s *PortalTestSuite) TestHealthzIsPublic() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)
	s.Equal(http.StatusOK, res.Code)
}

func TestPortalTestSuite(t *testing.T) {
	suite.Run(t, new(PortalTestSuite))
}
