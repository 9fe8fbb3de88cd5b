package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/middleware"
	"github.com/teamarena/gateway/internal/tournament/service"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
	tournamentModel "github.com/teamarena/gateway/internal/tournament/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, slug string, userID int64) (*tournamentModel.Detail, error) {
	args := m.Called(ctx, slug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tournamentModel.Detail), args.Error(1)
}

func (m *mockService) Join(ctx context.Context, tournamentID int64, slug string, userID int64) (*tournamentModel.Detail, string, error) {
	args := m.Called(ctx, tournamentID, slug, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*tournamentModel.Detail), args.String(1), args.Error(2)
}

func (m *mockService) Participants(ctx context.Context, tournamentID int64) (*tournamentModel.ParticipantList, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tournamentModel.ParticipantList), args.Error(1)
}

func (m *mockService) MyTournaments(ctx context.Context, userID int64, filters tournamentModel.Filters) ([]tournamentModel.Tournament, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tournamentModel.Tournament), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler, user *sessionModel.CurrentUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) { middleware.SetUser(c, user) })
	}
	tournaments := r.Group("/tournaments")
	tournaments.GET("/:slug", h.Get)
	tournaments.POST("/:slug/join", h.Join)
	tournaments.GET("/:slug/participants", h.Participants)
	r.GET("/my/tournaments", h.MyTournaments)
	return r
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Get", mock.Anything, "spring-cup", int64(7)).Return(&tournamentModel.Detail{
			Tournament: &tournamentModel.Tournament{ID: 11, Slug: "spring-cup", Status: tournamentModel.StatusOpen},
			CanJoin:    true,
		}, nil)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

		w := doJSON(router, "GET", "/tournaments/spring-cup", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var detail tournamentModel.Detail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.True(t, detail.CanJoin)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Get", mock.Anything, "ghost", int64(0)).Return(nil, tournamentModel.ErrNotFound)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), nil)

		w := doJSON(router, "GET", "/tournaments/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Join(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Join", mock.Anything, int64(11), "spring-cup", int64(7)).Return(&tournamentModel.Detail{
			Tournament: &tournamentModel.Tournament{ID: 11},
			HasJoined:  true,
		}, "Successfully registered", nil)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

		w := doJSON(router, "POST", "/tournaments/11/join", map[string]string{"slug": "spring-cup"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Successfully registered")
	})

	t.Run("anonymous caller gets the precondition message", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Join", mock.Anything, int64(11), "spring-cup", int64(0)).
			Return(nil, "", tournamentModel.ErrNotAuthenticated)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), nil)

		w := doJSON(router, "POST", "/tournaments/11/join", map[string]string{"slug": "spring-cup"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "must be logged in to join a tournament")
	})

	t.Run("second join in flight conflicts", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Join", mock.Anything, int64(11), "spring-cup", int64(7)).
			Return(nil, "", tournamentModel.ErrJoinInFlight)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

		w := doJSON(router, "POST", "/tournaments/11/join", map[string]string{"slug": "spring-cup"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("closed registration conflicts", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Join", mock.Anything, int64(11), "spring-cup", int64(7)).
			Return(nil, "", tournamentModel.ErrRegistrationClosed)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

		w := doJSON(router, "POST", "/tournaments/11/join", map[string]string{"slug": "spring-cup"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "REGISTRATION_CLOSED")
	})

	t.Run("missing slug", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

		w := doJSON(router, "POST", "/tournaments/11/join", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Join")
	})
}

func TestHandler_Participants(t *testing.T) {
	mockSvc := new(mockService)
	mockSvc.On("Participants", mock.Anything, int64(11)).Return(&tournamentModel.ParticipantList{
		TournamentType: "team",
		Participants: []tournamentModel.Participant{
			{RegistrationID: 1, Type: tournamentModel.ParticipantTypeTeam, TeamName: "Night Owls"},
		},
	}, nil)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), nil)

	w := doJSON(router, "GET", "/tournaments/11/participants", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Night Owls")
}

func TestHandler_MyTournaments(t *testing.T) {
	mockSvc := new(mockService)
	mockSvc.On("MyTournaments", mock.Anything, int64(7), tournamentModel.Filters{
		Status: tournamentModel.StatusFinished,
		Format: "BO3",
	}).Return([]tournamentModel.Tournament{{ID: 2}}, nil)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()), &sessionModel.CurrentUser{ID: 7})

	w := doJSON(router, "GET", "/my/tournaments?status=Terminé&format=BO3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)
}
