//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/session"
	"parkpass/internal/handler/api"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/commands"
	"parkpass/internal/usecase/queries"
	"parkpass/tests/common/builder"
	"parkpass/tests/common/httptest"
	commandsmock "parkpass/tests/mock/commands"
	queriesmock "parkpass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/sessions", fakeAuthMiddleware, s.handler.List)
	s.router.GET("/sessions/:id", fakeAuthMiddleware, s.handler.Get)
	s.router.POST("/sessions/:id/close", fakeAuthMiddleware, s.handler.Close)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *SessionHandlerTestSuite) TestList() {
	lotID := builder.NewLotBuilder().ID
	active := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.LotID = lotID }).BuildDomain()
	done := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.LotID = lotID }).Completed(time.Hour).BuildDomain()

	s.Run("success: operator lists a lot with filters", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), operatorActor(), queries.SessionListParams{
				LotID:  lotID,
				Status: session.FilterCompleted,
				Range:  session.RangeWeek,
			}).
			Return([]*session.Session{done}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/sessions?lotId="+lotID.String()+"&status=completed&range=week", nil, "operator")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(done.ID().String(), body[0].ID)
	})

	s.Run("success: driver lists own sessions with defaults", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), auth.Actor{ID: driverID, Role: auth.RoleDriver}, queries.SessionListParams{
				Status: session.FilterAll,
				Range:  session.RangeAll,
			}).
			Return([]*session.Session{active, done}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions", nil, "driver")

		var body []resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 400 Bad Request on invalid filters", func() {
		for _, q := range []string{"?status=parked", "?range=year", "?lotId=nope"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions"+q, nil, "operator")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 400 when an operator omits the lot", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrLotRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions", nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "lotId is required")
	})

	s.Run("error: 403 for a lot owned by someone else", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNotLotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions?lotId="+lotID.String(), nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestClose
// ================================================================================

func (s *SessionHandlerTestSuite) TestClose() {
	b := builder.NewSessionBuilder()
	active := b.BuildDomain()
	closed := builder.NewSessionBuilder().With(func(c *builder.SessionBuilder) { c.ID = b.ID }).Completed(61 * time.Minute).BuildDomain()
	l := builder.NewLotBuilder().With(func(lb *builder.LotBuilder) { lb.AvailableSpaces = 7 }).BuildDomain()
	url := "/sessions/" + b.ID.String() + "/close"

	s.Run("success: closes after the ownership check", func() {
		gomock.InOrder(
			s.mockQueries.EXPECT().GetByID(gomock.Any(), operatorActor(), b.ID).Return(active, nil).Times(1),
			s.mockCommands.EXPECT().CloseSession(gomock.Any(), b.ID).
				Return(&commands.CloseSessionResult{Session: closed, Lot: l}, nil).Times(1),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "operator")

		var body resdto.CloseSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Session.Status)
		s.Equal(7, body.AvailableSpaces)
		s.False(body.BillingDeferred)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions/invalid-uuid/close", nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 does not reach the command", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(nil, errs.ErrNotLotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 409 when already completed", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).Return(closed, nil).Times(1)
		s.mockCommands.EXPECT().CloseSession(gomock.Any(), b.ID).
			Return(nil, errs.Mark(session.ErrAlreadyCompleted, errs.ErrAlreadyCompleted)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Session already completed")
	})
}

func (s *SessionHandlerTestSuite) TestGet() {
	b := builder.NewSessionBuilder()

	s.Run("error: 404 Not Found for missing session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).
			Return(nil, errs.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+b.ID.String(), nil, "driver")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})

	s.Run("success: returns the session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/"+b.ID.String(), nil, "driver")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.VehicleNumber, body.VehicleNumber)
		s.Nil(body.ExitTime)
	})
}
