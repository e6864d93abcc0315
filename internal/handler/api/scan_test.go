//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/handler/api"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/commands"
	"parkpass/tests/common/builder"
	"parkpass/tests/common/httptest"
	"parkpass/tests/common/testutil"
	commandsmock "parkpass/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScanCommands
	handler      *api.ScanHandler
}

func (s *ScanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScanCommands(s.mockCtrl)
	s.handler = api.NewScanHandler(s.mockCommands)

	s.router.POST("/scans", fakeAuthMiddleware, s.handler.Scan)
}

func (s *ScanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScanHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScanHandlerTestSuite))
}

type testCaseScan struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ScanHandlerTestSuite) TestScan() {
	url := "/scans"
	b := builder.NewSessionBuilder()
	reqBody := b.BuildScanRequestDTO("PARKPASS|driver|1|ABC|digest", "entry")
	opened := b.BuildDomain()

	s.Run("success: entry returns 201 with the opened session", func() {
		s.mockCommands.EXPECT().
			Scan(gomock.Any(), operatorActor(), commands.ScanInput{
				RawToken:  reqBody.Token,
				LotID:     reqBody.LotID,
				Gate:      reqBody.Gate,
				Direction: commands.DirectionEntry,
			}).
			Return(&commands.ScanResult{Direction: commands.DirectionEntry, Session: opened}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "operator")

		var body resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("entry", body.Direction)
		s.Equal(opened.ID().String(), body.Session.ID)
		s.Equal("active", body.Session.Status)
		s.False(body.BillingDeferred)
	})

	s.Run("success: exit returns 200 and flags deferred billing", func() {
		closed := builder.NewSessionBuilder().Completed(75 * time.Minute).BuildDomain()
		exitBody := testutil.DtoMap(s.T(), reqBody, testutil.Field("direction", "exit"))

		s.mockCommands.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.ScanResult{
				Direction:  commands.DirectionExit,
				Session:    closed,
				BillingErr: errs.ErrBillingDeferred,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, exitBody, "operator")

		var body resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Session.Status)
		s.NotNil(body.Session.ExitTime)
		s.InDelta(75.0, body.Session.DurationMinutes, 0.001)
		s.True(body.BillingDeferred)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseScan{
			{name: "missing token", mutate: testutil.Field("token", nil), expectCode: http.StatusBadRequest},
			{name: "missing lotId", mutate: testutil.Field("lotId", nil), expectCode: http.StatusBadRequest},
			{name: "malformed lotId", mutate: testutil.Field("lotId", "lot-1"), expectCode: http.StatusBadRequest},
			{name: "missing gate", mutate: testutil.Field("gate", nil), expectCode: http.StatusBadRequest},
			{name: "unknown direction", mutate: testutil.Field("direction", "sideways"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "operator")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
			expectedMsg    string
		}{
			{
				name:           "expired token",
				commandsError:  errs.Mark(accesstoken.ErrExpired, errs.ErrTokenRejected),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "EXPIRED",
				expectedMsg:    "QR code expired, request a new one",
			},
			{
				name:           "tampered token",
				commandsError:  errs.Mark(accesstoken.ErrIntegrityMismatch, errs.ErrTokenRejected),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "INTEGRITY_MISMATCH",
				expectedMsg:    "QR code has been tampered with",
			},
			{
				name:           "malformed token",
				commandsError:  errs.Mark(accesstoken.ErrMalformedToken, errs.ErrTokenRejected),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "MALFORMED_TOKEN",
				expectedMsg:    "Invalid QR code",
			},
			{
				name:           "replayed token",
				commandsError:  errs.ErrTokenReplayed,
				expectedStatus: http.StatusConflict,
				expectedCode:   "TOKEN_REPLAYED",
				expectedMsg:    "QR code already used",
			},
			{
				name:           "gate of another operator",
				commandsError:  errs.ErrNotLotOwner,
				expectedStatus: http.StatusForbidden,
				expectedCode:   "NOT_LOT_OWNER",
				expectedMsg:    "another operator",
			},
			{
				name:           "full lot",
				commandsError:  errs.Wrap(errs.ErrCapacityExceeded, "adjust"),
				expectedStatus: http.StatusConflict,
				expectedCode:   "CAPACITY_EXCEEDED",
				expectedMsg:    "Lot is full",
			},
			{
				name:           "duplicate active session",
				commandsError:  errs.ErrDuplicateActiveSession,
				expectedStatus: http.StatusConflict,
				expectedCode:   "DUPLICATE_ACTIVE_SESSION",
				expectedMsg:    "already has an active session",
			},
			{
				name:           "exit without active session",
				commandsError:  errs.Wrap(errs.ErrSessionNotFound, "no active session for driver"),
				expectedStatus: http.StatusNotFound,
				expectedCode:   "SESSION_NOT_FOUND",
				expectedMsg:    "Session not found",
			},
			{
				name:           "store timeout",
				commandsError:  errs.Mark(errors.New("deadline"), errs.ErrStoreTimeout),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   "STORE_TIMEOUT",
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "INTERNAL_ERROR",
				expectedMsg:    "Scan failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "operator")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				if tc.expectedCode != "" {
					httptest.AssertErrorCode(s.T(), rec, tc.expectedCode)
				}
			})
		}
	})
}
