//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/handler/api"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/commands"
	"parkpass/tests/common/httptest"
	commandsmock "parkpass/tests/mock/commands"
	queriesmock "parkpass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BillingHandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockInvoiceQueries
	mockCommands *commandsmock.MockBillingCommands
}

var billingNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func (s *BillingHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBillingCommands(s.mockCtrl)

	invoices := api.NewInvoiceHandler(s.mockQueries)
	billing := api.NewBillingHandler(s.mockCommands, clock.NewMockClock(billingNow), time.UTC)

	s.router.GET("/invoices/:year/:month", fakeAuthMiddleware, invoices.Get)
	s.router.POST("/billing/reconcile", fakeAuthMiddleware, billing.Reconcile)
}

func (s *BillingHandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlersSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlersTestSuite))
}

func (s *BillingHandlersTestSuite) TestGetInvoice() {
	period := invoice.Period{Year: 2026, Month: time.May}
	tier, err := pricing.NewTier(pricing.MembershipType("standard"), decimal.NewFromInt(5), decimal.NewFromInt(30), nil)
	s.Require().NoError(err)
	inv := invoice.Reconstruct(
		uuid.New(), driverID, period,
		1,
		decimal.RequireFromString("0.75"), decimal.RequireFromString("3.75"), decimal.RequireFromString("3.75"),
		map[string]decimal.Decimal{"2026-05-01": decimal.RequireFromString("3.75")},
		[]uuid.UUID{uuid.New()},
		tier, invoice.StatusPending,
		time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		1, billingNow, billingNow,
	)

	s.Run("success: returns the driver's invoice", func() {
		s.mockQueries.EXPECT().GetForDriver(gomock.Any(), driverID, period).Return(inv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/2026/5", nil, "driver")

		var body resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.TotalSessions)
		s.True(decimal.RequireFromString("3.75").Equal(body.AmountDue))
		s.Equal("2026-06-05", body.DueDate)
		s.Require().Len(body.DailyTotals, 1)
		s.Equal("2026-05-01", body.DailyTotals[0].Day)
		s.Equal("standard", body.Tier.MembershipType)
		s.Nil(body.Tier.MonthlyThreshold)
	})

	s.Run("error: 400 for an invalid period", func() {
		for _, path := range []string{"/invoices/2026/13", "/invoices/2026/0", "/invoices/abc/5", "/invoices/1999/5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "driver")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid period")
		}
	})

	s.Run("error: 404 when nothing was billed", func() {
		s.mockQueries.EXPECT().GetForDriver(gomock.Any(), driverID, invoice.Period{Year: 2026, Month: time.April}).
			Return(nil, errs.ErrInvoiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/2026/4", nil, "driver")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}

func (s *BillingHandlersTestSuite) TestReconcile() {
	s.Run("success: defaults to the current month", func() {
		current := invoice.Period{Year: 2026, Month: time.May}
		s.mockCommands.EXPECT().ReconcileMonth(gomock.Any(), current).
			Return(&commands.ReconcileReport{Period: current, Scanned: 4, Folded: 1, Drifting: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/reconcile", nil, "admin")

		var body resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-05", body.Period)
		s.Equal(4, body.Scanned)
		s.Equal(1, body.Folded)
	})

	s.Run("success: explicit month", func() {
		want := invoice.Period{Year: 2026, Month: time.March}
		s.mockCommands.EXPECT().ReconcileMonth(gomock.Any(), want).
			Return(&commands.ReconcileReport{Period: want}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/reconcile", map[string]any{"year": 2026, "month": 3}, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an out of range month", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/reconcile", map[string]any{"month": 13}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
