package api

import (
	"net/http"
	"time"

	reqdto "parkpass/internal/handler/dto/request"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	cmds  commands.BillingCommands
	clock clock.Clock
	loc   *time.Location
}

func NewBillingHandler(cmds commands.BillingCommands, clk clock.Clock, loc *time.Location) *BillingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BillingHandler{cmds: cmds, clock: clk, loc: loc}
}

// @Summary Reconcile invoices
// @Description Fold completed sessions missing from their month's invoices and count drifting totals
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReconcileRequest false "Billing month (defaults to the current month)"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /billing/reconcile [post]
func (h *BillingHandler) Reconcile(c *gin.Context) {
	var req reqdto.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	period, err := req.ToPeriod(h.clock.Now(), h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	report, err := h.cmds.ReconcileMonth(c.Request.Context(), period)
	if err != nil {
		abortWithUsecaseError(c, err, "Reconcile failed")
		return
	}
	res, err := resdto.FromReconcileReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reconcile failed", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
