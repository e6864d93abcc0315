package api

import (
	"net/http"
	"strconv"

	"parkpass/internal/domain/invoice"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/handler/middleware"
	"parkpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	q queries.InvoiceQueries
}

func NewInvoiceHandler(q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{q: q}
}

// @Summary Get monthly invoice
// @Description The authenticated driver's invoice for a billing month
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{year}/{month} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid period", nil)
		return
	}
	period, err := invoice.NewPeriod(year, month)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period", nil)
		return
	}

	inv, err := h.q.GetForDriver(c.Request.Context(), driverID, period)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load invoice")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}
