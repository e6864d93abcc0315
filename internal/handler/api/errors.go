package api

import (
	"net/http"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// First match wins; keep the more specific marks above the generic ones.
var errorMappings = []errorMapping{
	{target: errs.ErrTokenReplayed, status: http.StatusConflict, code: "TOKEN_REPLAYED", msg: "QR code already used"},
	{target: errs.ErrNotLotOwner, status: http.StatusForbidden, code: "NOT_LOT_OWNER", msg: "Gate belongs to another operator"},
	{target: errs.ErrLotNotFound, status: http.StatusNotFound, code: "LOT_NOT_FOUND", msg: "Lot not found"},
	{target: errs.ErrSessionNotFound, status: http.StatusNotFound, code: "SESSION_NOT_FOUND", msg: "Session not found"},
	{target: errs.ErrInvoiceNotFound, status: http.StatusNotFound, code: "INVOICE_NOT_FOUND", msg: "Invoice not found"},
	{target: errs.ErrTierNotFound, status: http.StatusNotFound, code: "TIER_NOT_FOUND", msg: "Pricing tier not found"},
	{target: errs.ErrCapacityExceeded, status: http.StatusConflict, code: "CAPACITY_EXCEEDED", msg: "Lot is full"},
	{target: errs.ErrLotInactive, status: http.StatusConflict, code: "LOT_INACTIVE", msg: "Lot is closed"},
	{target: errs.ErrDuplicateActiveSession, status: http.StatusConflict, code: "DUPLICATE_ACTIVE_SESSION", msg: "Driver already has an active session"},
	{target: errs.ErrAlreadyCompleted, status: http.StatusConflict, code: "ALREADY_COMPLETED", msg: "Session already completed"},
	{target: errs.ErrInvoiceFoldConflict, status: http.StatusConflict, code: "INVOICE_FOLD_CONFLICT", msg: "Invoice is being updated, please retry"},
	{target: errs.ErrConcurrentUpdate, status: http.StatusConflict, code: "CONCURRENT_UPDATE", msg: "Resource is being updated, please retry"},
	{target: errs.ErrStoreTimeout, status: http.StatusServiceUnavailable, code: "STORE_TIMEOUT", msg: "Service temporarily unavailable"},
	{target: queries.ErrInvalidRange, status: http.StatusBadRequest, code: "INVALID_RANGE", msg: "Invalid report range"},
	{target: queries.ErrLotRequired, status: http.StatusBadRequest, code: "LOT_REQUIRED", msg: "lotId is required"},
	{target: errs.ErrDomainValidation, status: http.StatusBadRequest, code: "VALIDATION_FAILED", msg: "Invalid request"},
}

// abortWithUsecaseError translates usecase errors into the public error envelope.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	if errs.Is(err, errs.ErrTokenRejected) {
		kind, _ := accesstoken.KindOf(err)
		httperr.AbortWithCode(c, http.StatusBadRequest, err, string(kind), accesstoken.UserMessage(err), nil)
		return
	}
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, err, m.code, m.msg, nil)
			return
		}
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, err, "INTERNAL_ERROR", fallback, nil)
}
