package api

import (
	"log/slog"
	"net/http"

	reqdto "parkpass/internal/handler/dto/request"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/handler/middleware"
	"parkpass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	cmds commands.ScanCommands
}

func NewScanHandler(cmds commands.ScanCommands) *ScanHandler {
	return &ScanHandler{cmds: cmds}
}

// @Summary Process gate scan
// @Description Validate a scanned QR token and open (entry) or close (exit) the driver's session
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanRequest true "Scan request"
// @Success 201 {object} resdto.ScanResponse "entry opened a session"
// @Success 200 {object} resdto.ScanResponse "exit closed a session"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /scans [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Scan(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Scan failed")
		return
	}

	if result.BillingErr != nil {
		slog.Warn("exit accepted with deferred billing",
			"session_id", result.Session.ID(),
			"error", result.BillingErr.Error())
	}

	status := http.StatusOK
	if result.Direction == commands.DirectionEntry {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromScanResult(result))
}
