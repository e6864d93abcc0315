package api

import (
	"net/http"

	reqdto "parkpass/internal/handler/dto/request"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/handler/middleware"
	"parkpass/internal/usecase/commands"
	"parkpass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LotHandler struct {
	cmds    commands.LotCommands
	q       queries.LotQueries
	reports queries.ReportQueries
}

func NewLotHandler(cmds commands.LotCommands, q queries.LotQueries, reports queries.ReportQueries) *LotHandler {
	return &LotHandler{cmds: cmds, q: q, reports: reports}
}

// @Summary Create lot
// @Description Register a lot owned by the calling operator
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Create lot request"
// @Success 201 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	l, err := h.cmds.CreateLot(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Create lot failed")
		return
	}
	c.Header("Location", "/api/lots/"+l.ID().String())
	c.JSON(http.StatusCreated, resdto.FromLot(l))
}

// @Summary Get lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	l, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load lot")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLot(l))
}

// @Summary Lot availability
// @Description Free spaces for a lot, served from cache when possible
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/availability [get]
func (h *LotHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	available, err := h.q.Availability(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{LotID: id.String(), AvailableSpaces: available})
}

// @Summary Change lot status
// @Description Open or close a lot to new entries. Exits are always accepted.
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotStatusRequest true "New status"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lots/{id}/status [patch]
func (h *LotHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateLotStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	l, err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, status)
	if err != nil {
		abortWithUsecaseError(c, err, "Update status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLot(l))
}

// @Summary Lot dashboard
// @Description Hourly histogram, daily trend, top drivers and summary for a lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param from query string false "RFC 3339 lower bound (default: 30 days before to)"
// @Param to query string false "RFC 3339 upper bound (default: now)"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/dashboard [get]
func (h *LotHandler) Dashboard(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var query reqdto.DashboardQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}

	dashboard, err := h.reports.LotDashboard(c.Request.Context(), actor, id, query.From, query.To)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to build dashboard")
		return
	}
	res, err := resdto.FromDashboard(dashboard)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build dashboard", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
