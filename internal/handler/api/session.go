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

type SessionHandler struct {
	cmds commands.SessionCommands
	q    queries.SessionQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// @Summary List sessions
// @Description Operators list a lot's sessions; drivers list their own
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param lotId query string false "Lot ID (required for operators)"
// @Param status query string false "all | active | completed"
// @Param range query string false "today | week | month | all"
// @Success 200 {array} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var query reqdto.ListSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	sessions, err := h.q.List(c.Request.Context(), actor, params)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list sessions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessions(sessions))
}

// @Summary Get session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
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

	s, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Close session
// @Description Manually close an active session, e.g. when the exit gate scanner is down
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CloseSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/{id}/close [post]
func (h *SessionHandler) Close(c *gin.Context) {
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

	// ownership is checked by the read before the write
	if _, err := h.q.GetByID(c.Request.Context(), actor, id); err != nil {
		abortWithUsecaseError(c, err, "Failed to load session")
		return
	}

	result, err := h.cmds.CloseSession(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Close session failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCloseResult(result))
}
