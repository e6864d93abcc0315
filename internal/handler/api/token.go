package api

import (
	"net/http"

	reqdto "parkpass/internal/handler/dto/request"
	resdto "parkpass/internal/handler/dto/response"
	"parkpass/internal/handler/httperr"
	"parkpass/internal/handler/middleware"
	"parkpass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	cmds commands.TokenCommands
}

func NewTokenHandler(cmds commands.TokenCommands) *TokenHandler {
	return &TokenHandler{cmds: cmds}
}

// @Summary Mint access token
// @Description Mint a short-lived QR token for the authenticated driver's vehicle
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MintTokenRequest true "Mint token request"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /tokens [post]
func (h *TokenHandler) Mint(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.MintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Mint(c.Request.Context(), driverID, req.VehiclePlate)
	if err != nil {
		abortWithUsecaseError(c, err, "Mint token failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMintResult(result))
}
