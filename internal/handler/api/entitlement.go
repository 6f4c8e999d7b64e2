package api

import (
	"net/http"

	"request-market/internal/handler/middleware"
	"request-market/internal/pkg/clock"
	"request-market/internal/usecase/entitlement"

	"github.com/gin-gonic/gin"
)

type EntitlementHandler struct {
	evaluator *entitlement.Evaluator
	clock     clock.Clock
}

func NewEntitlementHandler(evaluator *entitlement.Evaluator, clk clock.Clock) *EntitlementHandler {
	return &EntitlementHandler{
		evaluator: evaluator,
		clock:     clk,
	}
}

// @Summary Get entitlements
// @Description Get the authenticated user's quota standing for the current month
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entitlement.Entitlements
// @Failure 401 {object} map[string]string
// @Router /me/entitlements [get]
func (h *EntitlementHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	ent := h.evaluator.GetEntitlements(c.Request.Context(), userID, role, h.clock.Now())
	c.JSON(http.StatusOK, ent)
}
