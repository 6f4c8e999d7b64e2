package api

import (
	"errors"
	"net/http"

	"request-market/internal/domain/user"
	reqdto "request-market/internal/handler/dto/request"
	resdto "request-market/internal/handler/dto/response"
	"request-market/internal/handler/middleware"
	"request-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UrgentBoostHandler struct {
	commands commands.UrgentBoostCommands
	config   commands.CountryConfigStore
}

func NewUrgentBoostHandler(cmds commands.UrgentBoostCommands, config commands.CountryConfigStore) *UrgentBoostHandler {
	return &UrgentBoostHandler{
		commands: cmds,
		config:   config,
	}
}

// @Summary Start urgent boost
// @Description Create a pending payment for the fixed per-country boost price
// @Tags urgent-boost
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.UrgentBoostOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /requests/{id}/urgent-boost [post]
func (h *UrgentBoostHandler) Start(c *gin.Context) {
	id, actorID, role, ok := boostActorAndID(c)
	if !ok {
		return
	}

	order, err := h.commands.Start(c.Request.Context(), id, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBoostNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Urgent boost is not configured for this country",
			})
		case errors.Is(err, commands.ErrPaymentUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment gateway unavailable",
			})
		default:
			mapBoostError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUrgentBoostOrder(order))
}

// @Summary Confirm urgent boost
// @Description Settle the boost payment; the request surfaces first in search for 30 days
// @Tags urgent-boost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ConfirmBoostRequest true "Settled payment reference"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/urgent-boost/confirm [post]
func (h *UrgentBoostHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	var req reqdto.ConfirmBoostRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Confirm(c.Request.Context(), id, req.PaymentRef); err != nil {
		if errors.Is(err, commands.ErrPaymentNotPending) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment reference is not pending for this request",
			})
			return
		}
		mapBoostError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear urgent boost
// @Description Remove the urgency flag from an owned request
// @Tags urgent-boost
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id}/urgent-boost [delete]
func (h *UrgentBoostHandler) Clear(c *gin.Context) {
	id, actorID, role, ok := boostActorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Clear(c.Request.Context(), id, actorID, role); err != nil {
		mapBoostError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set boost price
// @Description Set the fixed urgent-boost price for a country. Admin only.
// @Tags urgent-boost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param country path string true "Country code"
// @Param request body reqdto.SetBoostPriceRequest true "Price"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/countries/{country}/urgent-boost-price [put]
func (h *UrgentBoostHandler) SetPrice(c *gin.Context) {
	country := c.Param("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Country code required",
		})
		return
	}

	var req reqdto.SetBoostPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.config.SetUrgentBoostPrice(c.Request.Context(), country, req.Amount, req.Currency); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func boostActorAndID(c *gin.Context) (uuid.UUID, uuid.UUID, user.Role, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return uuid.Nil, uuid.Nil, "", false
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, actorID, role, true
}

func mapBoostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Permission denied",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
