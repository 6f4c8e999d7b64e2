package api

import (
	"errors"
	"net/http"

	reqdto "request-market/internal/handler/dto/request"
	resdto "request-market/internal/handler/dto/response"
	"request-market/internal/handler/middleware"
	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResponseHandler struct {
	commands commands.ResponseCommands
	queries  queries.ResponseQueries
}

func NewResponseHandler(cmds commands.ResponseCommands, qs queries.ResponseQueries) *ResponseHandler {
	return &ResponseHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Submit response
// @Description Submit a response to a request. One response per responder per request.
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CreateResponseRequest true "Response payload"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/responses [post]
func (h *ResponseHandler) Create(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	responderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateResponseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput(requestID), responderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errors.Is(err, commands.ErrRequestNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot respond to a request that is not active",
			})
		case errors.Is(err, commands.ErrOwnRequest):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Cannot respond to your own request",
			})
		case errors.Is(err, commands.ErrAlreadyResponded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already responded to this request",
			})
		case errors.Is(err, commands.ErrCapabilityDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Business cannot respond to this request type",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List responses
// @Description List responses to a request. Owners see all; other viewers see only their own submission.
// @Tags responses
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ResponseListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id}/responses [get]
func (h *ResponseHandler) ListByRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	viewerID, _ := middleware.GetUserID(c)

	views, total, err := h.queries.ListByRequest(c.Request.Context(), requestID, viewerID, parsePage(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResponseViews(views, total))
}

// @Summary Update response
// @Description Edit an own, not yet accepted response
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Response ID"
// @Param request body reqdto.UpdateResponseRequest true "Update payload"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /responses/{id} [put]
func (h *ResponseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid response ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateResponseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToInput(), actorID); err != nil {
		h.mapMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete response
// @Description Withdraw a response. Accepted responses must be cleared by the owner first.
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Response ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /responses/{id} [delete]
func (h *ResponseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid response ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.commands.Delete(c.Request.Context(), id, actorID, role); err != nil {
		h.mapMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResponseHandler) mapMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResponseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Response not found",
		})
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Permission denied",
		})
	case errors.Is(err, commands.ErrResponseAccepted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Accepted response cannot be modified",
		})
	case errors.Is(err, commands.ErrAcceptanceNotCleared):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Acceptance must be cleared before deleting the response",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
