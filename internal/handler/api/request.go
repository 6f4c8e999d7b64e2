package api

import (
	"errors"
	"net/http"
	"strconv"

	"request-market/internal/domain/user"
	reqdto "request-market/internal/handler/dto/request"
	resdto "request-market/internal/handler/dto/response"
	"request-market/internal/handler/middleware"
	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, qs queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create request
// @Description Post a new marketplace request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Request payload"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	countryCode, _ := middleware.GetCountryCode(c)

	var req reqdto.CreateRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput(), userID, countryCode)
	if err != nil {
		switch {
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

// @Summary Get request
// @Description Get a request by ID. Contact fields are masked unless the viewer is entitled.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	viewerID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	view, err := h.queries.GetByID(c.Request.Context(), id, viewerID, role)
	if err != nil {
		h.mapQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Search requests
// @Description Search active requests. Urgent-boosted requests rank first.
// @Tags requests
// @Produce json
// @Param type query string false "Request type"
// @Param category_id query int false "Category ID"
// @Param country query string false "Country code"
// @Param q query string false "Text search over title and description"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.RequestListResponse
// @Router /requests [get]
func (h *RequestHandler) Search(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	filters := queries.RequestFilters{
		Type:        c.Query("type"),
		CountryCode: c.Query("country"),
		Search:      c.Query("q"),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category ID format",
			})
			return
		}
		cid := int32(id)
		filters.CategoryID = &cid
	}

	views, total, err := h.queries.Search(c.Request.Context(), filters, parsePage(c), viewerID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views, total))
}

// @Summary List own requests
// @Description List the authenticated user's requests newest-first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RequestListResponse
// @Failure 401 {object} map[string]string
// @Router /requests/mine [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, total, err := h.queries.ListByOwner(c.Request.Context(), userID, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views, total))
}

// @Summary Update request
// @Description Update an owned request's editable fields
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateRequestRequest true "Update payload"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	id, actorID, role, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToInput(), actorID, role); err != nil {
		h.mapCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete request
// @Description Delete an owned request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	id, actorID, role, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id, actorID, role); err != nil {
		h.mapCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Accept response
// @Description Accept a response; an active request closes in the same step
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AcceptResponseRequest true "Response to accept"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/accept [post]
func (h *RequestHandler) AcceptResponse(c *gin.Context) {
	id, actorID, role, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.AcceptResponseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.AcceptResponse(c.Request.Context(), id, req.ResponseID, actorID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrResponseNotLinked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Response does not belong to this request",
			})
		default:
			h.mapCommandError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear accepted response
// @Description Drop the acceptance pointer; a closed request reopens
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/clear-accepted [post]
func (h *RequestHandler) ClearAccepted(c *gin.Context) {
	id, actorID, role, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.ClearAccepted(c.Request.Context(), id, actorID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrNoAcceptedResponse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request has no accepted response",
			})
		default:
			h.mapCommandError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete request
// @Description Mark the request completed. Repeating the call is a no-op.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/complete [post]
func (h *RequestHandler) MarkCompleted(c *gin.Context) {
	id, actorID, role, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.MarkCompleted(c.Request.Context(), id, actorID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrNoAcceptedResponse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request has no accepted response",
			})
		default:
			h.mapCommandError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) actorAndID(c *gin.Context) (uuid.UUID, uuid.UUID, user.Role, bool) {
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

func (h *RequestHandler) mapCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	case errors.Is(err, commands.ErrResponseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Response not found",
		})
	case errors.Is(err, commands.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Permission denied",
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

func (h *RequestHandler) mapQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRequestNotFoundRead):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parsePage(c *gin.Context) queries.Page {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return queries.Page{Limit: limit, Offset: offset}
}
