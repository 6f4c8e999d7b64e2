//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"request-market/internal/domain/user"
	"request-market/internal/handler/api"
	resdto "request-market/internal/handler/dto/response"
	"request-market/internal/usecase/commands"
	"request-market/tests/common/httptest"
	commandsmock "request-market/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UrgentBoostHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUrgentBoostCommands
	mockConfig   *commandsmock.MockCountryConfigStore
	handler      *api.UrgentBoostHandler
	actorID      uuid.UUID
}

func (s *UrgentBoostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUrgentBoostCommands(s.mockCtrl)
	s.mockConfig = commandsmock.NewMockCountryConfigStore(s.mockCtrl)
	s.handler = api.NewUrgentBoostHandler(s.mockCommands, s.mockConfig)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleUser)
		c.Set("country_code", "US")
		c.Next()
	}

	// Setup routes
	s.router.POST("/requests/:id/urgent-boost", authMiddleware, s.handler.Start)
	s.router.POST("/requests/:id/urgent-boost/confirm", authMiddleware, s.handler.Confirm)
	s.router.DELETE("/requests/:id/urgent-boost", authMiddleware, s.handler.Clear)
}

func (s *UrgentBoostHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUrgentBoostHandlerSuite(t *testing.T) {
	suite.Run(t, new(UrgentBoostHandlerTestSuite))
}

// ================================================================================
// TestStart
// ================================================================================

func (s *UrgentBoostHandlerTestSuite) TestStart() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/urgent-boost"

	s.Run("success: returns the pending order", func() {
		order := &commands.UrgentBoostOrder{
			RequestID:  requestID,
			PaymentRef: "ub_ref",
			Amount:     9.99,
			Currency:   "USD",
		}
		s.mockCommands.EXPECT().Start(gomock.Any(), requestID, s.actorID, user.RoleUser).
			Return(order, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.UrgentBoostOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ub_ref", body.PaymentRef)
		s.Equal(9.99, body.Amount)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not configured",
				commandsError:  commands.ErrBoostNotConfigured,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not configured",
			},
			{
				name:           "gateway outage",
				commandsError:  commands.ErrPaymentUnavailable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment gateway unavailable",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrPermissionDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Permission denied",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Start(gomock.Any(), requestID, s.actorID, user.RoleUser).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *UrgentBoostHandlerTestSuite) TestConfirm() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/urgent-boost/confirm"
	reqBody := map[string]any{"payment_ref": "ub_ref"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), requestID, "ub_ref").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when the payment reference is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reference not pending for this request",
				commandsError:  commands.ErrPaymentNotPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not pending",
			},
			{
				name:           "request not found",
				commandsError:  commands.ErrRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Request not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), requestID, "ub_ref").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestClear
// ================================================================================

func (s *UrgentBoostHandlerTestSuite) TestClear() {
	requestID := uuid.New()
	url := "/requests/" + requestID.String() + "/urgent-boost"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), requestID, s.actorID, user.RoleUser).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for non-owners", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), requestID, s.actorID, user.RoleUser).
			Return(commands.ErrPermissionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied")
	})
}
