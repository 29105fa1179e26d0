//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shuttlebook/internal/domain/booking"
	"shuttlebook/internal/domain/pricing"
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/handler/api"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/internal/usecase/shared"
	"shuttlebook/tests/common/httptest"
	commandsmock "shuttlebook/tests/mock/commands"
	queriesmock "shuttlebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockBookings     *commandsmock.MockBookingCommands
	mockWaitlist     *commandsmock.MockWaitlistCommands
	mockHistory      *queriesmock.MockBookingQueries
	mockQuotes       *queriesmock.MockQuoteQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockCatalog      *queriesmock.MockCatalogQueries
	handler          *api.BookingHandler
	actor            shared.Actor
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockWaitlist = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockHistory = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookings, s.mockWaitlist, s.mockHistory, s.mockQuotes, s.mockAvailability, s.mockCatalog)

	s.actor = shared.Actor{UserID: uuid.New(), Name: "Mika Tan", Email: "mika@example.com", Role: user.RoleMember}

	// Mock middleware behavior: authorized requests carry the actor.
	withActor := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("actor", s.actor)
		}
	}

	s.router.POST("/bookings", withActor, s.handler.CreateBooking)
	s.router.GET("/bookings", withActor, s.handler.GetHistory)
	s.router.POST("/bookings/quote", s.handler.Quote)
	s.router.DELETE("/bookings/:id", withActor, s.handler.CancelBooking)
	s.router.POST("/waitlist", withActor, s.handler.JoinWaitlist)
	s.router.GET("/bookings/availability", s.handler.GetAvailability)
	s.router.GET("/meta", s.handler.GetMeta)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BookingHandlerTestSuite) bookingEntity() *booking.Booking {
	start := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(start, start.Add(2*time.Hour))
	s.Require().NoError(err)
	b, err := booking.NewBooking(
		s.actor.UserID, s.actor.Name, s.actor.Email,
		uuid.New(), nil, nil, slot,
		pricing.Quote{TotalPrice: 53, Breakdown: []pricing.Line{{Label: "Court (Court 1)", Amount: 53}}},
		time.Now(),
	)
	s.Require().NoError(err)
	return b
}

func (s *BookingHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"courtId":   uuid.New().String(),
		"startTime": "2025-06-07T18:00:00Z",
		"endTime":   "2025-06-07T20:00:00Z",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with the created booking", func() {
		entity := s.bookingEntity()
		s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actor).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(entity.ID(), response.ID)
		s.Equal(53.0, response.TotalPrice)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 500 when actor missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"courtId": uuid.New().String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid range", errs.ErrInvalidRange, http.StatusBadRequest, "Start time must be before end time"},
			{"resource not found", errs.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
			{"resource inactive", errs.ErrResourceInactive, http.StatusUnprocessableEntity, "Resource is not active"},
			{"court conflict", errs.ErrCourtConflict, http.StatusConflict, "Court already booked"},
			{"coach unavailable", errs.ErrCoachUnavailable, http.StatusUnprocessableEntity, "Coach is not available"},
			{"coach conflict", errs.ErrCoachConflict, http.StatusConflict, "Coach already booked"},
			{"equipment unavailable", errs.ErrEquipmentUnavailable, http.StatusUnprocessableEntity, "Equipment not available"},
			{"equipment exhausted", errs.ErrEquipmentExhausted, http.StatusConflict, "Not enough equipment"},
			{"domain validation", errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Invalid booking details"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actor).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 with confirmation", func() {
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actor).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled", response["message"])
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"not found", errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"not owner", errs.ErrNotBookingOwner, http.StatusForbidden, "Not authorized for this booking"},
			{"already cancelled", errs.ErrBookingCancelled, http.StatusConflict, "Booking already cancelled"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actor).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetHistory() {
	url := "/bookings"

	s.Run("success: forwards the actor and optional email filter", func() {
		s.mockHistory.EXPECT().GetHistory(gomock.Any(), s.actor, nil).
			Return([]queries.BookingView{{ID: uuid.New(), UserEmail: s.actor.Email}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: email query parameter becomes the filter", func() {
		filter := "other@example.com"
		s.mockHistory.EXPECT().GetHistory(gomock.Any(), s.actor, &filter).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?email=other@example.com", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"

	s.Run("success: returns the priced quote", func() {
		s.mockQuotes.EXPECT().PriceQuote(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{TotalPrice: 53, PriceBreakdown: []queries.PriceLineView{{Label: "Court (Court 1)", Amount: 53}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")

		var response queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(53.0, response.TotalPrice)
	})

	s.Run("error: 404 for unknown resources", func() {
		s.mockQuotes.EXPECT().PriceQuote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 400 for inverted range", func() {
		s.mockQuotes.EXPECT().PriceQuote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Start time must be before end time")
	})
}

func (s *BookingHandlerTestSuite) TestJoinWaitlist() {
	url := "/waitlist"

	body := map[string]any{
		"courtId":   uuid.New().String(),
		"startTime": "2025-06-07T18:00:00Z",
		"endTime":   "2025-06-07T20:00:00Z",
	}

	s.Run("success: returns 201 with the waiting entry", func() {
		start := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)
		slot, err := booking.NewTimeSlot(start, start.Add(2*time.Hour))
		s.Require().NoError(err)
		entry := waitlist.NewEntry(s.actor.UserID, s.actor.Name, s.actor.Email, uuid.New(), slot, time.Now())

		s.mockWaitlist.EXPECT().JoinWaitlist(gomock.Any(), gomock.Any(), s.actor).
			Return(entry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.WaitlistEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("waiting", response.Status)
	})

	s.Run("error: 404 for unknown court", func() {
		s.mockWaitlist.EXPECT().JoinWaitlist(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, errs.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	url := "/bookings/availability"

	s.Run("success: forwards date and court filter", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), "2025-06-07", nil).
			Return(&queries.AvailabilityView{Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-06-07", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})

	s.Run("error: 400 on malformed court id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-06-07&courtId=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid court ID format")
	})

	s.Run("error: 400 on unparseable date", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), "07-06-2025", nil).
			Return(nil, queries.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=07-06-2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *BookingHandlerTestSuite) TestGetMeta() {
	s.Run("success: returns the catalog", func() {
		s.mockCatalog.EXPECT().GetMeta(gomock.Any()).
			Return(&queries.MetaView{Courts: []queries.CourtView{{ID: uuid.New(), Name: "Court 1"}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/meta", nil, "")

		var response queries.MetaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Courts, 1)
	})
}
