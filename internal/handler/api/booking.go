package api

import (
	"errors"
	"net/http"

	reqdto "shuttlebook/internal/handler/dto/request"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/handler/middleware"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands     commands.BookingCommands
	waitlistCommands    commands.WaitlistCommands
	bookingQueries      queries.BookingQueries
	quoteQueries        queries.QuoteQueries
	availabilityQueries queries.AvailabilityQueries
	catalogQueries      queries.CatalogQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	waitlistCommands commands.WaitlistCommands,
	bookingQueries queries.BookingQueries,
	quoteQueries queries.QuoteQueries,
	availabilityQueries queries.AvailabilityQueries,
	catalogQueries queries.CatalogQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:     bookingCommands,
		waitlistCommands:    waitlistCommands,
		bookingQueries:      bookingQueries,
		quoteQueries:        quoteQueries,
		availabilityQueries: availabilityQueries,
		catalogQueries:      catalogQueries,
	}
}

// @Summary Create booking
// @Description Reserve a court with optional coach and equipment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams(), actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start time must be before end time",
			})
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, errs.ErrResourceInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Resource is not active",
			})
		case errors.Is(err, errs.ErrCourtConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court already booked for the selected time",
			})
		case errors.Is(err, errs.ErrCoachUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coach is not available at the selected time",
			})
		case errors.Is(err, errs.ErrCoachConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coach already booked for the selected time",
			})
		case errors.Is(err, errs.ErrEquipmentUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Equipment not available",
			})
		case errors.Is(err, errs.ErrEquipmentExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough equipment available for the selected time",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid booking details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; owners and admins only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id, actor); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not authorized for this booking",
			})
		case errors.Is(err, errs.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
	})
}

// @Summary Booking history
// @Description List the caller's bookings; admins see everyone's and may filter by email
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string false "Filter by user email (admin only)"
// @Success 200 {array} queries.BookingView
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetHistory(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var emailFilter *string
	if email := c.Query("email"); email != "" {
		emailFilter = &email
	}

	views, err := h.bookingQueries.GetHistory(c.Request.Context(), actor, emailFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Price quote
// @Description Price a prospective booking without reserving anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.PriceQuote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start time must be before end time",
			})
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Join waitlist
// @Description Register interest in a court window that is currently taken
// @Tags waitlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.WaitlistEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /waitlist [post]
func (h *BookingHandler) JoinWaitlist(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.waitlistCommands.JoinWaitlist(c.Request.Context(), commands.JoinWaitlistParams{
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start time must be before end time",
			})
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrResourceInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Court is not active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWaitlistEntry(entry))
}

// @Summary Availability grid
// @Description Hourly availability for all active courts on one date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param courtId query string false "Limit to one court"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Router /bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'date' is required",
		})
		return
	}

	var courtID *uuid.UUID
	if raw := c.Query("courtId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court ID format",
			})
			return
		}
		courtID = &id
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), date, courtID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Facility catalog
// @Description Active courts, equipment and coaches for the booking form
// @Tags meta
// @Produce json
// @Success 200 {object} queries.MetaView
// @Router /meta [get]
func (h *BookingHandler) GetMeta(c *gin.Context) {
	view, err := h.catalogQueries.GetMeta(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
