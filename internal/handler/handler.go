package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RegistrySvc interface {
	RegisterPlot(ctx context.Context, in domain.RegisterPlotInput) (*domain.Plot, error)
	RetirePlot(ctx context.Context, plotID string) error
	ListPlots(ctx context.Context) ([]*domain.Plot, error)
}

type ReservationSvc interface {
	FindEligiblePlots(ctx context.Context, class domain.VehicleClass) ([]domain.PlotAvailability, error)
	StartBooking(ctx context.Context, plotID string, class domain.VehicleClass) (*domain.Booking, error)
	ChoosePlan(ctx context.Context, bookingID string, plan domain.Plan) (*domain.Booking, error)
	Pay(ctx context.Context, bookingID string) (*domain.Ticket, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	Ticket(ctx context.Context, bookingID string) (*domain.Ticket, error)
}

type Handler struct {
	registryService    RegistrySvc
	reservationService ReservationSvc
}

func NewHandler(registryService RegistrySvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		registryService:    registryService,
		reservationService: reservationService,
	}
}

// Plots

func (h *Handler) RegisterPlot(c *ginext.Context) {
	var req dto.RegisterPlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	capacity, err := parseClassMap(req.Capacity)
	if err != nil {
		h.handleError(c, err)
		return
	}
	occupied, err := parseClassMap(req.Occupied)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.RegisterPlotInput{
		ID:              req.ID,
		Name:            req.Name,
		OwnerName:       req.OwnerName,
		RegNumber:       req.RegNumber,
		SurveyNumber:    req.SurveyNumber,
		DocumentRef:     req.DocumentRef,
		Location:        domain.Location{Lat: req.Location.Lat, Lng: req.Location.Lng},
		Capacity:        capacity,
		InitialOccupied: occupied,
	}

	plot, err := h.registryService.RegisterPlot(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlotResponse(plot))
}

func (h *Handler) ListPlots(c *ginext.Context) {
	if vehicle := c.Query("vehicle"); vehicle != "" {
		h.listAvailable(c, vehicle)
		return
	}

	plots, err := h.registryService.ListPlots(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PlotResponse, 0, len(plots))
	for _, p := range plots {
		resp = append(resp, dto.ToPlotResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listAvailable(c *ginext.Context, vehicle string) {
	class, err := domain.ParseVehicleClass(vehicle)
	if err != nil {
		h.handleError(c, err)
		return
	}

	plots, err := h.reservationService.FindEligiblePlots(c.Request.Context(), class)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailabilityResponse, 0, len(plots))
	for _, p := range plots {
		resp = append(resp, dto.ToAvailabilityResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RetirePlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid plot id"})
		return
	}

	if err := h.registryService.RetirePlot(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "retired"})
}

// Bookings

func (h *Handler) StartBooking(c *ginext.Context) {
	var req dto.StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := domain.ParseVehicleClass(req.VehicleClass)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.reservationService.StartBooking(c.Request.Context(), req.PlotID, class)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ChoosePlan(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ChoosePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	kind, err := domain.ParsePlanKind(req.Plan)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.reservationService.ChoosePlan(c.Request.Context(), id, domain.Plan{Kind: kind, Hours: req.Hours})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) Pay(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	ticket, err := h.reservationService.Pay(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.reservationService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	ticket, err := h.reservationService.Ticket(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func parseClassMap(m map[string]int) (map[domain.VehicleClass]int, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[domain.VehicleClass]int, len(m))
	for raw, n := range m {
		class, err := domain.ParseVehicleClass(raw)
		if err != nil {
			return nil, err
		}
		out[class] = n
	}
	return out, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrPlotRetired),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReservationExpired),
		errors.Is(err, domain.ErrTicketNotAvailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrVerificationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
