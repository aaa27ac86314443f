package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/shravanmandadapu71-sys/parkx/internal/handler/dto"
	hmocks "github.com/shravanmandadapu71-sys/parkx/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockRegistrySvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	registrySvc := hmocks.NewMockRegistrySvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(registrySvc, reservationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/plots", h.RegisterPlot)
		api.GET("/plots", h.ListPlots)
		api.DELETE("/plots/:id", h.RetirePlot)
		api.POST("/bookings", h.StartBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/plan", h.ChoosePlan)
		api.POST("/bookings/:id/pay", h.Pay)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/ticket", h.GetTicket)
	}

	return registrySvc, reservationSvc, r
}

// --- Plots ---

func TestHandler_RegisterPlot_Success(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	plot := &domain.Plot{
		ID:           uuid.New().String(),
		Name:         "Plot A",
		OwnerName:    "R. Sharma",
		RegNumber:    "TS-09-4412",
		SurveyNumber: "SY-118/2",
		Capacity:     map[domain.VehicleClass]int{domain.VehicleCar: 5},
		Occupied:     map[domain.VehicleClass]int{},
		CreatedAt:    time.Now(),
	}

	registrySvc.EXPECT().RegisterPlot(mock.Anything, mock.Anything).Return(plot, nil)

	body, _ := json.Marshal(dto.RegisterPlotRequest{
		Name:         "Plot A",
		OwnerName:    "R. Sharma",
		RegNumber:    "TS-09-4412",
		SurveyNumber: "SY-118/2",
		DocumentRef:  "docs/plot-a.pdf",
		Capacity:     map[string]int{"car": 5},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Plot A", resp.Name)
	assert.Equal(t, 5, resp.Capacity["car"])
}

func TestHandler_RegisterPlot_ExistingID_Update(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	plotID := uuid.New().String()
	plot := &domain.Plot{
		ID:        plotID,
		Name:      "Plot A",
		Capacity:  map[domain.VehicleClass]int{domain.VehicleCar: 8},
		Occupied:  map[domain.VehicleClass]int{},
		CreatedAt: time.Now(),
	}

	registrySvc.EXPECT().
		RegisterPlot(mock.Anything, mock.MatchedBy(func(in domain.RegisterPlotInput) bool {
			return in.ID == plotID
		})).
		Return(plot, nil)

	body, _ := json.Marshal(dto.RegisterPlotRequest{
		ID:           plotID,
		Name:         "Plot A",
		OwnerName:    "R. Sharma",
		RegNumber:    "TS-09-4412",
		SurveyNumber: "SY-118/2",
		DocumentRef:  "docs/plot-a.pdf",
		Capacity:     map[string]int{"car": 8},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, plotID, resp.ID)
	assert.Equal(t, 8, resp.Capacity["car"])
}

func TestHandler_RegisterPlot_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterPlot_UnknownClass(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"name":"X","owner_name":"O","reg_number":"R","survey_number":"S","document_ref":"D","capacity":{"bike":3}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterPlot_VerificationRejected(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	registrySvc.EXPECT().RegisterPlot(mock.Anything, mock.Anything).Return(nil, domain.ErrVerificationFailed)

	body, _ := json.Marshal(dto.RegisterPlotRequest{
		Name:         "Plot A",
		OwnerName:    "R. Sharma",
		RegNumber:    "TS-09-4412",
		SurveyNumber: "SY-118/2",
		DocumentRef:  "docs/plot-a.pdf",
		Capacity:     map[string]int{"car": 5},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPlots_Success(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	plots := []*domain.Plot{
		{ID: "p1", Name: "Plot A", CreatedAt: time.Now()},
		{ID: "p2", Name: "Warehouse Yard", CreatedAt: time.Now()},
	}
	registrySvc.EXPECT().ListPlots(mock.Anything).Return(plots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListPlots_ByVehicle(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	plots := []domain.PlotAvailability{
		{PlotID: "p1", Name: "Plot A", FreeSlots: 3, Class: domain.VehicleCar},
	}
	reservationSvc.EXPECT().FindEligiblePlots(mock.Anything, domain.VehicleCar).Return(plots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plots?vehicle=car", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].FreeSlots)
}

func TestHandler_ListPlots_UnknownVehicle(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plots?vehicle=bike", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RetirePlot_Success(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	plotID := uuid.New().String()
	registrySvc.EXPECT().RetirePlot(mock.Anything, plotID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/plots/"+plotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RetirePlot_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/plots/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RetirePlot_NotFound(t *testing.T) {
	registrySvc, _, r := setupRouter(t)

	plotID := uuid.New().String()
	registrySvc.EXPECT().RetirePlot(mock.Anything, plotID).Return(domain.ErrPlotNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/plots/"+plotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_StartBooking_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	plotID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		PlotID:    plotID,
		PlotName:  "Plot A",
		Vehicle:   domain.VehicleCar,
		State:     domain.BookingStateDraft,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().StartBooking(mock.Anything, plotID, domain.VehicleCar).Return(booking, nil)

	body, _ := json.Marshal(dto.StartBookingRequest{PlotID: plotID, VehicleClass: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "draft", resp.State)
}

func TestHandler_StartBooking_InvalidPlotID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"plot_id":"bad-id","vehicle_class":"car"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_StartBooking_PlotRetired(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	plotID := uuid.New().String()
	reservationSvc.EXPECT().StartBooking(mock.Anything, plotID, domain.VehicleCar).Return(nil, domain.ErrPlotRetired)

	body, _ := json.Marshal(dto.StartBookingRequest{PlotID: plotID, VehicleClass: "car"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ChoosePlan_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:        bookingID,
		PlotName:  "Plot A",
		Vehicle:   domain.VehicleCar,
		Plan:      domain.Plan{Kind: domain.PlanHourly, Hours: 3},
		Price:     60,
		State:     domain.BookingStateReserved,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().
		ChoosePlan(mock.Anything, bookingID, domain.Plan{Kind: domain.PlanHourly, Hours: 3}).
		Return(booking, nil)

	body, _ := json.Marshal(dto.ChoosePlanRequest{Plan: "hourly", Hours: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reserved", resp.State)
	assert.Equal(t, int64(60), resp.Price)
}

func TestHandler_ChoosePlan_UnknownPlan(t *testing.T) {
	_, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	body := []byte(`{"plan":"fortnightly"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChoosePlan_NoSlots(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().
		ChoosePlan(mock.Anything, bookingID, domain.Plan{Kind: domain.PlanDaily}).
		Return(nil, domain.ErrSlotUnavailable)

	body, _ := json.Marshal(dto.ChoosePlanRequest{Plan: "daily"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Pay_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	ticket := &domain.Ticket{
		BookingID: bookingID,
		PlotName:  "Plot A",
		Vehicle:   domain.VehicleCar,
		Plan:      domain.Plan{Kind: domain.PlanDaily},
		Price:     100,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	reservationSvc.EXPECT().Pay(mock.Anything, bookingID).Return(ticket, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.BookingID)
	assert.Equal(t, int64(100), resp.Price)
}

func TestHandler_Pay_ReservationExpired(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().Pay(mock.Anything, bookingID).Return(nil, domain.ErrReservationExpired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/pay", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Pay_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bad-id/pay", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:        bookingID,
		PlotName:  "Plot A",
		Vehicle:   domain.VehicleCar,
		State:     domain.BookingStateCancelled,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.State)
}

func TestHandler_CancelBooking_Active(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetTicket_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	ticket := &domain.Ticket{
		BookingID: bookingID,
		PlotName:  "Plot A",
		Vehicle:   domain.VehicleCar,
		Plan:      domain.Plan{Kind: domain.PlanWeekly},
		Price:     900,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	reservationSvc.EXPECT().Ticket(mock.Anything, bookingID).Return(ticket, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/ticket", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "weekly", resp.Plan)
}

func TestHandler_GetTicket_NotAvailable(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().Ticket(mock.Anything, bookingID).Return(nil, domain.ErrTicketNotAvailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/ticket", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().GetBooking(mock.Anything, bookingID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
