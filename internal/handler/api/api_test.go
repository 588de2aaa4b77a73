//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoteltrack/internal/handler"
	"hoteltrack/internal/handler/api"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/infra/memstore"
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/pkg/config"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memstore.Store
	clock  *clock.FakeClock
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.store = memstore.New()
	s.clock = clock.NewFakeClock(testNow)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := commands.NewAvailabilityEngine(memstore.NewBlockRepo(s.store), logger)
	billingCommands := commands.NewBillingCommands(
		memstore.NewInvoiceRepo(s.store),
		memstore.NewPaymentRepo(s.store),
		memstore.NewStayRepo(s.store),
		memstore.NewChargeRepo(s.store),
		memstore.NewReservationRepo(s.store),
		memstore.NewRoomRepo(s.store),
		memstore.NewRoomTypeRepo(s.store),
		s.clock,
		logger,
	)

	roomHandler := api.NewRoomHandler(
		commands.NewRoomCommands(memstore.NewRoomTypeRepo(s.store), memstore.NewRoomRepo(s.store), logger),
		queries.NewRoomQueries(memstore.NewRoomReads(s.store)),
	)
	guestHandler := api.NewGuestHandler(
		commands.NewGuestCommands(memstore.NewGuestRepo(s.store), logger),
		queries.NewGuestQueries(memstore.NewGuestReads(s.store)),
	)
	reservationHandler := api.NewReservationHandler(
		commands.NewReservationCommands(
			memstore.NewReservationRepo(s.store),
			memstore.NewGuestRepo(s.store),
			memstore.NewRoomTypeRepo(s.store),
			memstore.NewRoomRepo(s.store),
			engine,
			s.clock,
			logger,
		),
		queries.NewReservationQueries(memstore.NewReservationReads(s.store)),
	)
	stayHandler := api.NewStayHandler(
		commands.NewStayCommands(
			memstore.NewStayRepo(s.store),
			memstore.NewChargeRepo(s.store),
			memstore.NewReservationRepo(s.store),
			memstore.NewRoomRepo(s.store),
			memstore.NewGuestRepo(s.store),
			billingCommands,
			s.clock,
			logger,
		),
		queries.NewStayQueries(memstore.NewStayReads(s.store), memstore.NewInvoiceReads(s.store)),
	)
	billingHandler := api.NewBillingHandler(
		billingCommands,
		queries.NewBillingQueries(memstore.NewInvoiceReads(s.store), memstore.NewPaymentReads(s.store)),
	)

	handler.NewRouter(s.router, config.NewTestConfig(), roomHandler, guestHandler, reservationHandler, stayHandler, billingHandler)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

// seedInventory creates a room type, two rooms, and a guest through the API
// and returns their ids.
func (s *APITestSuite) seedInventory() (int64, []int64, int64) {
	rec := s.do(http.MethodPost, "/api/room-types", gin.H{
		"name":             "Standard",
		"description":      "Queen bed",
		"max_occupancy":    2,
		"base_price_cents": 10000,
		"tax_rate":         0.10,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var rt resdto.RoomTypeResponse
	s.decode(rec, &rt)

	roomIDs := make([]int64, 0, 2)
	for _, number := range []string{"101", "102"} {
		rec = s.do(http.MethodPost, "/api/rooms", gin.H{
			"number":       number,
			"floor":        1,
			"room_type_id": rt.ID,
		})
		s.Require().Equal(http.StatusCreated, rec.Code)
		var rm resdto.RoomResponse
		s.decode(rec, &rm)
		roomIDs = append(roomIDs, rm.ID)
	}

	rec = s.do(http.MethodPost, "/api/guests", gin.H{
		"name":  "Alice Smith",
		"email": "alice@example.com",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var g resdto.GuestResponse
	s.decode(rec, &g)

	return rt.ID, roomIDs, g.ID
}

func (s *APITestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APITestSuite) TestRoomTypeConflicts() {
	s.seedInventory()

	rec := s.do(http.MethodPost, "/api/room-types", gin.H{
		"name":             "Standard",
		"description":      "again",
		"max_occupancy":    2,
		"base_price_cents": 9000,
	})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *APITestSuite) TestReservationFlowOverHTTP() {
	typeID, roomIDs, guestID := s.seedInventory()

	rec := s.do(http.MethodPost, "/api/reservations", gin.H{
		"guest_id":     guestID,
		"room_type_id": typeID,
		"check_in":     "2026-09-10T00:00:00Z",
		"check_out":    "2026-09-13T00:00:00Z",
		"occupancy":    2,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var res resdto.ReservationResponse
	s.decode(rec, &res)
	s.Equal("Reserved", res.Status)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/reservations/%d/confirm", res.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/reservations/search?check_in=2026-09-10&check_out=2026-09-13&room_type_id=%d&occupancy=2", typeID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var available resdto.AvailableRoomsResponse
	s.decode(rec, &available)
	s.Len(available.RoomIDs, 2)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/reservations/%d/assign-room", res.ID), gin.H{"room_id": roomIDs[0]})
	s.Require().Equal(http.StatusOK, rec.Code)

	// The assigned room no longer shows up for an overlapping search.
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/reservations/search?check_in=2026-09-11&check_out=2026-09-12&room_type_id=%d&occupancy=2", typeID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &available)
	s.Equal([]int64{roomIDs[1]}, available.RoomIDs)
}

func (s *APITestSuite) TestStayLifecycleOverHTTP() {
	typeID, roomIDs, guestID := s.seedInventory()

	rec := s.do(http.MethodPost, "/api/reservations", gin.H{
		"guest_id":     guestID,
		"room_type_id": typeID,
		"check_in":     "2026-09-10T00:00:00Z",
		"check_out":    "2026-09-13T00:00:00Z",
		"occupancy":    2,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var res resdto.ReservationResponse
	s.decode(rec, &res)

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, fmt.Sprintf("/api/reservations/%d/confirm", res.ID), nil).Code)
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, fmt.Sprintf("/api/reservations/%d/assign-room", res.ID), gin.H{"room_id": roomIDs[0]}).Code)

	rec = s.do(http.MethodPost, "/api/stays/check-in", gin.H{"reservation_id": res.ID})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var st resdto.StayResponse
	s.decode(rec, &st)
	s.Equal("Active", st.Status)
	s.NotEmpty(st.KeyCardToken)

	rec = s.do(http.MethodGet, "/api/stays/active/by-room/101", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/stays/%d/charges", st.ID), gin.H{
		"service_type": "Room Service",
		"amount_cents": 2500,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	// No invoice exists yet, so the invoiced total reads zero.
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/stays/%d/total-charges", st.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var total resdto.TotalChargesResponse
	s.decode(rec, &total)
	s.Equal(int64(0), total.TotalAmountCents)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/stays/%d/check-out", st.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var inv resdto.InvoiceResponse
	s.decode(rec, &inv)
	s.Equal(int64(35750), inv.TotalAmountCents)
	s.Equal("Issued", inv.Status)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/stays/%d/total-charges", st.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &total)
	s.Equal(int64(35750), total.TotalAmountCents)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/stays/%d/balance", st.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var balance resdto.BalanceResponse
	s.decode(rec, &balance)
	s.Equal(int64(35750), balance.OutstandingCents)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/invoices/%d/payments", inv.ID), gin.H{
		"amount_cents": 35750,
		"method":       "card",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/invoices/%d", inv.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &inv)
	s.Equal("Paid", inv.Status)
	s.Equal(int64(0), inv.OutstandingCents)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/invoices/%d/payments", inv.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var payments []resdto.PaymentResponse
	s.decode(rec, &payments)
	s.Len(payments, 1)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/stays?guest_id=%d", guestID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history []resdto.StayResponse
	s.decode(rec, &history)
	s.Require().Len(history, 1)
	s.Equal("Checked-Out", history[0].Status)
}

func (s *APITestSuite) TestErrorMapping() {
	typeID, _, guestID := s.seedInventory()

	s.Run("unknown guest is 404", func() {
		rec := s.do(http.MethodPost, "/api/reservations", gin.H{
			"guest_id":     int64(999),
			"room_type_id": typeID,
			"check_in":     "2026-09-10T00:00:00Z",
			"check_out":    "2026-09-13T00:00:00Z",
			"occupancy":    2,
		})
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("inverted dates are 400", func() {
		rec := s.do(http.MethodPost, "/api/reservations", gin.H{
			"guest_id":     guestID,
			"room_type_id": typeID,
			"check_in":     "2026-09-13T00:00:00Z",
			"check_out":    "2026-09-10T00:00:00Z",
			"occupancy":    2,
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing invoice is 404", func() {
		rec := s.do(http.MethodGet, "/api/invoices/999", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("no active stay is 404", func() {
		rec := s.do(http.MethodGet, "/api/stays/active/by-room/999", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id is 400", func() {
		rec := s.do(http.MethodGet, "/api/rooms/abc", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *APITestSuite) TestGuestEndpoints() {
	_, _, guestID := s.seedInventory()

	rec := s.do(http.MethodGet, "/api/guests?search=alice", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var found []resdto.GuestResponse
	s.decode(rec, &found)
	s.Require().Len(found, 1)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/guests/%d/deactivate", guestID), gin.H{
		"justification": "left the country",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	var g resdto.GuestResponse
	s.decode(rec, &g)
	s.Equal("Inactive", g.Status)
}
