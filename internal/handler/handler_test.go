package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jimmy00415/ChefWeb-sub000/internal/auth"
	"github.com/jimmy00415/ChefWeb-sub000/internal/chatbot"
	"github.com/jimmy00415/ChefWeb-sub000/internal/middleware"
	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/notify"
	"github.com/jimmy00415/ChefWeb-sub000/internal/payment"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
	"github.com/jimmy00415/ChefWeb-sub000/internal/repository"
	"github.com/jimmy00415/ChefWeb-sub000/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router     *gin.Engine
	background *service.Background
	payments   *payment.MockProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()

	cat, err := chatbot.DefaultCatalog()
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("chef-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	authenticator := auth.NewAuthenticator("owner@chefweb.test", string(hash), "secret", time.Hour)

	repo := repository.NewMemoryRepository()
	payments := payment.NewMockProvider()
	notifier := notify.NewLogNotifier(logger)
	bg := service.NewBackground(logger)
	addons := pricing.DefaultAddons()

	bookings := service.NewBookingService(repo, addons, payments, notifier, bg, logger)
	gen := chatbot.NewGenerator(chatbot.NewClassifier(cat), nil)

	h := Handlers{
		Chat:    NewChatHandler(service.NewChatService(gen, nil, repo, bg, true, logger)),
		Catalog: NewCatalogHandler(addons),
		Booking: NewBookingHandler(bookings, logger),
		Payment: NewPaymentHandler(service.NewPaymentService(bookings, payments, "usd", logger), logger),
		Contact: NewContactHandler(service.NewContactService(repo, notifier, bg, logger), logger),
		Admin:   NewAdminHandler(service.NewAdminService(authenticator, repo, logger), logger),
	}

	router := gin.New()
	RegisterRoutes(router, h, middleware.NewRateLimiter(0, 0).Middleware(logger), middleware.AdminAuth(authenticator))
	t.Cleanup(bg.Wait)

	return &testServer{router: router, background: bg, payments: payments}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func bookingBody() map[string]any {
	return map[string]any{
		"serviceState":    "CA",
		"city":            "San Diego",
		"eventDate":       "2026-06-12",
		"eventTime":       "18:00",
		"package":         "signature",
		"numAdults":       "4",
		"numChildren":     2,
		"travelFeeStatus": "estimated",
		"travelFeeAmount": 50,
		"contactName":     "dana reyes",
		"contactEmail":    "dana@example.com",
		"contactPhone":    "6195550134",
		"agreeToTerms":    "on",
	}
}

func TestChat(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantIntent string
	}{
		{"greeting", `{"message": "Hello!"}`, "greeting"},
		{"non-string message", `{"message": 42}`, chatbot.FallbackName},
		{"missing message", `{}`, chatbot.FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/chat", tt.body, "")
			require.Equal(t, http.StatusOK, w.Code)

			reply := decode[chatbot.Reply](t, w)
			assert.Equal(t, tt.wantIntent, reply.Intent)
			assert.NotEmpty(t, reply.Response)
			assert.NotNil(t, reply.QuickReplies)
		})
	}

	w := s.do(t, http.MethodPost, "/api/v1/chat", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/packages", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	pkgs := decode[struct {
		Packages       []pricing.Package `json:"packages"`
		DefaultPackage string            `json:"defaultPackage"`
	}](t, w)
	assert.Len(t, pkgs.Packages, 3)
	assert.Equal(t, "signature", pkgs.DefaultPackage)

	w = s.do(t, http.MethodGet, "/api/v1/addons", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wine-pairing"`)
}

func TestQuote(t *testing.T) {
	s := newTestServer(t)

	body := bookingBody()
	body["addons"] = []string{"wine"}
	w := s.do(t, http.MethodPost, "/api/v1/bookings/quote", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	quote := decode[model.QuoteResponse](t, w)
	// 400 base + 35*6 wine + 50 travel
	assert.InDelta(t, 660, quote.Totals.Total, 1e-9)
	assert.Equal(t, int64(66000), quote.TotalCents)
}

func TestCreateBooking_ValidationErrorsVerbatim(t *testing.T) {
	s := newTestServer(t)

	body := bookingBody()
	delete(body, "contactEmail")
	body["agreeToTerms"] = false

	w := s.do(t, http.MethodPost, "/api/v1/bookings", body, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Contact email is required","You must agree to the terms and conditions"]}`, w.Body.String())
}

func TestBookingCheckoutFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/bookings", bookingBody(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[model.Booking](t, w)
	assert.Equal(t, model.BookingPending, booking.Status)
	assert.Equal(t, int64(45000), booking.TotalCents)

	w = s.do(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/bookings/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/payments/intent", bookingBody(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(45000), decode[model.PaymentIntentResponse](t, w).AmountCents)

	w = s.do(t, http.MethodPost, "/api/v1/payments/intent", gin.H{"bookingId": booking.ID}, "")
	require.Equal(t, http.StatusOK, w.Code)
	intent := decode[model.PaymentIntentResponse](t, w)
	assert.Equal(t, int64(45000), intent.AmountCents)

	w = s.do(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/confirm", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/confirm", gin.H{"paymentIntentId": "pi_unknown"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/confirm", gin.H{"paymentIntentId": intent.PaymentIntentID}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.BookingConfirmed, decode[model.Booking](t, w).Status)

	// the same payment cannot confirm a second booking with an equal total
	w = s.do(t, http.MethodPost, "/api/v1/bookings", bookingBody(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode[model.Booking](t, w)

	w = s.do(t, http.MethodPost, "/api/v1/bookings/"+second.ID+"/confirm", gin.H{"paymentIntentId": intent.PaymentIntentID}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/bookings/"+second.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.BookingPending, decode[model.Booking](t, w).Status)
}

func TestContact(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/contact", gin.H{"name": "Ana", "email": "ana@"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Email address is invalid","Message is required"]}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/contact", gin.H{"name": "Ana", "email": "ana@example.com", "message": "Hi!"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/admin/login", gin.H{"email": "owner@chefweb.test", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/admin/login", gin.H{"email": "owner@chefweb.test"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/admin/login", gin.H{"email": "owner@chefweb.test", "password": "chef-pass"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[model.LoginResponse](t, w).Token

	w = s.do(t, http.MethodPost, "/api/v1/bookings", bookingBody(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[model.Booking](t, w).ID

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings?status=pending", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings?status=lost", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", gin.H{"status": "completed"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", gin.H{"status": "cancelled"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/inquiries", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[model.DashboardStats](t, w)
	assert.Equal(t, 1, stats.BookingsByStatus[model.BookingCancelled])
}
