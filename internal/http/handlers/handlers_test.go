package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/config"
	"odyssweb/internal/domain"
	"odyssweb/internal/search"
	"odyssweb/internal/services"
	"odyssweb/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newApp wires a Handlers set against a fake Odyss API. The session
// starts signed out; call signIn to add user u1.
func newApp(t *testing.T, backend http.Handler) (*Handlers, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	client := apiclient.New(store, apiclient.Options{BaseURL: srv.URL})
	h := &Handlers{
		Env:           config.Env{SiteBaseURL: "http://localhost:3000"},
		Session:       store,
		Auth:          services.AuthService{API: client, Session: store},
		Users:         services.UsersService{API: client},
		Trips:         services.TripsService{API: client},
		Circles:       services.CirclesService{API: client},
		Bookings:      services.BookingsService{API: client},
		Payments:      services.PaymentsService{API: client},
		Notifications: services.NotificationsService{API: client, BaseURL: "http://localhost:3000"},
		Companies:     services.CompanyService{API: client},
		SearchCache:   &search.ResultCache{},
	}
	return h, store
}

// freshToken mints an access token that will not trip the refresh logic.
func freshToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp":     time.Now().Add(time.Hour).Unix(),
		"user_id": "u1",
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func signIn(t *testing.T, store *session.Store) {
	t.Helper()
	require.NoError(t, store.SetSession(&domain.UserProfile{ID: "u1", Email: "ada@example.com"}, freshToken(t), "ref"))
}

// perform runs one request through a throwaway engine mounting the
// handler at the given route.
func perform(h gin.HandlerFunc, method, route, target, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, route, h)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
