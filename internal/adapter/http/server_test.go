package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/adapter/repository/memory"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
	"github.com/simaogato/stocktracker-backend/internal/usecase/portfolio"
)

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()

	return New(Config{
		Addr:             ":0",
		Log:              zerolog.Nop(),
		AuthService:      auth.NewAuthService(memory.NewUserRepository(), time.Hour, bcrypt.MinCost),
		PortfolioService: portfolio.NewPortfolioService(memory.NewPositionRepository(), zerolog.Nop()),
	}).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, handler http.Handler, username string) string {
	t.Helper()

	w := doRequest(t, handler, "POST", "/api/auth/register", "", stocktrackerv1.RegisterRequest{Username: username, Password: "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	var session stocktrackerv1.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestHandleHealth(t *testing.T) {
	handler := setupTestServer(t)

	w := doRequest(t, handler, "GET", "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestPositionsAndReturns(t *testing.T) {
	handler := setupTestServer(t)
	token := register(t, handler, "alice")

	w := doRequest(t, handler, "POST", "/api/positions", token, stocktrackerv1.AddPositionRequest{Name: "AAPL", CostPrice: "100", ClosePrice: "110"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created stocktrackerv1.PositionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Len(t, created.Position.Date, len("2006-01-02"))

	w = doRequest(t, handler, "POST", "/api/positions", token, stocktrackerv1.AddPositionRequest{Name: "MSFT", CostPrice: "200", ClosePrice: "180"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, handler, "GET", "/api/positions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed stocktrackerv1.ListPositionsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
	assert.Len(t, listed.Positions, 2)

	w = doRequest(t, handler, "GET", "/api/returns", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report stocktrackerv1.GetReturnsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&report))
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "SUMMARY", report.Rows[0].Kind)
	assert.Equal(t, "0.00", report.Rows[0].DailyReturn)
	assert.Equal(t, "10.00", report.Rows[1].ReturnRate)
	assert.Equal(t, "-10.00", report.Rows[2].ReturnRate)

	newName := "AAPL.US"
	w = doRequest(t, handler, "PATCH", "/api/positions/"+created.Position.ID, token, stocktrackerv1.UpdatePositionRequest{Name: &newName})
	require.Equal(t, http.StatusOK, w.Code)
	var updated stocktrackerv1.PositionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, "AAPL.US", updated.Position.Name)
	assert.Equal(t, "110", updated.Position.ClosePrice)

	w = doRequest(t, handler, "DELETE", "/api/positions/"+created.Position.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, handler, "DELETE", "/api/positions/"+created.Position.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPositions_OtherOwner(t *testing.T) {
	handler := setupTestServer(t)
	alice := register(t, handler, "alice")
	bob := register(t, handler, "bob")

	w := doRequest(t, handler, "POST", "/api/positions", alice, stocktrackerv1.AddPositionRequest{Name: "AAPL", CostPrice: "100", ClosePrice: "110"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created stocktrackerv1.PositionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = doRequest(t, handler, "DELETE", "/api/positions/"+created.Position.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, handler, "GET", "/api/positions", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed stocktrackerv1.ListPositionsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
	assert.Empty(t, listed.Positions)
}

func TestErrorResponses(t *testing.T) {
	handler := setupTestServer(t)
	token := register(t, handler, "carol")

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		body           interface{}
		expectedStatus int
	}{
		{"Missing token", "GET", "/api/returns", "", nil, http.StatusUnauthorized},
		{"Unknown token", "GET", "/api/returns", "nope", nil, http.StatusUnauthorized},
		{"Duplicate username", "POST", "/api/auth/register", "", stocktrackerv1.RegisterRequest{Username: "carol", Password: "x"}, http.StatusConflict},
		{"Wrong password", "POST", "/api/auth/login", "", stocktrackerv1.LoginRequest{Username: "carol", Password: "x"}, http.StatusUnauthorized},
		{"Zero cost", "POST", "/api/positions", token, stocktrackerv1.AddPositionRequest{Name: "X", CostPrice: "0", ClosePrice: "1"}, http.StatusBadRequest},
		{"Non-numeric close", "POST", "/api/positions", token, stocktrackerv1.AddPositionRequest{Name: "X", CostPrice: "1", ClosePrice: "abc"}, http.StatusBadRequest},
		{"Malformed id", "DELETE", "/api/positions/123", token, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, handler, tt.method, tt.path, tt.token, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLogout(t *testing.T) {
	handler := setupTestServer(t)
	token := register(t, handler, "dave")

	w := doRequest(t, handler, "POST", "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, handler, "GET", "/api/positions", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
