package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, r)
}

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	claims := &jwt.Claims{UserID: userID, Role: models.RoleUser}
	return r.WithContext(jwt.ContextWithClaims(r.Context(), claims))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}
