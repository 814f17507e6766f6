package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/timetrack/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusBadGateway, "Failed to fetch world time.", errors.New("dial tcp: timeout"))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Failed to fetch world time.", resp.Detail)
	assert.Equal(t, "dial tcp: timeout", resp.Error)
}

func TestWriteValidationErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteValidationErrorResponse(rr, map[string]string{"title": "this field is required"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "this field is required", resp.Errors["title"])
}

func TestWriteJSONResponseNoBody(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}
