package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSettlement(t *testing.T) {
	e := New()

	body := `{
		"salary": 50000000,
		"exemptions": {"self": {"checked": true, "count": 1}},
		"currentPaidTax": 3000000
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/settlement", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SettlementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 2_599_250, resp.Result.Final.FinalTax)
	assert.EqualValues(t, -400_750, resp.Result.Final.TaxDifference)
	assert.Empty(t, resp.Issues)
}

func TestCalculateSettlementAdvisoryIssues(t *testing.T) {
	e := New()

	body := `{
		"salary": 50000000,
		"pensions": {
			"national-pension": {"checked": true},
			"public-pension": {"checked": true}
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/settlement", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SettlementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Issues)
}

func TestCalculateSettlementBadRequest(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"salary":`},
		{"negative salary", `{"salary": -1}`},
		{"unknown pension scheme", `{"salary": 1000, "pensions": {"gold-pension": {"checked": true}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/settlement", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	e := New()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
