package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applogger "SignalEngine/pkg/logger"
)

type echoRequest struct {
	Price *float64 `json:"price" validate:"required"`
	Side  string   `json:"side" default:"high" validate:"oneof=high low"`
}

type testHandler struct{}

func (testHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/echo", func(c echo.Context) error {
		var req echoRequest
		if errs := ReadAndValidateRequest(c, &req); errs != nil {
			return BadRequestResponse(c, errs)
		}
		return SuccessResponse(c, req)
	})
	e.GET("/boom", func(c echo.Context) error {
		return AppErrorResponse(c, ServiceUnavailableError("backend down"))
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("kaboom")
	})
}

func newTestServer() *Server {
	return NewServer(applogger.Nop(), []Handler{testHandler{}}, WithCORSOrigins([]string{"https://dash.example"}))
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestValidationAppliesDefaultsAndJSONNames(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"price":101.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := do(s, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"OK","request_id":"req-1","data":{"price":101.5,"side":"high"}}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"side":"sideways"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = do(s, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Data []ValidationError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "ERR_REQUIRED", body.Data[0].Code)
	assert.Equal(t, "price", body.Data[0].Field)
	assert.Equal(t, "ERR_ONEOF", body.Data[1].Code)
	assert.Equal(t, "side must be one of: high, low", body.Data[1].Message)
}

func TestTickerValidators(t *testing.T) {
	type req struct {
		Symbol  string `query:"symbol" validate:"required,symbol"`
		Symbols string `query:"symbols" validate:"omitempty,symbols"`
	}
	cases := []struct {
		name string
		in   req
		ok   bool
	}{
		{"plain", req{Symbol: "SPY"}, true},
		{"class share", req{Symbol: "BRK.B"}, true},
		{"index", req{Symbol: "^VIX"}, true},
		{"space", req{Symbol: "S P Y"}, false},
		{"too long", req{Symbol: "ABCDEFGHIJKLMNOPQ"}, false},
		{"list", req{Symbol: "SPY", Symbols: "SPY, QQQ,,IWM"}, true},
		{"bad list", req{Symbol: "SPY", Symbols: "SPY,$$$"}, false},
		{"empty list", req{Symbol: "SPY", Symbols: " , "}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.in)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs := toValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Message, "ticker symbol")
		})
	}
}

func TestAppErrorUsesStatus(t *testing.T) {
	rec := do(newTestServer(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_UNAVAILABLE")

	e := Errorf(http.StatusTeapot, "odd %d", 1)
	assert.Equal(t, "ERR_UNKNOWN", e.Code)
	assert.Equal(t, "odd 1", e.Error())
}

func TestRecoverAndRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := do(newTestServer(), req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))

	rec = do(newTestServer(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestCORS(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dash.example")
	rec := do(s, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dash.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec = do(s, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(applogger.Nop(), []Handler{testHandler{}}, WithRegistry(prometheus.NewRegistry()))
	do(s, httptest.NewRequest(http.MethodGet, "/boom", nil))

	rec := do(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `signalengine_http_requests_total{method="GET",route="/boom",status="503"} 1`)
}

func TestStatusError(t *testing.T) {
	assert.True(t, (&StatusError{Code: 502}).Temporary())
	assert.True(t, (&StatusError{Code: 429}).Temporary())
	assert.False(t, (&StatusError{Code: 404}).Temporary())
}
