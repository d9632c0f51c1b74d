package handler

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgProcessManagerRequired, func() {
		NewHandler(nil)
	})
}

func TestLocators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		tls        bool
		host       string
		wantStatus string
		wantCancel string
	}{
		{
			name:       "HTTP",
			host:       "localhost:8080",
			wantStatus: "http://localhost:8080/api/v1/process/key/k1",
			wantCancel: "http://localhost:8080/api/v1/process/cancel/key/k1",
		},
		{
			name:       "HTTPS",
			tls:        true,
			host:       "process.example.com",
			wantStatus: "https://process.example.com/api/v1/process/key/k1",
			wantCancel: "https://process.example.com/api/v1/process/cancel/key/k1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.host
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.wantStatus, statusLocator(c, "k1"))
			assert.Equal(t, tt.wantCancel, cancelLocator(c, "k1"))
		})
	}
}
