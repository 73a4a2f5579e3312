package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestWith(headers map[string]string, remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIP_ForwardedForWins(t *testing.T) {
	c := requestWith(map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	}, "192.0.2.1:4321")
	assert.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIP_RealIPFallback(t *testing.T) {
	c := requestWith(map[string]string{"X-Real-IP": "198.51.100.2"}, "192.0.2.1:4321")
	assert.Equal(t, "198.51.100.2", clientIP(c))
}

func TestClientIP_RemoteAddrStripsPort(t *testing.T) {
	c := requestWith(nil, "192.0.2.1:4321")
	assert.Equal(t, "192.0.2.1", clientIP(c))
}

func TestClientIP_EmptyForwardedEntryIgnored(t *testing.T) {
	c := requestWith(map[string]string{"X-Forwarded-For": " , 10.0.0.1"}, "192.0.2.1:4321")
	assert.Equal(t, "192.0.2.1", clientIP(c))
}
