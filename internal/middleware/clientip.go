package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP returns the client address as resolved by the engine. Forwarding
// headers are only honoured when the peer is a trusted proxy (see
// gin.Engine.SetTrustedProxies). It is empty when no valid IP is known.
func ClientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if net.ParseIP(ip) == nil {
		return ""
	}
	return ip
}

// AllowIPs aborts with 403 unless the client address is listed.
func (mw Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(mw.metricsAllowedIPs) == 0 || ipAllowed(ClientIP(c), mw.metricsAllowedIPs) {
			c.Next()
			return
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func ipAllowed(ip string, allowed []string) bool {
	parsed := net.ParseIP(ip)
	for _, a := range allowed {
		if ip == a {
			return true
		}
		if !strings.Contains(a, "/") || parsed == nil {
			continue
		}
		_, ipNet, err := net.ParseCIDR(a)
		if err != nil {
			continue
		}
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}
