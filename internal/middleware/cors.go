package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowPrivateNets bool
}

// DefaultCORSConfig returns the CORS policy for the given environment.
// Production allows only the configured origins, everything else is
// permissive to keep local development painless.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins: []string{
				"https://yumzoom.app",
				"https://admin.yumzoom.app",
			},
		}
	}

	return CORSConfig{AllowPrivateNets: true}
}

// CORS returns a middleware applying the given CORS policy.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(cfg, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, X-Requested-With")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg CORSConfig, origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}

	if cfg.AllowPrivateNets {
		host := origin
		if i := strings.Index(origin, "://"); i >= 0 {
			host = origin[i+3:]
		}
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		if host == "localhost" || host == "127.0.0.1" ||
			strings.HasPrefix(host, "192.168.") || strings.HasPrefix(host, "10.") {
			return true
		}
	}

	return false
}
