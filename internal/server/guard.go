package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cozy-creator/comfy-panel/internal/api"
)

const (
	// panel.js sends this on every action. A cross-site form post cannot set
	// it without a CORS preflight.
	requestedWithHeader = "X-Requested-With"
	requestedWithValue  = "comfy-panel"
)

// sameOrigin refuses action posts that another site could have made. The
// request must carry the panel's X-Requested-With header, and an Origin, when
// present, must be the panel's own host or one of allowed.
func sameOrigin(allowed []string, logger *zap.Logger) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		origins[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		if reason := refuse(c.Request, origins); reason != "" {
			logger.Warn("refused cross-site action",
				zap.String("path", c.Request.URL.Path),
				zap.String("origin", c.GetHeader("Origin")),
				zap.String("reason", reason),
				zap.String("request_id", c.GetString(api.RequestIDKey)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "cross-site request refused"})
			return
		}
		c.Next()
	}
}

func refuse(r *http.Request, origins map[string]bool) string {
	if r.Header.Get(requestedWithHeader) != requestedWithValue {
		return "missing " + requestedWithHeader
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		if r.Header.Get("Sec-Fetch-Site") == "cross-site" {
			return "cross-site fetch"
		}
		return ""
	}

	if origins["*"] || origins[origin] {
		return ""
	}
	if u, err := url.Parse(origin); err == nil && u.Host != "" && strings.EqualFold(u.Host, r.Host) {
		return ""
	}
	return "foreign origin"
}
