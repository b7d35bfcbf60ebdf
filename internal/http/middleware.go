package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/gate"
)

// requireRoute отказ gate превращается в 303 с Location
func (s *Server) requireRoute(route gate.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := s.gate.Check(c, route)
		if d.Allowed {
			c.Next()
			return
		}
		s.svc.Metrics.GateRedirected(string(route), string(d.Redirect))
		s.svc.Log.Debug("route gated",
			zap.String("route", string(route)),
			zap.String("redirect", string(d.Redirect)))
		c.Header("Location", string(d.Redirect))
		c.AbortWithStatusJSON(http.StatusSeeOther, gin.H{"redirect": string(d.Redirect)})
	}
}
