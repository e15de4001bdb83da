// Package gateway is the real-time entry point of the bidding engine:
// it authenticates websocket connections, manages per-auction channels and
// routes events between clients and the bid pipeline.
package gateway

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	bidding "github.com/rish1507/RangiLalls-backend/internal/biddingService"
	"github.com/rish1507/RangiLalls-backend/internal/identity"
	"github.com/rish1507/RangiLalls-backend/internal/session"
	"github.com/rish1507/RangiLalls-backend/utils"
)

// Gateway upgrades authenticated HTTP requests to websocket connections
type Gateway struct {
	hub      *Hub
	resolver identity.Resolver
	sessions *session.Manager
	bidding  *bidding.BiddingService
	upgrader websocket.Upgrader
}

// New creates a gateway. allowedOrigin restricts websocket handshakes; empty
// allows any origin.
func New(hub *Hub, resolver identity.Resolver, sessions *session.Manager, svc *bidding.BiddingService, allowedOrigin string) *Gateway {
	return &Gateway{
		hub:      hub,
		resolver: resolver,
		sessions: sessions,
		bidding:  svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// Hub exposes the broadcast hub for components that publish events
func (g *Gateway) Hub() *Hub {
	return g.hub
}

// HandleWS handles GET /ws. Authentication failure terminates the attempt
// before any channel operation is possible.
func (g *Gateway) HandleWS(c *gin.Context) {
	token := bearerToken(c)
	user, err := g.resolver.Resolve(c.Request.Context(), token)
	if err != nil {
		utils.Warn("websocket authentication failed", map[string]any{"error": err.Error()})
		utils.JSONError(c, http.StatusUnauthorized, err, "authentication failed")
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Error("websocket upgrade failed", map[string]any{
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.Info("user connected", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})

	client := newClient(g, conn, user)
	go client.writePump()
	go client.readPump()
}

// bearerToken pulls the session token from the Authorization header or,
// since browser websocket clients cannot set headers, the token query param
func bearerToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}
