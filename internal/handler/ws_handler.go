package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/studyhq/studyplan-backend/internal/middleware"
	"github.com/studyhq/studyplan-backend/internal/service"
	ws "github.com/studyhq/studyplan-backend/internal/websocket"
)

// snapshotInterval is how often the dashboard stream pushes unprompted.
const snapshotInterval = 30 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live dashboard snapshots.
type WSHandler struct {
	dashboardService *service.DashboardService
	log              zerolog.Logger
	upgrader         websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(dashboardService *service.DashboardService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		dashboardService: dashboardService,
		log:              log.With().Str("component", "ws_handler").Logger(),
		upgrader:         buildUpgrader(allowedOrigins),
	}
}

// DashboardStream godoc
// WS /ws/v1/dashboard/stream
// Pushes a summary snapshot on connect, on client "refresh", and every
// snapshotInterval. All writes happen on this goroutine; the reader only
// forwards actions.
func (h *WSHandler) DashboardStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Str("user_id", claims.UserID.String()).
		Logger()
	wsLog.Info().Msg("Dashboard stream connected")

	actions := make(chan ws.Action, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				} else {
					wsLog.Debug().Msg("Connection closed")
				}
				return
			}
			// Drop rather than block if the writer loop is behind.
			select {
			case actions <- msg.Action:
			default:
			}
		}
	}()

	push := func() bool {
		summary, err := h.dashboardService.GetSummary(c.Request.Context(), claims.Email)
		if err != nil {
			wsLog.Error().Err(err).Msg("Dashboard snapshot failed")
			ws.WriteError(conn, "snapshot failed")
			return false
		}
		return ws.WriteTyped(conn, ws.SummaryResponse{Event: ws.EventSummary, Summary: summary}) == nil
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case action := <-actions:
			switch action {
			case ws.ActionRefresh:
				if !push() {
					return
				}
			case ws.ActionPing:
				if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
					return
				}
			default:
				wsLog.Warn().Str("action", string(action)).Msg("Unknown action")
				ws.WriteError(conn, "unknown action: "+string(action))
			}
		case <-ticker.C:
			if !push() {
				return
			}
		}
	}
}
