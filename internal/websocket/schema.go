package websocket

import "github.com/studyhq/studyplan-backend/internal/service"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionRefresh Action = "refresh"
	ActionPing    Action = "ping"
)

// RequestEnvelope carries the client's requested action.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError   Event = "error"
	EventSummary Event = "summary"
	EventPong    Event = "pong"
)

// SummaryResponse pushes a dashboard snapshot to the client.
type SummaryResponse struct {
	Event   Event            `json:"event"`
	Summary *service.Summary `json:"summary"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
