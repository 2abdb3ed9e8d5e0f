package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaReporter returns the applied migration version and the newest one
// the binary ships with.
type schemaReporter interface {
	SchemaVersion(ctx context.Context) (current, latest int64, err error)
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	db      dbPinger
	schema  schemaReporter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaReporter, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status    string        `json:"status"`
	Version   string        `json:"version,omitempty"`
	Database  *DBStatus     `json:"database,omitempty"`
	Schema    *SchemaStatus `json:"schema,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// DBStatus reports database reachability.
type DBStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// SchemaStatus compares the applied migration with the embedded ones.
// Status is "ok", "behind" (pending migrations) or "unknown".
type SchemaStatus struct {
	Status  string `json:"status"`
	Current int64  `json:"current"`
	Latest  int64  `json:"latest"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 once the database is reachable and every embedded
// migration is applied, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := h.check(r.Context())
	resp.Database.Latency = ""
	writeJSON(w, statusCode(resp.Status), resp)
}

// Health is Ready plus database latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := h.check(r.Context())
	resp.Version = h.version
	writeJSON(w, statusCode(resp.Status), resp)
}

func (h *HealthHandler) check(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Database = &DBStatus{Status: "down"}
		return resp
	}
	resp.Database = &DBStatus{Status: "ok", Latency: time.Since(start).String()}

	current, latest, err := h.schema.SchemaVersion(ctx)
	switch {
	case err != nil:
		resp.Status = "down"
		resp.Schema = &SchemaStatus{Status: "unknown", Latest: latest}
	case current < latest:
		resp.Status = "down"
		resp.Schema = &SchemaStatus{Status: "behind", Current: current, Latest: latest}
	default:
		resp.Schema = &SchemaStatus{Status: "ok", Current: current, Latest: latest}
	}
	return resp
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
