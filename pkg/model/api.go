package model

import "time"

// Response is the standard API response envelope.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

// SimulationRequest is the body of POST /api/v1/simulations.
// An empty Discipline runs every discipline in order.
type SimulationRequest struct {
	Discipline string       `json:"discipline,omitempty"`
	Quantum    int          `json:"quantum,omitempty"`
	Seed       uint64       `json:"seed,omitempty"`
	Processes  []Descriptor `json:"processes"`
}
