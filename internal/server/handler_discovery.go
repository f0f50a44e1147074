package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "cpusched API",
		Version:     "v1",
		Description: "Tick-driven CPU scheduling simulator",
		Endpoints: []endpointInfo{
			{"/api/v1/disciplines", []string{"GET"}, "List scheduling disciplines"},
			{"/api/v1/disciplines/{id}", []string{"GET"}, "Single discipline by number or short name"},
			{"/api/v1/simulations", []string{"POST"}, "Run one discipline, or all five when none is given. ?format=table|yaml selects a text rendering"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
