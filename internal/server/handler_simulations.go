package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/me/cpusched/internal/kernel"
	"github.com/me/cpusched/internal/report"
	"github.com/me/cpusched/pkg/model"
)

type simulationResponse struct {
	Results []*kernel.Result `json:"results"`
}

func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	format := report.FormatJSON
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := report.ParseFormat(q)
		if err != nil {
			respondError(w, reqID, http.StatusBadRequest,
				model.NewValidationError("unsupported format",
					model.FieldError{Field: "format", Message: err.Error()}))
			return
		}
		format = f
	}

	disciplines, apiErr := s.validateSimulation(&req)
	if apiErr != nil {
		status := http.StatusBadRequest
		if apiErr.Code == model.ErrLimit {
			status = http.StatusRequestEntityTooLarge
		}
		respondError(w, reqID, status, apiErr)
		return
	}

	k := s.newKernel(req.Seed)
	results := make([]*kernel.Result, 0, len(disciplines))
	for _, d := range disciplines {
		res, err := k.Run(req.Processes, kernel.Options{
			Discipline: d,
			Quantum:    req.Quantum,
			MaxTicks:   s.config.MaxTicks,
		})
		if errors.Is(err, kernel.ErrTickLimit) {
			respondError(w, reqID, http.StatusUnprocessableEntity, &model.APIError{
				Code:    model.ErrLimit,
				Message: fmt.Sprintf("%s run exceeded %d ticks", d, s.config.MaxTicks),
			})
			return
		}
		if err != nil {
			s.logger.Error("simulation failed", "request_id", reqID, "discipline", d.String(), "error", err)
			respondError(w, reqID, http.StatusInternalServerError,
				&model.APIError{Code: model.ErrInternal, Message: err.Error()})
			return
		}
		results = append(results, res)
	}
	s.runs.Add(int64(len(results)))

	switch format {
	case report.FormatTable:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		report.Render(w, format, results)
		return
	case report.FormatYAML:
		w.Header().Set("Content-Type", "application/yaml")
		report.Render(w, format, results)
		return
	}
	respondOK(w, reqID, simulationResponse{Results: results})
}

// validateSimulation checks the request and resolves which disciplines to
// run. An empty discipline selects all five.
func (s *Server) validateSimulation(req *model.SimulationRequest) ([]model.Discipline, *model.APIError) {
	var details []model.FieldError

	disciplines := model.AllDisciplines()
	if name := strings.TrimSpace(req.Discipline); name != "" && name != "0" {
		d, err := model.ParseDiscipline(name)
		if err != nil {
			details = append(details, model.FieldError{Field: "discipline", Message: err.Error()})
		} else {
			disciplines = []model.Discipline{d}
		}
	}
	if req.Quantum < 0 {
		details = append(details, model.FieldError{Field: "quantum", Message: "quantum must be >= 0"})
	}
	if len(req.Processes) == 0 {
		details = append(details, model.FieldError{Field: "processes", Message: "at least one process is required"})
	}
	for i, p := range req.Processes {
		if p.CreationTime < 0 || p.Duration < 0 || p.Priority < 0 {
			details = append(details, model.FieldError{
				Field:   fmt.Sprintf("processes[%d]", i),
				Message: "creation_time, duration and priority must be >= 0",
			})
		}
	}
	if len(details) > 0 {
		return nil, model.NewValidationError("invalid simulation request", details...)
	}

	if limit := s.config.MaxProcesses; limit > 0 && len(req.Processes) > limit {
		return nil, &model.APIError{
			Code:    model.ErrLimit,
			Message: fmt.Sprintf("%d processes exceeds the limit of %d", len(req.Processes), limit),
		}
	}
	return disciplines, nil
}
