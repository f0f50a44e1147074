package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/me/cpusched/pkg/model"
)

type disciplineInfo struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Preemptive bool   `json:"preemptive"`
}

func newDisciplineInfo(d model.Discipline) disciplineInfo {
	return disciplineInfo{
		ID:         int(d),
		Name:       d.String(),
		Title:      d.Title(),
		Preemptive: d.Preemptive(),
	}
}

func (s *Server) handleListDisciplines(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	all := model.AllDisciplines()
	out := make([]disciplineInfo, len(all))
	for i, d := range all {
		out[i] = newDisciplineInfo(d)
	}
	respondOK(w, reqID, out)
}

func (s *Server) handleGetDiscipline(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	id := chi.URLParam(r, "id")
	d, err := model.ParseDiscipline(id)
	if err != nil {
		respondError(w, reqID, http.StatusNotFound, model.NewNotFoundError("discipline", id))
		return
	}
	respondOK(w, reqID, newDisciplineInfo(d))
}
