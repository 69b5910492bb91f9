package inbound

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shandysiswandi/gotracker/internal/admin"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
)

// RegisterHTTPEndpoint mounts the read-only management surface over the
// registry.
func RegisterHTTPEndpoint(r *pkgrouter.Router, registry *admin.Registry) {
	end := &HTTPEndpoint{registry: registry}

	r.GET("/admin/", end.Index).Named("admin_index")
	r.GET("/admin/{model}/", end.ModelList).Named("admin_model_list")
}

type HTTPEndpoint struct {
	registry *admin.Registry
}

type modelSummary struct {
	Model        string             `json:"model"`
	Presentation admin.Presentation `json:"presentation"`
}

type indexResponse struct {
	Models []modelSummary `json:"models"`
}

func (indexResponse) Message() string {
	return "registered models"
}

func (h *HTTPEndpoint) Index(ctx context.Context, _ *http.Request) (any, error) {
	regs := h.registry.Registrations()

	models := make([]modelSummary, 0, len(regs))
	for _, reg := range regs {
		models = append(models, modelSummary{
			Model:        reg.Model,
			Presentation: reg.Presentation,
		})
	}

	return indexResponse{Models: models}, nil
}

type modelListResponse struct {
	Model string      `json:"model"`
	Rows  []admin.Row `json:"rows"`
	total int
}

func (r modelListResponse) Message() string {
	return "model rows"
}

func (r modelListResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
	}
}

func (h *HTTPEndpoint) ModelList(ctx context.Context, _ *http.Request) (any, error) {
	model := pkgrouter.GetParam(ctx, "model")

	reg, ok := h.registry.Lookup(model)
	if !ok {
		return nil, pkgerror.NewNotFound(fmt.Sprintf("model %q is not registered", model))
	}

	rows, err := reg.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(rows)
	if max := reg.Presentation.PerPage; total > max {
		rows = rows[:max]
	}

	projected := make([]admin.Row, 0, len(rows))
	for _, row := range rows {
		projected = append(projected, reg.Presentation.Project(row))
	}

	return modelListResponse{Model: reg.Model, Rows: projected, total: total}, nil
}
