package inbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shandysiswandi/gotracker/internal/courses/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

// CourseList keeps the legacy plain-text list view: a constant payload,
// byte-exact.
func (h *HTTPEndpoint) CourseList(context.Context, *http.Request) (any, error) {
	return "List of courses", nil
}

// CourseDetail echoes the requested primary key verbatim. The pk segment is
// untyped on purpose; the legacy view accepted any value and echoed it back.
func (h *HTTPEndpoint) CourseDetail(ctx context.Context, _ *http.Request) (any, error) {
	pk := pkgrouter.GetParam(ctx, "pk")

	return fmt.Sprintf("Details for course with id %s", pk), nil
}

func (h *HTTPEndpoint) CreateCourse(ctx context.Context, r *http.Request) (any, error) {
	var req CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	course, err := h.uc.Create(ctx, usecase.CreateInput{
		Code:  req.Code,
		Title: req.Title,
	})
	if err != nil {
		return nil, err
	}

	return CreateCourseResponse{
		ID:    course.ID,
		Code:  course.Code,
		Title: course.Title,
	}, nil
}
