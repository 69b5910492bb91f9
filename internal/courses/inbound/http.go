package inbound

import (
	"context"

	"github.com/shandysiswandi/gotracker/internal/courses/entity"
	"github.com/shandysiswandi/gotracker/internal/courses/usecase"
	"github.com/shandysiswandi/gotracker/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Course, error)
	List(ctx context.Context) ([]entity.Course, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/courses/", end.CourseList).Named("course_list")
	r.GET("/courses/{pk}/", end.CourseDetail).Named("course_detail")

	r.POST("/courses", end.CreateCourse).Named("course_create")
}
