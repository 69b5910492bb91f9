package inbound

import "net/http"

type CreateCourseRequest struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type CreateCourseResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

func (CreateCourseResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateCourseResponse) Message() string {
	return "course created"
}
