package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// A string result is written verbatim as text/plain; any other result is
// JSON encoded inside the standard success envelope.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler dispatching requests against an ordered route
// table.
//
// Routes are matched in registration order and the first match wins.
// Registering the same method and pattern twice keeps both entries, so the
// first registration always shadows the second. The table is meant to be
// built once during startup and left alone afterwards; registration is not
// safe for concurrent use with dispatch.
type Router struct {
	routes     []*Route
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uuid Generator) *Router {
	errorCodec := func(ctx context.Context, w http.ResponseWriter, err error) {
		var gerr *pkgerror.Error
		if !errors.As(err, &gerr) {
			writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
			return
		}

		writeJSON(w, errorResponse{Message: gerr.Msg()}, gerr.StatusCode())
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		if text, ok := resp.(string); ok {
			writeText(w, text, http.StatusOK)
			return
		}

		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		msg := "request has been successfully"
		if m, ok := resp.(interface {
			Message() string
		}); ok {
			msg = m.Message()
		}

		var meta map[string]any
		if m, ok := resp.(interface {
			Meta() map[string]any
		}); ok {
			meta = m.Meta()
		}

		writeJSON(w, successReponse{
			Message: msg,
			Data:    resp,
			Meta:    meta,
		}, code)
	}

	ro := &Router{
		errorCodec: errorCodec,
		encoder:    okCodec,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}

	ro.GET("/health", func(context.Context, *http.Request) (any, error) {
		return healthResponse{Status: "running"}, nil
	}).Named("health")

	return ro
}

// Use appends middleware to the existing middleware stack.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(pattern string, h Handler, mws ...Middleware) *Route {
	return r.endpoint(http.MethodGet, pattern, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(pattern string, h Handler, mws ...Middleware) *Route {
	return r.endpoint(http.MethodPost, pattern, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(pattern string, h Handler, mws ...Middleware) *Route {
	return r.endpoint(http.MethodPut, pattern, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(pattern string, h Handler, mws ...Middleware) *Route {
	return r.endpoint(http.MethodPatch, pattern, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(pattern string, h Handler, mws ...Middleware) *Route {
	return r.endpoint(http.MethodDelete, pattern, h, mws...)
}

// Handle registers a raw http.Handler for the given method and pattern, and
// returns the Route so callers can attach a name with Named.
//
// It panics when the pattern is malformed, since the route table is built
// during startup and a bad pattern is a programming error.
func (r *Router) Handle(method, pattern string, h http.Handler, mws ...Middleware) *Route {
	segs, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}

	rt := &Route{
		method:  method,
		pattern: pattern,
		segs:    segs,
		handler: Chain(h, append(r.mws, mws...)...),
	}
	r.routes = append(r.routes, rt)

	return rt
}

// Routes returns a copy of the route table in registration order.
func (r *Router) Routes() []*Route {
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// RouteByName returns the first route registered under the given name, or nil.
func (r *Router) RouteByName(name string) *Route {
	if name == "" {
		return nil
	}
	for _, rt := range r.routes {
		if rt.name == name {
			return rt
		}
	}
	return nil
}

func (r *Router) endpoint(method, pattern string, h Handler, mws ...Middleware) *Route {
	return r.Handle(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.errorCodec(re.Context(), w, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), mws...)
}

// ServeHTTP scans the route table in order and dispatches to the first route
// whose method and pattern both match. A path that matches some route's
// pattern but never its method yields 405; anything else unmatched yields
// 404, including paths whose typed segment fails to parse.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	pathMatched := false

	for _, rt := range r.routes {
		params, ok := rt.match(req.URL.Path)
		if !ok {
			continue
		}

		if rt.method != req.Method {
			pathMatched = true
			continue
		}

		ctx := context.WithValue(req.Context(), paramsContextKey{}, params)
		ctx = context.WithValue(ctx, routeContextKey{}, rt.pattern)
		rt.handler.ServeHTTP(w, req.WithContext(ctx))
		return
	}

	if pathMatched {
		writeJSON(w, errorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
}

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

type successReponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (healthResponse) Message() string {
	return "server is running well"
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		slog.Error("server: failed to encode data to json", "error", err)
	}
}

func writeText(w http.ResponseWriter, text string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("server: failed to write text response", "error", err)
	}
}
