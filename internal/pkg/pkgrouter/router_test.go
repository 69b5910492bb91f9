package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/gotracker/internal/pkg/pkgerror"
)

type staticID struct{}

func (staticID) Generate() string { return "test-cid" }

func newTestRouter() *Router {
	return NewRouter(staticID{})
}

func doRequest(router http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "http://example.com"+path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterTextResponse(t *testing.T) {
	router := newTestRouter()
	router.GET("/courses/", func(context.Context, *http.Request) (any, error) {
		return "List of courses", nil
	})

	rec := doRequest(router, http.MethodGet, "/courses/")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Body.String(); got != "List of courses" {
		t.Fatalf("unexpected body: %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestRouterIntParamDispatch(t *testing.T) {
	router := newTestRouter()
	router.GET("/event/{event_id:int}/", func(ctx context.Context, _ *http.Request) (any, error) {
		id, err := GetIntParam(ctx, "event_id")
		if err != nil {
			return nil, pkgerror.NewServer(err)
		}
		return fmt.Sprintf("event %d", id), nil
	})

	for _, n := range []int64{0, 1, 42, 9223372036854775807} {
		rec := doRequest(router, http.MethodGet, fmt.Sprintf("/event/%d/", n))
		if rec.Code != http.StatusOK {
			t.Fatalf("id %d: unexpected status %d", n, rec.Code)
		}
		if got := rec.Body.String(); got != fmt.Sprintf("event %d", n) {
			t.Fatalf("id %d: unexpected body %q", n, got)
		}
	}
}

func TestRouterNonIntParamIsNotFound(t *testing.T) {
	router := newTestRouter()
	router.GET("/event/{event_id:int}/", func(context.Context, *http.Request) (any, error) {
		return "never", nil
	})

	for _, path := range []string{"/event/abc/", "/event/12x/", "/event/-1/"} {
		rec := doRequest(router, http.MethodGet, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("path %q: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestRouterFirstRegistrationWins(t *testing.T) {
	router := newTestRouter()
	router.GET("/courses/", func(context.Context, *http.Request) (any, error) {
		return "first", nil
	})
	router.GET("/courses/", func(context.Context, *http.Request) (any, error) {
		return "second", nil
	})

	rec := doRequest(router, http.MethodGet, "/courses/")
	if got := rec.Body.String(); got != "first" {
		t.Fatalf("expected first registration to win, got %q", got)
	}
}

func TestRouterFirstMatchWinsAcrossPatterns(t *testing.T) {
	router := newTestRouter()
	router.GET("/courses/{pk}/", func(ctx context.Context, _ *http.Request) (any, error) {
		return "param", nil
	})
	router.GET("/courses/new/", func(context.Context, *http.Request) (any, error) {
		return "literal", nil
	})

	// The parameter route was registered first, so it shadows the literal.
	rec := doRequest(router, http.MethodGet, "/courses/new/")
	if got := rec.Body.String(); got != "param" {
		t.Fatalf("expected earlier route to win, got %q", got)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter()
	router.GET("/courses/", func(context.Context, *http.Request) (any, error) {
		return "List of courses", nil
	})

	rec := doRequest(router, http.MethodPost, "/courses/")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestRouterNotFound(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/nowhere/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "endpoint not found" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestRouterErrorMapping(t *testing.T) {
	router := newTestRouter()
	router.GET("/missing/", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewNotFound("event does not exist")
	})
	router.GET("/broken/", func(context.Context, *http.Request) (any, error) {
		return nil, errors.New("plain failure")
	})

	rec := doRequest(router, http.MethodGet, "/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from pkgerror, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/broken/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for plain error, got %d", rec.Code)
	}
}

func TestRouterJSONEnvelope(t *testing.T) {
	router := newTestRouter()
	router.GET("/things/", func(context.Context, *http.Request) (any, error) {
		return map[string]any{"count": 2}, nil
	})

	rec := doRequest(router, http.MethodGet, "/things/")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data["count"] != float64(2) {
		t.Fatalf("unexpected data: %#v", body.Data)
	}
}

func TestRouterHealthRoute(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestRouterBadPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed pattern")
		}
	}()

	router := newTestRouter()
	router.GET("no-slash", func(context.Context, *http.Request) (any, error) {
		return nil, nil
	})
}

func TestRouterRoutesOrder(t *testing.T) {
	router := newTestRouter()
	router.GET("/a/", func(context.Context, *http.Request) (any, error) { return "a", nil })
	router.GET("/b/", func(context.Context, *http.Request) (any, error) { return "b", nil })

	routes := router.Routes()
	// The health route is registered by NewRouter before any caller routes.
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	if routes[0].Name() != "health" {
		t.Fatalf("expected the health route first, got %q", routes[0].Name())
	}
	if routes[1].Pattern() != "/a/" || routes[2].Pattern() != "/b/" {
		t.Fatalf("unexpected ordering: %q, %q", routes[1].Pattern(), routes[2].Pattern())
	}
}

func TestRouterRouteByName(t *testing.T) {
	router := newTestRouter()
	router.GET("/event/{event_id:int}/", func(context.Context, *http.Request) (any, error) {
		return "detail", nil
	}).Named("event_detail")
	router.GET("/unnamed/", func(context.Context, *http.Request) (any, error) {
		return "anon", nil
	})

	rt := router.RouteByName("event_detail")
	if rt == nil {
		t.Fatal("expected a route for event_detail")
	}
	if rt.Pattern() != "/event/{event_id:int}/" || rt.Method() != http.MethodGet {
		t.Fatalf("unexpected route: %s %s", rt.Method(), rt.Pattern())
	}

	if router.RouteByName("nope") != nil {
		t.Fatal("expected nil for an unknown name")
	}
	if router.RouteByName("") != nil {
		t.Fatal("expected nil for the empty name")
	}
}
