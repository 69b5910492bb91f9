package pkgrouter

import (
	"context"
	"strconv"
)

type paramsContextKey struct{}

type routeContextKey struct{}

// GetParam reads a path parameter from the request context as stored by the
// router during matching.
func GetParam(ctx context.Context, key string) string {
	params, _ := ctx.Value(paramsContextKey{}).(Params)
	return params.ByName(key)
}

// GetIntParam reads a path parameter and parses it as an int64.
//
// For a segment declared as {name:int} the parse cannot fail, since the
// router already validated the value during matching.
func GetIntParam(ctx context.Context, key string) (int64, error) {
	return strconv.ParseInt(GetParam(ctx, key), 10, 64)
}

// MatchedRoutePattern returns the pattern of the route that matched the
// request, or the empty string outside of a dispatch.
func MatchedRoutePattern(ctx context.Context) string {
	pattern, _ := ctx.Value(routeContextKey{}).(string)
	return pattern
}
