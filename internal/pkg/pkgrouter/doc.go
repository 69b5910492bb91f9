// Package pkgrouter implements HTTP routing and common middleware used by
// the API.
//
// The router keeps an explicit, ordered route table: patterns are matched
// in registration order, the first match wins, and parameter segments may
// be typed ({id:int}). On top of dispatch it provides the shared edge
// concerns: text/JSON response encoding, error mapping, logging, panic
// recovery, and correlation ID propagation.
package pkgrouter
