// Package shared holds the request plumbing used by both the handlers and the
// middleware: the trace and identity context values, JSON decoding and
// validation, and the JSON responders.
package shared
