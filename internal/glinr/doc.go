// Package glinr provides an HTTP client for the glinrdock daemon API.
//
// # Overview
//
// This package defines the read-only API client glinview uses to talk to a
// glinrdock daemon: discovering log sources, fetching raw log lines, and
// reading basic system information for the header.
//
// # Endpoints
//
//   - GET /v1/logs/paths: the registry of addressable log sources
//   - GET /v1/logs?path=...&lines=...: last N raw lines of one source
//   - GET /v1/system: daemon version and runtime information
//
// The path-list payload comes in two historical shapes: a "log_paths" key on
// current daemons and a bare "paths" key on older ones. The client accepts
// both, preferring "log_paths", and returns an empty list when neither is
// present.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, attach a bearer token when one is configured, and time out after
// five seconds. Non-2xx responses and malformed JSON are returned as wrapped
// errors ("api /v1/logs returned status 500", "decode response: ...").
//
// # Design Rationale
//
// The client is intentionally minimal: no caching, no retries, no
// mutations. Refresh cadence belongs to the poll controller and retry
// policy to the viewer; the client just executes one request at a time.
// The Client struct is safe for concurrent use.
package glinr
