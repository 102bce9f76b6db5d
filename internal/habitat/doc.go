// Package habitat provides an HTTP client for the habitat sensor and todo API.
//
// # Overview
//
// This package defines the API client for the remote service TermClock polls:
// one endpoint for the newest temperature sample of a device, one for the
// open todo list. It handles HTTP communication, JSON serialization, and the
// envelope format both endpoints share.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client, request construction, response handling
//   - types.go: public result types and wire structs mirroring the API schema
//   - errors.go: the typed Error every fetch returns on failure
//
// # Client Usage
//
// Create a client using the api_base_url from configuration:
//
//	client, err := habitat.NewClient("http://192.168.1.20:8080")
//	if err != nil {
//		return err
//	}
//
//	reading, err := client.FetchTemperature(ctx, "SENS-FARM01")
//	todos, err := client.FetchTodos(ctx, 10)
//
// # API Endpoints
//
// Both endpoints are POST with a JSON body:
//
//   - POST {base}/habitat/raw/list: newest raw samples for a device; the
//     client requests page one, size one, so row zero is the current reading
//   - POST {base}/todo/list: open tasks (status 0), page size equal to the
//     configured display limit
//
// Responses share an envelope {code, msg, data{page, page_size, rows,
// total}}. Code zero is success; anything else is reported as a protocol
// failure carrying the service's message.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation so an in-flight fetch dies with the app
//   - Set Content-Type and Accept to application/json
//   - Include a fixed User-Agent (termclock/0.1)
//   - Have a 5-second timeout on the underlying http.Client
//
// # Error Handling
//
// Every failure is a *Error with a Kind:
//
//   - KindNetwork: dial/timeout/reset, or a canceled context
//   - KindProtocol: non-2xx HTTP status, or envelope code != 0
//   - KindDecode: malformed JSON, or a success envelope with no sensor rows
//
// The caller treats all kinds the same (keep the previous value, mark it
// stale); kinds only change what the log line says. An empty todo row set is
// NOT an error: an empty list is a meaningful result the UI renders as its
// empty state, while a sensor response without rows cannot produce a reading
// and is a decode failure.
//
// # URL Construction
//
// api_base_url accepts several formats:
//
//   - "192.168.1.20:8080" → http://192.168.1.20:8080
//   - "http://habitat.lan" → http://habitat.lan
//   - "http://habitat.lan/api/v2" → path prefix preserved
//
// The scheme defaults to http. Query and fragment are stripped; a path
// prefix is kept and endpoint paths are joined under it.
//
// # Thread Safety
//
// The Client is safe for concurrent use; the underlying http.Client handles
// connection pooling. In practice the event loop allows at most one fetch of
// each kind in flight.
//
// # Design Rationale
//
// The client is intentionally minimal: no caching, no retries, no
// pagination beyond page one. The event loop polls on an interval and shows
// the last good value on failure, so a failed request needs no recovery here.
package habitat
