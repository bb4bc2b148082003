// Package ray emits debug events to a locally running Ray inspector.
//
// A Session accumulates payloads (log values, text, colors, HTML, screen
// commands, markers) and, after every call, posts the whole accumulated
// request to the inspector. Delivery is best-effort: transport failures are
// swallowed and never reach the caller.
//
//	ray.New().Text("checkout").Color("green")
//	ray.Ray(order, user)
//
// A Session is not safe for concurrent use.
package ray
