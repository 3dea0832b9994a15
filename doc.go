// Package scsdk is a client for the Seller Center e-commerce API. It builds
// signed requests, dispatches them over GET or POST, and normalizes JSON and
// XML responses into a uniform success/error shape:
//
//   - Layered option model – client defaults, constructor overrides and
//     per-call overrides merged last-writer-wins
//   - HMAC-SHA256 request signing over the canonical sorted query string
//   - Error-envelope detection for both wire formats, surfaced as one typed
//     error carrying the provider code and message
//   - Injectable transport, clock and random source so every request is
//     unit-testable without network access
//   - Optional Prometheus metrics and lightweight structured debug logging
//
// Typical usage:
//
//	client := scsdk.New("seller@example.com", apiKey,
//	    scsdk.WithAPIFormat("json"),
//	    scsdk.WithTimeout(15*time.Second),
//	)
//	body, err := client.Get(ctx, "GetOrders", scsdk.Options{
//	    "params": map[string]any{"CreatedAfter": "2024-01-01T00:00:00+07:00"},
//	})
//
// Per-resource helpers (orders, products) are thin wrappers over Get/Post and
// are attached through an explicit registration table; see Registry.
//
// The client never retries – every failure is surfaced immediately and the
// caller owns retry policy.
package scsdk
