// Package api provides the HTTP client for the DVD rental backend.
//
// # Overview
//
// The client wraps the backend's REST endpoints for rental mutations
// (create, return, cancel), the three catalogs (customers, films, staff),
// and the four canned reports. Raw JSON payloads are handed to the rental
// package for normalization; callers only ever see domain records.
//
// # Response shapes
//
// The backend is inconsistent about envelopes. Mutation endpoints return
// enveloped single objects:
//
//	{ "success": true, "message": "...", "data": { ... } }
//
// Catalog and report endpoints return either a bare array, or an envelope
// with the array under "data" or a domain-specific key ("rentals", "staff").
// The collection and singleObject helpers absorb both shapes; a
// success:false envelope surfaces as an error carrying the backend message.
//
// # Request handling
//
// All requests take a context, set Accept and User-Agent headers, and share
// one fixed-timeout http.Client. There are no retries and no cancellation of
// in-flight calls beyond the context; a call completes, times out, or fails.
// Mutation request bodies are validated (required, positive IDs) before
// anything goes on the wire.
//
// # Error handling
//
// Transport failures, HTTP >= 400 statuses, and undecodable bodies return
// wrapped errors. Data-quality problems inside a 2xx response never do;
// those degrade inside the rental normalizer.
package api
