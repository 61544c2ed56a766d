// Package restclient implements the typed request client for the
// training-management API.
//
// All network I/O for domain resources goes through Client. The four
// verbs (Get, Post, Put, Delete) are package-level generic functions
// parameterized by the response type; a domain service composes a Client
// with resource-specific paths rather than extending a base type.
//
// Every failure surfaces as a *apperr.Error built at this boundary, so
// callers only ever handle one error shape.
package restclient
