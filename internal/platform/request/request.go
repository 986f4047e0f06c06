// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nhatlepham/inkwell/internal/platform/ctxutil"
	"github.com/nhatlepham/inkwell/internal/platform/sec"
	"github.com/nhatlepham/inkwell/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
PathSegments retrieves the chi wildcard ("*") as a cleaned slice of path
segments. Content paths are hierarchical ("dsa/part-1"), so handlers work
on segments rather than raw strings.
*/
func PathSegments(request *http.Request) []string {
	wildcard := chi.URLParam(request, "*")

	var segments []string
	for _, part := range strings.Split(wildcard, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

/*
Visitor extracts the verified visitor claims from the request context.

Returns nil if the request carried no valid visitor token. Engagement
endpoints also accept a plain visitor_id in the body, so a nil result is
not an error by itself.
*/
func Visitor(request *http.Request) *sec.VisitorClaims {
	return ctxutil.GetVisitor(request.Context())
}
