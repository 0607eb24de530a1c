// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - CORS: permissive cross-origin headers for map frontends

# Helpers

  - JSONResponse: write a JSON body with status code
  - GeoJSONResponse: write a prepared view document as application/geo+json
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
