// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

const (
	corsAllowMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"
	corsMaxAge       = "600"
)

// withCORS allows cross-origin requests from any origin. Preflight requests
// are answered with 204 and never reach the router.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Add("Vary", "Origin")

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			header.Set("Access-Control-Expose-Headers", traceIDHeader+", "+resourceIDHeader)
			next.ServeHTTP(w, r)
			return
		}

		header.Add("Vary", "Access-Control-Request-Method")
		header.Add("Vary", "Access-Control-Request-Headers")
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			header.Set("Access-Control-Allow-Headers", requested)
		}
		header.Set("Access-Control-Max-Age", corsMaxAge)

		w.WriteHeader(http.StatusNoContent)
	})
}
