// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/go-chi/chi/v5"
)

// MethodNotAllowed returns a handler for [chi.Mux.MethodNotAllowed] that
// answers with a JSON 405 and an Allow header listing the methods the
// matched route accepts.
//
// Only static patterns registered directly on router are matched against
// the request path; for other routes the Allow header is omitted.
func MethodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}

			methods := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				methods = append(methods, method)
			}
			sort.Strings(methods)
			w.Header().Set("Allow", strings.Join(methods, ", "))
			break
		}

		utils.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// NotFound answers unknown paths with a JSON 404.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, "Not found", http.StatusNotFound)
}
