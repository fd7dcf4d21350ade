package mw

import (
	"net/http"
	"strings"
)

const MethodOverrideField = "_method"

var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride lets an HTML form reach PUT, PATCH and DELETE routes. A POST
// carrying _method in its query string or form body is re-dispatched with
// that method before routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(MethodOverrideField)
			if method == "" {
				method = r.PostFormValue(MethodOverrideField)
			}
			if method = strings.ToUpper(strings.TrimSpace(method)); overridable[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
