package mw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantMethod string
	}{
		{name: "BodyPut", method: http.MethodPost, target: "/orders/1", body: "_method=PUT&type=veggie", wantMethod: http.MethodPut},
		{name: "BodyDeleteLowercase", method: http.MethodPost, target: "/orders/1", body: "_method=delete", wantMethod: http.MethodDelete},
		{name: "QueryDelete", method: http.MethodPost, target: "/orders/1?_method=DELETE", wantMethod: http.MethodDelete},
		{name: "UnsupportedMethod", method: http.MethodPost, target: "/orders/1", body: "_method=CONNECT", wantMethod: http.MethodPost},
		{name: "PlainPost", method: http.MethodPost, target: "/orders", body: "type=veggie", wantMethod: http.MethodPost},
		{name: "OnlyPostIsOverridden", method: http.MethodGet, target: "/orders/1?_method=DELETE", wantMethod: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var gotType string
			h := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Method
				gotType = r.PostFormValue("type")
			}))

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantMethod, got)
			if strings.Contains(tt.body, "type=veggie") {
				assert.Equal(t, "veggie", gotType, "form must stay readable after override")
			}
		})
	}
}
