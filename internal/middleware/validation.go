package middleware

import (
	"context"
	"net/http"
	"net/url"
	"reflect"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const validatedRequestKey contextKey = "validated_request"

// request models implement this interface
type QueryValidator interface {
	Bind(url.Values)
	Validate() *models.ErrorResponse
}

/*
tldr
- binds the query parameters of a GET request into a Go struct
- validates it using the struct's own Validate() method
- stores the validated struct in the request context
- passes control to the actual handler, which can assume the request is valid
*/

// validates query-string requests using generics
func ValidateQuery[T QueryValidator]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Create a new instance of the request type
			var req T
			reqType := reflect.TypeOf(req)
			if reqType.Kind() == reflect.Ptr {
				req = reflect.New(reqType.Elem()).Interface().(T)
			} else {
				req = reflect.New(reqType).Interface().(T)
			}

			req.Bind(r.URL.Query())

			// validation failures are rejected before any generation work
			if errResp := req.Validate(); errResp != nil {
				utils.JSON(w, http.StatusBadRequest, *errResp)
				return
			}

			// store validated request in context
			ctx := context.WithValue(r.Context(), validatedRequestKey, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetValidatedRequest retrieves the validated request from context
func GetValidatedRequest[T any](r *http.Request) T {
	return r.Context().Value(validatedRequestKey).(T)
}
