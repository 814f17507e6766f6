package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse is the JSON envelope of every non-2xx answer.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, detail string, cause error) {
	resp := ErrorResponse{
		Detail: detail,
	}
	if cause != nil {
		resp.Error = cause.Error()
	}
	writeError(w, statusCode, resp)
}

func WriteValidationErrorResponse(w http.ResponseWriter, fields map[string]string) {
	writeError(w, http.StatusBadRequest, ErrorResponse{
		Detail: "Invalid input.",
		Errors: fields,
	})
}

func writeError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
