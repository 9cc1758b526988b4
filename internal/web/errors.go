package web

// errors.go provides unified error responses for the API.
//
// Technical errors are logged server-side with the request ID for
// correlation; clients receive a stable error code and a user-facing
// message. The core engine itself never errors — everything handled here
// comes from the transport boundary (bad payloads) or the store.

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"sheetsense/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// errorPattern maps a technical error substring to a client-facing message.
// First match wins, so specific patterns come before general ones.
type errorPattern struct {
	pattern string
	msg     ErrorResponse
}

var errorPatterns = []errorPattern{
	{"request body too large", ErrorResponse{
		Error:  "Payload too large",
		Action: "Send a smaller grid or raise SERVER_MAX_BODY_BYTES",
		Code:   "REQ001",
	}},
	{"invalid character", ErrorResponse{
		Error:  "Request body is not valid JSON",
		Action: "Check the payload encoding",
		Code:   "REQ002",
	}},
	{"unexpected end of json", ErrorResponse{
		Error:  "Request body is truncated",
		Action: "Resend the complete payload",
		Code:   "REQ002",
	}},
	{"connection refused", ErrorResponse{
		Error:  "Mapping store is unavailable",
		Action: "Try again in a few moments",
		Code:   "DB001",
	}},
	{"unique constraint", ErrorResponse{
		Error:  "Duplicate column letter in mapping set",
		Action: "Each column letter may appear once per sheet",
		Code:   "DB002",
	}},
	{"timeout", ErrorResponse{
		Error:  "Operation timed out",
		Action: "Try again later",
		Code:   "DB003",
	}},
}

// mapError converts a technical error into a client-facing response.
func mapError(err error) ErrorResponse {
	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}
	return ErrorResponse{
		Error:  "Something went wrong",
		Action: "Try again; if the problem persists, check the server logs",
		Code:   "ERR000",
	}
}

// respondError logs the technical error and writes the mapped JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	msg := mapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, statusCode, msg)
}

// respondBadRequest writes a 400 with a literal message, for payloads that
// decoded fine but fail validation.
func (s *Server) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	logging.FromContext(r.Context()).Warn("bad request",
		"path", r.URL.Path,
		"reason", message,
	)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Code: "REQ003"})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
