// Package respond writes JSON responses in one envelope shape.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type envelope struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response carrying result.
func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, envelope{Result: result})
}

// Created writes a 201 response carrying result.
func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, envelope{Result: result})
}

// Fail writes an error response. A nil err uses the status text.
func Fail(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	JSON(w, status, envelope{Error: msg})
}
