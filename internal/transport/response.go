package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"pcstore-be/internal/logger"

	"go.uber.org/zap"
)

// ErrorBody is the error envelope returned by every route.
type ErrorBody struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// DataBody wraps payloads for routes that answer with {data: ...}.
type DataBody struct {
	Data interface{} `json:"data"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Warn("failed to encode response", zap.Error(err))
	}
}

func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataBody{Data: data})
}

func WriteError(w http.ResponseWriter, status int, message string, err error) {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, status, body)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

const maxBodyBytes = 1 << 20

// DecodeJSON decodes a request body of at most 1 MiB into dst.
// Unknown fields are ignored; clients echo whole documents back on update.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
}
