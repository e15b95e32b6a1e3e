// Package httpx writes the API response envelope shared by all handlers.
package httpx

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
)

// Metadata accompanies every response body
type Metadata struct {
	Timestamp string `json:"timestamp" msgpack:"timestamp"`
}

// Envelope is the body of every successful API response
type Envelope struct {
	Data     interface{} `json:"data" msgpack:"data"`
	Metadata Metadata    `json:"metadata" msgpack:"metadata"`
}

// WantsMsgpack reports whether the client asked for a msgpack body.
func WantsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == ContentTypeMsgpack || mediaType == "application/x-msgpack" {
			return true
		}
	}
	return false
}

// Write encodes data inside the envelope as JSON, or msgpack when the
// request's Accept header asks for it.
func Write(w http.ResponseWriter, r *http.Request, status int, data interface{}) error {
	body := Envelope{
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().Format(time.RFC3339)},
	}

	if r != nil && WantsMsgpack(r) {
		encoded, err := msgpack.Marshal(body)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", ContentTypeMsgpack)
		w.WriteHeader(status)
		_, err = w.Write(encoded)
		return err
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
