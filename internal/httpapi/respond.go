package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sheetfmt/internal/digest"
	"sheetfmt/internal/domain"
)

// statusError carries an explicit HTTP status for request-level failures.
type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &statusError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// decodeBody decodes exactly one JSON value from the request body.
func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &statusError{
				status: http.StatusRequestEntityTooLarge,
				msg:    fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			}
		}
		return badRequest("invalid JSON body: %v", err)
	}
	if dec.More() {
		return badRequest("invalid JSON body: unexpected data after value")
	}
	return nil
}

// writeJSON encodes v; successful GET responses carry an ETag and honour
// If-None-Match.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	b = append(b, '\n')

	h := w.Header()
	h.Set("Content-Type", mediaJSON+"; charset=utf-8")
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		tag := digest.ETag(b)
		h.Set("ETag", tag)
		if etagMatches(r.Header.Get("If-None-Match"), tag) {
			w.WriteHeader(http.StatusNotModified)
			return nil
		}
	}
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(b)
	return err
}

func etagMatches(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		c := strings.TrimSpace(candidate)
		if c == "*" || strings.TrimPrefix(c, "W/") == tag {
			return true
		}
	}
	return false
}

// writeError maps err to a status and writes a short plain-text message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var se *statusError
	switch {
	case errors.As(err, &se):
		status = se.status
	case domain.IsKind(err, domain.KindNotFound):
		status = http.StatusNotFound
	case domain.IsKind(err, domain.KindInvalid):
		status = http.StatusBadRequest
	case domain.IsKind(err, domain.KindUnsupported):
		status = http.StatusUnsupportedMediaType
	case domain.IsKind(err, domain.KindNotAcceptable):
		status = http.StatusNotAcceptable
	}

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err))
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
