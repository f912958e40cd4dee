package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/UnknownOlympus/meridian/internal/locale"
	"golang.org/x/text/language"
)

// writeJSON encodes v before touching the response, so an encoding failure
// still produces a 500 with an error body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.Log.ErrorContext(r.Context(), "Failed to encode response", "method", r.Method, "path", r.URL.Path, "error", err)
		buf.Reset()
		status = http.StatusInternalServerError
		// A map of strings always encodes.
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": locale.Text(h.language(r), locale.KeyGeneric)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Log.DebugContext(r.Context(), "Failed to write response", "path", r.URL.Path, "error", err)
	}
}

// writeError replies with {"error": ...} in the client's language.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, key string) {
	h.writeJSON(w, r, status, map[string]string{"error": locale.Text(h.language(r), key)})
}

func (h *Handler) allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	h.writeError(w, r, http.StatusMethodNotAllowed, locale.KeyMethodNotAllowed)
	return false
}

// language picks the reply language from Accept-Language, falling back to the configured default.
func (h *Handler) language(r *http.Request) language.Tag {
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return locale.Match(accept)
	}
	if h.Defaults.Language == language.Und {
		return locale.Supported[0]
	}
	return h.Defaults.Language
}
