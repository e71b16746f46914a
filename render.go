package weetools

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	api "github.com/dracory/api"
)

// WriteSuccess writes a success envelope with a message and status code using api.Respond.
func WriteSuccess(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if status == http.StatusOK {
		api.Respond(w, r, api.Success(msg))
		return
	}
	api.RespondWithStatusCode(w, r, api.Success(msg), status)
}

// WriteSuccessWithData writes a success envelope with message and data.
func WriteSuccessWithData(w http.ResponseWriter, r *http.Request, msg string, data map[string]any) {
	api.Respond(w, r, api.SuccessWithData(msg, data))
}

// WriteError writes an error envelope with the given message.
func WriteError(w http.ResponseWriter, r *http.Request, msg string) {
	// Ensure JSON content type in case upstream doesn't set it.
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	api.Respond(w, r, api.Error(msg))
}

// JSON writes v as a plain JSON body (no envelope) with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HTML writes an HTML body with the given status.
func HTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Text writes a plain text body with the given status.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// File serves the file at path inline, letting net/http pick the content type.
func File(w http.ResponseWriter, r *http.Request, path string) {
	w.Header().Set("Content-Disposition", "inline; filename="+filepath.Base(path))
	http.ServeFile(w, r, path)
}

// Download serves the file at path as an attachment. An empty name falls
// back to the file's base name.
func Download(w http.ResponseWriter, r *http.Request, path, name string) {
	if name == "" {
		name = filepath.Base(path)
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// Status writes the code with its standard status text as the body.
func Status(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
	_, _ = w.Write([]byte(http.StatusText(code)))
}

// Redirect issues a 302 redirect to url.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}
