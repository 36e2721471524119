package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/go-chi/chi/v5"
)

// ServeMediaHandler streams a stored file from folder. The object key is
// folder/<wildcard>.
func ServeMediaHandler(strg port.Storage, folder string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		if name == "" {
			WriteError(w, http.StatusNotFound, "file not found", nil)
			return
		}
		key := folder + "/" + name

		info, err := strg.StatFile(r.Context(), key)
		if err != nil {
			if errors.Is(err, port.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "file not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not read file", err)
			return
		}

		etag := "\"" + strconv.FormatInt(info.LastModified.UnixNano(), 36) + "-" + strconv.FormatInt(info.SizeBytes, 36) + "\""
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		ct := info.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		if info.SizeBytes > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(info.SizeBytes, 10))
		}
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}

		body, err := strg.GetFile(r.Context(), key)
		if err != nil {
			w.Header().Del("Content-Length")
			if errors.Is(err, port.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "file not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not read file", err)
			return
		}
		defer body.Close()

		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, body); err != nil {
			logger.Warnf(r.Context(), "⚠️  failed streaming %q: %v", key, err)
		}
	}
}
