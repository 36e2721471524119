package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

func GetPortfolioHandler(renderer port.HTTPRenderer, svc port.PortfolioGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := renderer.RenderPortfolio(r.Context(), svc)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not get portfolio", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Debugf(r.Context(), "✅  Returning cached portfolio %s", etag)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
	}
}
