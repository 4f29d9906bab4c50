package httpapi

import "net/http"

// HandleHealth reports whether a database connection can be established
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ok, err := h.db.CheckConnection(r.Context())
	if err != nil {
		h.writeInternalError(w, r, err, "health check failed")
		return
	}

	if !ok {
		h.logger.Warn().Str("container", h.containerName).Msg("database unreachable")
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    StatusUnhealthy,
			Container: h.containerName,
		})
		return
	}

	h.logger.Debug().Str("container", h.containerName).Msg("health check")

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    StatusHealthy,
		Container: h.containerName,
	})
}
