package httpapi

import (
	"net/http"
	"strconv"
)

// HandleNumberOfTables returns the number of tables in the database catalog
func (h *Handler) HandleNumberOfTables(w http.ResponseWriter, r *http.Request) {
	count, err := h.db.CountTables(r.Context())
	if err != nil {
		h.writeInternalError(w, r, err, "failed to count tables")
		return
	}

	h.logger.Debug().Int64("number_of_tables", count).Msg("table count")

	writeJSON(w, http.StatusOK, TableCountResponse{
		NumberOfTables: strconv.FormatInt(count, 10),
	})
}
