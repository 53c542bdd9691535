// filepath: internal/api/handlers/snapshot_handler.go
package handlers

import (
	"errors"
	"net/http"

	"recipehub/internal/logging"
	"recipehub/internal/shared"
)

// @Summary Export the store
// @Description Downloads the whole store as one JSON snapshot document and writes the same document to the configured snapshot file. This is a public endpoint.
// @Tags Snapshot
// @Produce json
// @Success 200 {file} file "Snapshot document"
// @Failure 500 {object} ErrorResponse "Export failed"
// @Router /export [get]
func (h *Handlers) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	// Persist to the snapshot file first, so a failed export never sends a
	// partial document.
	path, err := h.Snapshot.ExportToFile()
	if err != nil {
		logging.Log.Errorf("ExportSnapshot: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to export store")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="db_export.json"`)
	http.ServeFile(w, r, path)

	h.Auditor.Log(r.Context(), "snapshot.export", getUserFromContext(r), "Store", nil)
}

// @Summary Import a snapshot
// @Description Replaces the whole store with the contents of the configured snapshot file. The document is validated in full before anything is deleted.
// @Tags Snapshot
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Malformed snapshot document"
// @Failure 404 {object} ErrorResponse "No snapshot file"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /import [post]
func (h *Handlers) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.Snapshot.Import(); err != nil {
		switch {
		case errors.Is(err, shared.ErrSnapshotMissing):
			respondWithError(w, http.StatusNotFound, "No snapshot file to import")
		case errors.Is(err, shared.ErrSnapshotFormat):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			logging.Log.Errorf("ImportSnapshot: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to import snapshot")
		}
		return
	}

	h.Auditor.Log(r.Context(), "snapshot.import", getUserFromContext(r), "Store", nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Store restored from snapshot."})
}

// @Summary Wipe the store
// @Description Deletes every user, recipe, ingredient, rating and session. The schema stays in place.
// @Tags Snapshot
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Wipe failed"
// @Security BearerAuth
// @Router /wipe [post]
func (h *Handlers) WipeStore(w http.ResponseWriter, r *http.Request) {
	actor := getUserFromContext(r)

	if err := h.Snapshot.Wipe(); err != nil {
		logging.Log.Errorf("WipeStore: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to wipe store")
		return
	}

	h.Auditor.Log(r.Context(), "store.wipe", actor, "Store", nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Store wiped."})
}
