package handlers

import (
	"net/http"

	"sportclash/internal/service"
)

// AdminHandler serves administrative operations
type AdminHandler struct {
	backupService *service.BackupService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(backupService *service.BackupService) *AdminHandler {
	return &AdminHandler{backupService: backupService}
}

// ExportData returns a JSON snapshot of every fact table, the same shape
// the backup CLI writes to disk
func (h *AdminHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.backupService.Snapshot()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to export data", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}
