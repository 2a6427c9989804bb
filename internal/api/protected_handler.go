package api

import (
	"net/http"

	"github.com/chenna14/Real-time-Data-Classification/internal/api/shared"
)

// Protected handles GET /api/protected, a probe for a valid token.
func Protected(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "This is a protected route"})
}
