package api

import (
	"errors"
	"net/http"

	"github.com/chenna14/Real-time-Data-Classification/internal/api/shared"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
)

// ClassificationHandler checks sentences against the caller's rules.
type ClassificationHandler struct {
	classification service.ClassificationService
}

// NewClassificationHandler creates a new ClassificationHandler.
func NewClassificationHandler(classification service.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{classification: classification}
}

// CheckSentence handles POST /api/check-sentence.
//
// A verdict with every rule satisfied is 200; any failed rule makes it 400
// with the same body shape plus failedRules. A missing or non-string
// sentence is a distinct 400 input error.
func (h *ClassificationHandler) CheckSentence(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CheckSentenceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidSentence, err)
		return
	}

	verdict, err := h.classification.CheckSentence(r.Context(), userID, req.Sentence)
	if err != nil {
		if errors.Is(err, classify.ErrInvalidSentence) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidSentence, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgServerError, err)
		return
	}

	status := http.StatusOK
	if !verdict.AllRulesSatisfied {
		status = http.StatusBadRequest
	}
	shared.RespondWithJSON(w, r, status, verdict)
}
