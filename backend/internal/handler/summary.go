package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadline/shared/api"
	internal_errors "github.com/itchan-dev/threadline/shared/errors"
	"github.com/itchan-dev/threadline/shared/utils"
)

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.results.Summary())
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	posts, messages := h.results.Activity()
	utils.WriteJSON(w, api.ActivityResponse{Posts: posts, Messages: messages})
}

// GetRunSummary reads an archived run; 404 when archiving is disabled.
func (h *Handler) GetRunSummary(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.NotFound)
		return
	}
	summary, err := h.archive.GetRunSummary(r.Context(), chi.URLParam(r, "run"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, summary)
}

// GetRunThreads lists the thread roots of an archived run in engine order.
func (h *Handler) GetRunThreads(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.NotFound)
		return
	}
	roots, err := h.archive.ListThreadRoots(r.Context(), chi.URLParam(r, "run"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, roots)
}
