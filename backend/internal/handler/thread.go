package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadline/shared/api"
	"github.com/itchan-dev/threadline/shared/utils"
)

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads := h.results.Threads()
	resp := make([]api.ThreadMetadataResponse, len(threads))
	for i, t := range threads {
		resp[i] = api.NewThreadMetadata(t)
	}
	utils.WriteJSON(w, resp)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	t, err := h.results.Thread(chi.URLParam(r, "root"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewThread(t))
}

func (h *Handler) GetThreadHTML(w http.ResponseWriter, r *http.Request) {
	t, err := h.results.Thread(chi.URLParam(r, "root"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	page, err := h.renderer.Thread(t)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteHTML(w, page)
}
