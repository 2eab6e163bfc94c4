package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadline/shared/api"
	"github.com/itchan-dev/threadline/shared/utils"
)

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	conversations := h.results.Conversations()
	resp := make([]api.ConversationMetadataResponse, len(conversations))
	for i, c := range conversations {
		resp[i] = api.NewConversationMetadata(c)
	}
	utils.WriteJSON(w, resp)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	c, err := h.results.Conversation(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, api.NewConversation(c))
}

func (h *Handler) GetConversationHTML(w http.ResponseWriter, r *http.Request) {
	c, err := h.results.Conversation(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	page, err := h.renderer.Conversation(c)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteHTML(w, page)
}
