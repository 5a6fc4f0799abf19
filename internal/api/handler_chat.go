package api

import (
	"net/http"
	"strings"
)

type chatRequest struct {
	UserInput *string `json:"user_input"`
}

type summarizeRequest struct {
	Text *string `json:"text"`
}

type translateRequest struct {
	Text           *string `json:"text"`
	TargetLanguage *string `json:"target_language"`
}

type sentimentRequest struct {
	Text *string `json:"text"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

type sentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

// HandleChat serves POST /chat.
func (h *APIHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserInput == nil {
		respondError(w, http.StatusBadRequest, "user_input is required")
		return
	}

	reply, err := h.chat.Chat(r.Context(), *req.UserInput)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, chatResponse{Response: reply})
}

// HandleSummarize serves POST /summarize.
func (h *APIHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == nil {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	reply, err := h.chat.Summarize(r.Context(), *req.Text)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summarizeResponse{Summary: reply})
}

// HandleTranslate serves POST /translate.
func (h *APIHandler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == nil {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.TargetLanguage == nil || strings.TrimSpace(*req.TargetLanguage) == "" {
		respondError(w, http.StatusBadRequest, "target_language is required")
		return
	}

	reply, err := h.chat.Translate(r.Context(), *req.Text, *req.TargetLanguage)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, translateResponse{Translation: reply})
}

// HandleSentiment serves POST /sentiment.
func (h *APIHandler) HandleSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == nil {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	reply, err := h.chat.Sentiment(r.Context(), *req.Text)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sentimentResponse{Sentiment: reply})
}
