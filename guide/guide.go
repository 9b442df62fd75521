package guide

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"embervale/utils"

	"github.com/julienschmidt/httprouter"
)

const relayTimeout = 30 * time.Second

// Handler relays survivor questions and plant photos to the model.
// The Gemini client is built on first use so the server still boots
// without a key; AI routes then fail with a config error.
type Handler struct {
	once     sync.Once
	relay    *Relay
	relayErr error
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) getRelay() (*Relay, error) {
	h.once.Do(func() {
		h.relay, h.relayErr = NewRelay(context.Background())
	})
	return h.relay, h.relayErr
}

type askPayload struct {
	Question string `json:"question"`
}

// AskGuide answers a survival question in the wasteland persona. The
// model's markdown comes back converted to HTML.
func (h *Handler) AskGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), relayTimeout)
	defer cancel()

	var payload askPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Question) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Question is required")
		return
	}

	relay, err := h.getRelay()
	if err != nil {
		log.Printf("guide: relay unavailable: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI service is not properly configured")
		return
	}

	answer, err := relay.Ask(ctx, payload.Question)
	if err != nil {
		log.Printf("guide: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate response from AI service. Please try again later.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"answer": MarkdownToHTML(answer)})
}

type analyzePayload struct {
	Prompt string `json:"prompt"`
}

// AnalyzePlant accepts either a multipart image upload (fixed
// plant-health analysis) or a JSON prompt relayed verbatim.
func (h *Handler) AnalyzePlant(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), relayTimeout)
	defer cancel()

	relay, err := h.getRelay()
	if err != nil {
		log.Printf("guide: relay unavailable: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "AI service is not properly configured")
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "No image provided")
			return
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "No image provided")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process request")
			return
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "image/jpeg"
		}

		analysis, err := relay.AnalyzeImage(ctx, data, mimeType)
		if err != nil {
			log.Printf("guide: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process request")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"analysis": analysis})
		return
	}

	var payload analyzePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Prompt) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No prompt provided")
		return
	}

	analysis, err := relay.Prompt(ctx, payload.Prompt)
	if err != nil {
		log.Printf("guide: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process request")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"analysis": analysis})
}
