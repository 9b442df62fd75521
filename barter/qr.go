package barter

import (
	"context"
	"net/http"
	"os"
	"time"

	"embervale/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
)

func shareBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:4000"
}

// GetListingQR renders a scannable share code for a listing.
func (h *Handler) GetListingQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, found := h.findItem(ctx, ps.ByName("id"))
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Listing not found")
		return
	}

	png, err := qrcode.Encode(shareBaseURL()+"/barter/items/"+item.ID, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
