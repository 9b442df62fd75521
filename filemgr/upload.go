package filemgr

import (
	"net/http"

	"embervale/globals"
	"embervale/utils"

	"github.com/julienschmidt/httprouter"
)

// UploadImage stores a photo for a plant, listing, or user avatar and
// returns its public URL.
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entity := EntityType(ps.ByName("entity"))
	switch entity {
	case EntityPlant, EntityListing, EntityUser:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown entity type")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	filename, err := SaveFormFile(r.MultipartForm, "image", entity, PicPhoto, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"url":     "/" + ResolvePath(entity, PicPhoto) + "/" + filename,
	})
}
