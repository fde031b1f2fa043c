package httpapi

import (
	"net/http"
)

type addGalleryImageRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Date    string `json:"date"`
}

func (h *Handler) AdminAddGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminAddGalleryImage")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addGalleryImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	image, err := h.galleryService.AddImage(ctx, variant, req.URL, req.Caption, req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, galleryImageToDTO(ctx, image))
}

func (h *Handler) AdminRemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminRemoveGalleryImage")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	imageID, err := pathID(r, "imageID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.galleryService.RemoveImage(ctx, variant, imageID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
