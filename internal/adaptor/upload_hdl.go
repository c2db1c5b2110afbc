package adaptor

import (
	"net/http"

	"github.com/Catalinvisual/AuraMarket/internal/usecase"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"go.uber.org/zap"
)

// maxUploadSize caps product image uploads at 10 MiB.
const maxUploadSize = 10 << 20

type UploadHandler struct {
	service usecase.UploadService
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// UploadImage handles POST /api/upload (admin), multipart field "image"
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	result, err := h.service.SaveImage(file, header)
	if err != nil {
		handleServiceError(h.log, w, err, "upload image")
		return
	}

	utils.ResponseCreated(w, result)
}
