package usecase

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/Catalinvisual/AuraMarket/internal/dto/response"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadService interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (*response.UploadResponse, error)
}

type uploadService struct {
	cfg *utils.Config
	log *zap.Logger
}

func NewUploadService(
	cfg *utils.Config,
	log *zap.Logger,
) UploadService {
	return &uploadService{
		cfg: cfg,
		log: log.With(zap.String("service", "upload")),
	}
}

// SaveImage writes an uploaded file under the upload dir with a random
// name, keeping the original extension, and returns its public URL.
func (s *uploadService) SaveImage(file multipart.File, header *multipart.FileHeader) (*response.UploadResponse, error) {
	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		s.log.Error("Failed to create upload directory",
			zap.Error(err),
			zap.String("dir", s.cfg.Upload.Dir),
		)
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	path := filepath.Join(s.cfg.Upload.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		s.log.Error("Failed to create upload file",
			zap.Error(err),
			zap.String("path", path),
		)
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		s.log.Error("Failed to write upload file",
			zap.Error(err),
			zap.String("path", path),
		)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	s.log.Info("File uploaded",
		zap.String("original", header.Filename),
		zap.String("stored", name),
		zap.Int64("size", header.Size),
	)

	return &response.UploadResponse{URL: "/uploads/" + name}, nil
}
