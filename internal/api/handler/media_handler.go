package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/minio"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/pkg/util"
	"PortalPiloto/internal/service"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload recebe imagem, vídeo ou PDF e devolve a chave do objeto.
// Imagens ganham uma miniatura de 320px.
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, "arquivo ausente")
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Fail(c, response.BadRequest, "arquivo ilegível")
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, err)
		return
	}

	isImage := strings.HasPrefix(contentType, consts.MimePrefixImage)
	isVideo := strings.HasPrefix(contentType, consts.MimePrefixVideo)
	isPdf := contentType == "application/pdf"
	if !isImage && !isVideo && !isPdf {
		response.Error(c, service.ErrInvalidMedia)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "Falha no upload para o MinIO", "err", err)
		response.Fail(c, response.InternalServerError, "falha no upload")
		return
	}

	result := &dto.MediaUploadDTO{
		ObjectKey: fileKey,
		URL:       minio.GetPublicURL(fileKey),
	}

	if isImage {
		if _, err = reader.Seek(0, io.SeekStart); err == nil {
			if img, decodeErr := imaging.Decode(reader); decodeErr == nil {
				thumbKey, thumbErr := minio.UploadThumbnail(c.Request.Context(), fileKey, img)
				if thumbErr != nil {
					log.WarnContext(c.Request.Context(), "Falha ao gerar miniatura", "key", fileKey, "err", thumbErr)
				} else {
					result.ThumbKey = thumbKey
				}
			}
		}
	}

	response.Success(c, result)
}
