package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"huffzip_go/internal/repo"
	"huffzip_go/internal/service"
	"huffzip_go/pkg/huffcodec"

	"github.com/gin-gonic/gin"
)

// 업로드 폼 필드 이름
const formField = "file"

type ZipHandler struct {
	svc      *service.ZipService
	maxBytes int64
}

func NewZipHandler(s *service.ZipService, maxBytes int64) *ZipHandler {
	return &ZipHandler{svc: s, maxBytes: maxBytes}
}

type zipFunc func(ctx context.Context, name string, data []byte) (*service.Result, error)

func (h *ZipHandler) Compress(c *gin.Context)   { h.serve(c, h.svc.Compress) }
func (h *ZipHandler) Decompress(c *gin.Context) { h.serve(c, h.svc.Decompress) }

func (h *ZipHandler) serve(c *gin.Context, op zipFunc) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	fh, err := c.FormFile(formField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field \"" + formField + "\""})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res, err := op(c.Request.Context(), fh.Filename, data)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": errorText(err)})
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.FileName}))
	c.Header("X-Job-Id", res.Job.ID)
	c.Data(http.StatusOK, "application/octet-stream", res.Data)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyFile):
		return http.StatusBadRequest
	case errors.Is(err, huffcodec.ErrFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, huffcodec.ErrCapacity):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func errorText(err error) string {
	if errors.Is(err, service.ErrEmptyFile) {
		return "File is empty"
	}
	return err.Error()
}

func (h *ZipHandler) GetJob(c *gin.Context) {
	j, err := h.svc.Job(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *ZipHandler) ListJobs(c *gin.Context) {
	jobs, err := h.svc.Jobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}
