package classify

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
)

// Post classifies an uploaded WAV file and makes it the current result
// @Summary      Classify an audio clip
// @Description  Uploads a WAV file to the classifier. The response replaces the current result.
// @Tags         classify
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "WAV audio file"
// @Success      200 {object} types.ClassifyResponse
// @Failure      400 {object} types.ErrorResponse "Missing or empty file"
// @Failure      409 {object} types.ErrorResponse "A request is already pending"
// @Failure      413 {object} types.ErrorResponse "File too large"
// @Failure      415 {object} types.ErrorResponse "Not a WAV file"
// @Failure      502 {object} types.ErrorResponse "Classifier failed"
// @Router       /api/v1/classify [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Session == nil {
			types.SendError(c, apperrors.New(apperrors.ErrCodeConfigRequired, "classifier is not configured"))
			return
		}

		fileName, audio, err := ReadUpload(c, deps.UploadLimit())
		if err != nil {
			types.SendError(c, err)
			return
		}

		snap, err := deps.Session.Submit(c.Request.Context(), fileName, audio)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ClassifyResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			ResultID:     snap.ResultID,
			FileName:     snap.FileName,
			Result:       snap.Result,
		})
	}
}

// ReadUpload reads the multipart "file" field, limited to maxBytes. It
// returns AppErrors for missing, empty, oversized and non-WAV uploads.
func ReadUpload(c *gin.Context, maxBytes int64) (string, []byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", nil, types.ToAppError(err)
		}
		return "", nil, apperrors.MissingFieldError("file")
	}

	if !IsWAV(fileHeader.Filename) {
		return "", nil, apperrors.New(apperrors.ErrCodeUnsupportedMedia, "only .wav files are accepted").
			WithDetail("file_name", fileHeader.Filename)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to open upload")
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to read upload")
	}
	if len(audio) == 0 {
		return "", nil, apperrors.InvalidInput("uploaded file is empty", nil).
			WithDetail("file_name", fileHeader.Filename)
	}

	return fileHeader.Filename, audio, nil
}

// IsWAV reports whether name has a .wav extension, in any case
func IsWAV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".wav")
}
