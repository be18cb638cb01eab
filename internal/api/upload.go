package api

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/mailer"
	"github.com/goelshashank/Kitchen-Inventory2/internal/media"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// maxImageBody bounds an upload request: a base64 encoded MaxImageSize image
// plus room for the data URL prefix, JSON framing or multipart headers.
var maxImageBody = int64(base64.StdEncoding.EncodedLen(media.MaxImageSize)) + 64<<10

type imageRequest struct {
	Image string `json:"image" binding:"required"` // data:image/...;base64,...
}

type emailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// UploadRecipeImage accepts either a multipart "image" file or a JSON body
// with a base64 data URL, stores it and points the recipe at it.
func (h *Handler) UploadRecipeImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image uploads are not configured"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.recipes.GetRecipe(id); err != nil {
		respondError(c, err, "Recipe not found", "Failed to retrieve recipe")
		return
	}

	img, err := readImage(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), media.RecipeImageKey(id, img), img)
	if err != nil {
		utils.Log.Error("Image upload failed", zap.Uint("recipe_id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to upload image"})
		return
	}

	recipe, err := h.recipes.SetImage(id, url)
	if err != nil {
		respondError(c, err, "Recipe not found", "Failed to update recipe")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusOK, recipe)
}

func readImage(c *gin.Context) (*media.Image, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBody)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("image")
		if err != nil {
			if tooLarge(err) {
				return nil, media.ErrImageTooLarge
			}
			return nil, errors.New("multipart field \"image\" is required")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, media.MaxImageSize+1))
		if err != nil {
			return nil, err
		}
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		return media.NewImage(data, contentType)
	}

	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if tooLarge(err) {
			return nil, media.ErrImageTooLarge
		}
		return nil, errors.New("expected multipart image or JSON {\"image\": \"data:...\"}")
	}
	return media.DecodeDataURL(req.Image)
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// EmailReport renders the current reports and sends them to the given address.
func (h *Handler) EmailReport(c *gin.Context) {
	if h.mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Email is not configured"})
		return
	}
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "A valid \"to\" address is required")
		return
	}

	report, err := h.dashboard.Reports()
	if err != nil {
		respondError(c, err, "", "Failed to retrieve reports data")
		return
	}
	subject, body := mailer.RenderReport(report, h.now())
	if err := h.mailer.Send(c.Request.Context(), req.To, subject, body); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to send report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report sent"})
}
