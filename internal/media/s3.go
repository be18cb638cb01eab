package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/goelshashank/Kitchen-Inventory2/internal/config"
)

// MaxImageSize bounds a single recipe image.
const MaxImageSize = 5 << 20

var (
	ErrInvalidImage  = errors.New("invalid image")
	ErrImageTooLarge = fmt.Errorf("image larger than %d bytes", MaxImageSize)
)

// Image - decoded upload ready to be stored
type Image struct {
	Data        []byte
	ContentType string
}

// Ext returns the file extension for the image's content type.
func (img *Image) Ext() string {
	switch img.ContentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(img.ContentType); len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(img.ContentType, "/"); ok {
		return "." + sub
	}
	return ""
}

// DecodeDataURL parses "data:image/png;base64,...." into an Image.
func DecodeDataURL(s string) (*Image, error) {
	meta, data, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: not a data URL", ErrInvalidImage)
	}
	mediaType, found := strings.CutPrefix(meta, "data:")
	if !found {
		return nil, fmt.Errorf("%w: not a data URL", ErrInvalidImage)
	}
	contentType, encoding, _ := strings.Cut(mediaType, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("%w: only base64 data URLs are supported", ErrInvalidImage)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return NewImage(raw, contentType)
}

// NewImage checks that data is an image of an accepted size.
func NewImage(data []byte, contentType string) (*Image, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %q", ErrInvalidImage, contentType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidImage)
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	return &Image{Data: data, ContentType: contentType}, nil
}

// RecipeImageKey - object key for a recipe image; unique per upload
func RecipeImageKey(recipeID uint, img *Image) string {
	return fmt.Sprintf("recipes/%d-%s%s", recipeID, uuid.NewString(), img.Ext())
}

// Uploader stores an image and returns the URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, key string, img *Image) (string, error)
}

type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return &S3Uploader{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		publicURL: PublicBaseURL(cfg),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, img *Image) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}
	return u.publicURL + "/" + key, nil
}

// PublicBaseURL is the configured CDN prefix, or the bucket's virtual-hosted
// endpoint when none is set.
func PublicBaseURL(cfg config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
