package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// uploadAPI is the part of the Cloudinary upload API in use.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type Cloudinary struct {
	api     uploadAPI
	folder  string
	timeout time.Duration
	logger  logger.Logger
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string, timeout time.Duration, log logger.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return newCloudinary(&cld.Upload, folder, timeout, log), nil
}

func newCloudinary(api uploadAPI, folder string, timeout time.Duration, log logger.Logger) *Cloudinary {
	return &Cloudinary{
		api:     api,
		folder:  folder,
		timeout: timeout,
		logger:  log,
	}
}

func (c *Cloudinary) Upload(ctx context.Context, img domain.ImageFile) (domain.UploadedImage, error) {
	if len(img.Data) == 0 {
		return domain.UploadedImage{}, fmt.Errorf("%w: empty image %q", domain.ErrValidation, img.Filename)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.api.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{
		Folder:       c.folder,
		ResourceType: "image",
	})
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("upload %s: %w", img.Filename, err)
	}
	if res.Error.Message != "" {
		return domain.UploadedImage{}, fmt.Errorf("upload %s: %s", img.Filename, res.Error.Message)
	}
	if res.SecureURL == "" {
		return domain.UploadedImage{}, errors.New("upload returned no url")
	}

	c.logger.Debug("image uploaded",
		logger.String("filename", img.Filename),
		logger.String("public_id", res.PublicID),
	)

	return domain.UploadedImage{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Delete destroys an uploaded image. A missing image is not an error.
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy %s: unexpected result %q", publicID, res.Result)
	}
	return nil
}

func (c *Cloudinary) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
