package imagehost

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeAPI struct {
	uploaded  []byte
	params    uploader.UploadParams
	uploadRes *uploader.UploadResult
	uploadErr error
	destroyed string
	destroy   *uploader.DestroyResult
}

func (f *fakeAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	if r, ok := file.(io.Reader); ok {
		f.uploaded, _ = io.ReadAll(r)
	}
	f.params = params
	return f.uploadRes, f.uploadErr
}

func (f *fakeAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = params.PublicID
	return f.destroy, nil
}

func newTestHost(t *testing.T, fake *fakeAPI) *Cloudinary {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return newCloudinary(fake, "rooms", time.Second, log)
}

func TestCloudinary_Upload(t *testing.T) {
	fake := &fakeAPI{uploadRes: &uploader.UploadResult{SecureURL: "https://res/img.jpg", PublicID: "rooms/img"}}
	host := newTestHost(t, fake)

	img, err := host.Upload(context.Background(), domain.ImageFile{Filename: "img.jpg", Data: []byte("jpeg")})

	require.NoError(t, err)
	assert.Equal(t, domain.UploadedImage{URL: "https://res/img.jpg", PublicID: "rooms/img"}, img)
	assert.Equal(t, []byte("jpeg"), fake.uploaded)
	assert.Equal(t, "rooms", fake.params.Folder)
}

func TestCloudinary_Upload_Empty(t *testing.T) {
	host := newTestHost(t, &fakeAPI{})

	_, err := host.Upload(context.Background(), domain.ImageFile{Filename: "img.jpg"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCloudinary_Upload_APIError(t *testing.T) {
	fake := &fakeAPI{uploadRes: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
	host := newTestHost(t, fake)

	_, err := host.Upload(context.Background(), domain.ImageFile{Filename: "img.jpg", Data: []byte("x")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
}

func TestCloudinary_Upload_TransportError(t *testing.T) {
	netErr := errors.New("connection reset")
	host := newTestHost(t, &fakeAPI{uploadErr: netErr})

	_, err := host.Upload(context.Background(), domain.ImageFile{Filename: "img.jpg", Data: []byte("x")})

	assert.ErrorIs(t, err, netErr)
}

func TestCloudinary_Delete(t *testing.T) {
	for _, result := range []string{"ok", "not found"} {
		fake := &fakeAPI{destroy: &uploader.DestroyResult{Result: result}}
		host := newTestHost(t, fake)

		require.NoError(t, host.Delete(context.Background(), "rooms/img"))
		assert.Equal(t, "rooms/img", fake.destroyed)
	}
}

func TestCloudinary_Delete_Unexpected(t *testing.T) {
	host := newTestHost(t, &fakeAPI{destroy: &uploader.DestroyResult{Result: "error"}})

	assert.Error(t, host.Delete(context.Background(), "rooms/img"))
}
