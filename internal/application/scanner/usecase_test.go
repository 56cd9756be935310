package scanner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
	"github.com/jhoicas/stockbridge-api/internal/application/scanner"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/camera"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
)

type brokenCamera struct{}

func (brokenCamera) Devices(ctx context.Context) ([]entity.Device, error) {
	return nil, errors.New("permission denied")
}

func (brokenCamera) Open(ctx context.Context, deviceID string) (scanner.Stream, error) {
	return nil, errors.New("permission denied")
}

func newUseCase(cam scanner.Camera) *scanner.UseCase {
	resolver := catalog.NewResolver(memory.NewCatalogRepository(memory.SeedProducts()))
	return scanner.NewUseCase(cam, resolver, nil)
}

func waitResult(t *testing.T, uc *scanner.UseCase) {
	t.Helper()
	require.Eventually(t, func() bool { return uc.Status().Result != nil }, time.Second, 5*time.Millisecond)
}

func TestStart_PicksFirstDeviceAndResolves(t *testing.T) {
	hub := camera.NewHub(entity.Device{ID: "cam-front"}, entity.Device{ID: "cam-back"})
	uc := newUseCase(hub)
	updates, cancel := uc.Subscribe()
	defer cancel()

	st, err := uc.Start(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, st.Scanning)
	assert.Equal(t, "cam-front", st.DeviceID)

	n, err := hub.Decode("cam-front", "2034")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	waitResult(t, uc)
	st = uc.Status()
	assert.False(t, st.Scanning)
	assert.True(t, st.Result.Found)
	assert.Equal(t, "Flour", st.Result.Product.Name)
	assert.Zero(t, hub.OpenStreams("cam-front"))

	select {
	case msg := <-updates:
		assert.Equal(t, "2034", msg.Barcode)
	case <-time.After(time.Second):
		t.Fatal("sin notificación")
	}
}

func TestStart_UnknownBarcodeIsNotFound(t *testing.T) {
	hub := camera.NewHub(entity.Device{ID: "cam"})
	uc := newUseCase(hub)
	_, err := uc.Start(context.Background(), "cam")
	require.NoError(t, err)

	_, err = hub.Decode("cam", "9999")
	require.NoError(t, err)
	waitResult(t, uc)
	st := uc.Status()
	assert.False(t, st.Result.Found)
	assert.Nil(t, st.Result.Product)
	assert.Empty(t, st.Error)

	st = uc.Reset()
	assert.Nil(t, st.Result)
}

func TestStart_StopsPreviousSession(t *testing.T) {
	hub := camera.NewHub(entity.Device{ID: "a"}, entity.Device{ID: "b"})
	uc := newUseCase(hub)
	ctx := context.Background()

	_, err := uc.Start(ctx, "a")
	require.NoError(t, err)
	_, err = uc.Start(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, hub.OpenStreams("a"))
	assert.Equal(t, 1, hub.OpenStreams("b"))

	st := uc.Stop()
	assert.False(t, st.Scanning)
	assert.Zero(t, hub.OpenStreams("b"))
}

func TestStart_NoDevices(t *testing.T) {
	uc := newUseCase(camera.NewHub())
	_, err := uc.Start(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrDeviceUnavailable)
	assert.NotEmpty(t, uc.Status().Error)
	assert.False(t, uc.Status().Scanning)
}

func TestBrokenCamera(t *testing.T) {
	uc := newUseCase(brokenCamera{})
	_, err := uc.Devices(context.Background())
	assert.ErrorIs(t, err, domain.ErrDeviceUnavailable)

	_, err = uc.Start(context.Background(), "cam")
	assert.ErrorIs(t, err, domain.ErrDeviceUnavailable)
	assert.Contains(t, uc.Status().Error, "permission denied")
}
