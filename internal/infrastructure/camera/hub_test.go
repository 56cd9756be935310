package camera

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

func TestHub_RegisterKeepsOrderAndRelabels(t *testing.T) {
	h := NewHub(entity.Device{ID: "cam-front", Label: "Front Camera"})
	require.NoError(t, h.Register(entity.Device{ID: "handheld-1"}))
	require.NoError(t, h.Register(entity.Device{ID: "cam-front", Label: "Entrada"}))
	assert.ErrorIs(t, h.Register(entity.Device{ID: " "}), domain.ErrInvalidInput)

	devices, err := h.Devices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Device{
		{ID: "cam-front", Label: "Entrada"},
		{ID: "handheld-1", Label: "Camera handheld-1"},
	}, devices)
}

func TestHub_OpenUnknownDevice(t *testing.T) {
	h := NewHub()
	_, err := h.Open(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrDeviceUnavailable)
}

func TestHub_DecodeDeliversOnce(t *testing.T) {
	h := NewHub(entity.Device{ID: "cam"})
	s, err := h.Open(context.Background(), "cam")
	require.NoError(t, err)

	n, err := h.Decode("cam", "4011")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = h.Decode("cam", "8411")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, "4011", <-s.Events())

	s.Stop()
	s.Stop()
	_, ok := <-s.Events()
	assert.False(t, ok)
	assert.Zero(t, h.OpenStreams("cam"))
}

func TestHub_DecodeErrors(t *testing.T) {
	h := NewHub(entity.Device{ID: "cam"})
	_, err := h.Decode("ghost", "4011")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = h.Decode("cam", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
