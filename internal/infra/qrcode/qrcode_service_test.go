package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePickupQR_ProducesPNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)

	pngSignature := []byte{0x89, 0x50, 0x4e, 0x47}
	assert.Equal(t, pngSignature, png[:4])
}

func TestParsePickupQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "pickup"})
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestParsePickupQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{OrderID: uuid.New().String(), Type: "coupon"})
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(payload))
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestParsePickupQR_MalformedPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	parsed, err := service.ParsePickupQR("not-json")
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestParsePickupQR_BadOrderID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{OrderID: "not-a-uuid", Type: "pickup"})
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(payload))
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
