package qrcode

import (
	"testing"

	"chaski/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://chaski.app/",
	}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
	}{
		{"Low error correction", 256, "L", 256},
		{"Medium error correction", 256, "m", 256},
		{"High error correction", 512, "Q", 512},
		{"Highest error correction", 256, "H", 256},
		{"Default error correction", 0, "invalid", defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.size, tt.errorCorrectionLevel)
			assert.Equal(t, tt.wantSize, service.size)
			assert.Equal(t, "https://chaski.app", service.baseURL)
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := newTestService(256, "M")

	qrBytes, err := service.GenerateStoreQR(uuid.New())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := newTestService(256, "M")
	storeID := uuid.New()

	tests := []struct {
		name    string
		payload string
		want    uuid.UUID
		wantErr bool
	}{
		{"store link", service.StoreLink(storeID), storeID, false},
		{"trailing slash", service.StoreLink(storeID) + "/", storeID, false},
		{"bare id", "  " + storeID.String() + " ", storeID, false},
		{"other path", "https://chaski.app/products/" + storeID.String(), uuid.Nil, true},
		{"bad id", "https://chaski.app/stores/not-a-uuid", uuid.Nil, true},
		{"garbage", "%%%", uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseStoreQR(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
