package qrcode

import (
	"testing"

	"churchadmin/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		LoginURL:             "http://localhost:5173/login",
	}}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		expected             qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Lowercase level", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(newTestConfig(256, tt.errorCorrectionLevel)).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.expected, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 256, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
	assert.Equal(t, "/login", svc.loginURL)
}

func TestQRCodeService_GenerateCredentialQR(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M"))

	qrBytes, err := service.GenerateCredentialQR("pastor.norte")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCredentialQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, "M"))

			qrBytes, err := service.GenerateCredentialQR("lider.gp")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateCredentialQR_EmptyUsername(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M"))

	_, err := service.GenerateCredentialQR("  ")
	assert.Error(t, err)
}

func TestCredentialURL(t *testing.T) {
	tests := []struct {
		name     string
		loginURL string
		username string
		expected string
	}{
		{
			name:     "absolute url",
			loginURL: "http://localhost:5173/login",
			username: "pastor.norte",
			expected: "http://localhost:5173/login?username=pastor.norte",
		},
		{
			name:     "relative path",
			loginURL: "/login",
			username: "ana",
			expected: "/login?username=ana",
		},
		{
			name:     "existing query is kept",
			loginURL: "https://iglesia.example/login?lang=es",
			username: "juan pérez",
			expected: "https://iglesia.example/login?lang=es&username=juan+p%C3%A9rez",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CredentialURL(tt.loginURL, tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCredentialURL_InvalidLoginURL(t *testing.T) {
	_, err := CredentialURL("http://[::1", "ana")
	assert.Error(t, err)
}
