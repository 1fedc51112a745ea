package qrcode

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"fitsaga/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		letter string
		want   qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			svc := NewQRCodeService(0, tt.letter).(*qrcodeService)
			assert.Equal(t, tt.want, svc.level)
			assert.Equal(t, defaultSize, svc.size)
		})
	}
}

func TestQRCodeService_GeneratePNG_TooLong(t *testing.T) {
	svc := NewQRCodeService(128, "H")

	_, err := svc.GeneratePNG("https://portal.fitsaga.test/contracts/k1/sign?token=" + strings.Repeat("x", 4000))
	assert.ErrorContains(t, err, "signing link")
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(128, "M")

	qrBytes, err := service.GeneratePNG("http://localhost:3000/contracts/abc/sign?token=xyz")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestQRCodeService_GeneratePNG_EmptyContent(t *testing.T) {
	service := NewQRCodeService(128, "M")

	_, err := service.GeneratePNG("")
	assert.Error(t, err)
}

func TestNewFromConfig_DefaultsWithoutSection(t *testing.T) {
	service := NewFromConfig(&config.Config{})

	qrBytes, err := service.GeneratePNG("fitsaga")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, cfg.Width)
}
