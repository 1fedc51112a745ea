// Package qrcode renders contract signing links as QR code images for in-person signing.
package qrcode

import (
	"strings"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// recoveryLevels maps the configured letter to a go-qrcode level. Unknown letters mean M.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: level}
}

// NewFromConfig builds the service from the optional qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePNG encodes a signing URL as a square PNG of the configured size.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	png, err := qrcode.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %d byte signing link", len(content))
	}

	return png, nil
}
