package qrcode

import (
	"net/url"
	"strings"

	"churchadmin/config"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	loginURL             string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, loginURL := 256, "M", "/login"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.LoginURL != "" {
			loginURL = cfg.QRCode.LoginURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		loginURL:             loginURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCredentialQR encodes the login URL with the username prefilled.
func (s *qrcodeService) GenerateCredentialQR(username string) ([]byte, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username is empty")
	}

	content, err := CredentialURL(s.loginURL, username)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// CredentialURL appends username as a query parameter to loginURL, keeping
// any query the login URL already carries.
func CredentialURL(loginURL, username string) (string, error) {
	u, err := url.Parse(loginURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid login url %q", loginURL)
	}

	query := u.Query()
	query.Set("username", username)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
