package qrcode

import (
	"net/url"
	"path"
	"strings"

	"chaski/config"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	storePathSegment = "stores"
	defaultSize      = 256
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates the store share code renderer from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// StoreLink is the address a store share code points at.
func (s *qrcodeService) StoreLink(storeID uuid.UUID) string {
	return s.baseURL + "/" + storePathSegment + "/" + storeID.String()
}

// GenerateStoreQR renders the store link as a PNG.
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.StoreLink(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR accepts a store link or a bare store id.
func (s *qrcodeService) ParseStoreQR(payload string) (uuid.UUID, error) {
	payload = strings.TrimSpace(payload)
	if id, err := uuid.Parse(payload); err == nil {
		return id, nil
	}

	link, err := url.Parse(payload)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR payload")
	}

	dir, last := path.Split(strings.TrimRight(link.Path, "/"))
	if path.Base(dir) != storePathSegment {
		return uuid.Nil, errors.Errorf("QR payload is not a store link: %s", payload)
	}

	storeID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse store ID")
	}

	return storeID, nil
}
