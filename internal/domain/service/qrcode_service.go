package service

import "github.com/google/uuid"

// QRCodeService renders and reads store share codes.
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code pointing at storeID.
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// ParseStoreQR extracts the store id from the decoded QR payload.
	ParseStoreQR(payload string) (uuid.UUID, error)
}
