package service

import "github.com/google/uuid"

// QRCodeService generates and parses the pickup QR codes shown to couriers
// at hand-off.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying the order.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR extracts the order ID from scanned QR payload data.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
