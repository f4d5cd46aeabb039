package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateCredentialQR renders a PNG QR code pointing a user at the login page
	// with their username filled in.
	GenerateCredentialQR(username string) ([]byte, error)
}
