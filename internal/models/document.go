package models

import "time"

// Document is an uploaded file attached to a trip. Only the path relative to
// the uploads directory is persisted.
type Document struct {
	ID     int64
	TripID int64

	// FileName is the original name shown to the user.
	FileName string

	// StoredPath is the relative path under the uploads directory.
	StoredPath string

	UploadedOn time.Time
}

// Institution is the single-row letterhead configuration used by every
// generated PDF: names, addresses, signature block and optional images.
type Institution struct {
	Name           string
	Address        string
	AuthorizerName string
	SecretaryName  string
	SignatureCity  string

	// CertificateText is the boilerplate paragraph printed boxed on payment
	// certificates.
	CertificateText string

	// Image paths are relative to the uploads directory, empty when not set.
	LogoPath        string
	AuthorizerImage string
	SecretaryImage  string
}
