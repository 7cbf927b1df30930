package sqlite

import (
	"context"
	"fmt"

	"github.com/collet-david-pro/Voyages/internal/models"
	"github.com/collet-david-pro/Voyages/internal/storage"
)

// GetInstitution returns the singleton institution profile.
func (s *Store) GetInstitution(ctx context.Context) (*models.Institution, error) {
	inst := &models.Institution{}
	err := s.db.QueryRowContext(ctx, `
		SELECT name, address, authorizer_name, secretary_name, signature_city,
		       certificate_text, logo_path, authorizer_image, secretary_image
		FROM institution WHERE id = 1`,
	).Scan(&inst.Name, &inst.Address, &inst.AuthorizerName, &inst.SecretaryName,
		&inst.SignatureCity, &inst.CertificateText, &inst.LogoPath,
		&inst.AuthorizerImage, &inst.SecretaryImage)
	if err != nil {
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}
	return inst, nil
}

// SaveInstitution rewrites the institution's text fields. Image paths are
// managed separately through SetInstitutionImage.
func (s *Store) SaveInstitution(ctx context.Context, inst *models.Institution) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE institution
		SET name = ?, address = ?, authorizer_name = ?, secretary_name = ?,
		    signature_city = ?, certificate_text = ?
		WHERE id = 1`,
		inst.Name, inst.Address, inst.AuthorizerName, inst.SecretaryName,
		inst.SignatureCity, inst.CertificateText,
	)
	if err != nil {
		return fmt.Errorf("failed to save institution: %w", err)
	}
	return nil
}

// SetInstitutionImage records the stored path of one of the institution's
// images and returns the previous path so the caller can unlink the old file.
func (s *Store) SetInstitutionImage(ctx context.Context, img storage.InstitutionImage, path string) (string, error) {
	var col string
	switch img {
	case storage.ImageLogo:
		col = "logo_path"
	case storage.ImageAuthorizer:
		col = "authorizer_image"
	case storage.ImageSecretary:
		col = "secretary_image"
	default:
		return "", fmt.Errorf("unknown institution image %q", img)
	}

	var previous string
	if err := s.db.QueryRowContext(ctx,
		"SELECT "+col+" FROM institution WHERE id = 1").Scan(&previous); err != nil {
		return "", fmt.Errorf("failed to read institution image: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"UPDATE institution SET "+col+" = ? WHERE id = 1", path); err != nil {
		return "", fmt.Errorf("failed to set institution image: %w", err)
	}
	return previous, nil
}
