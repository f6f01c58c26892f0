package dto

import "portfolio-api/internal/models"

type CreateCertificationRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Issuer        string  `json:"issuer" validate:"required,min=1,max=255"`
	IssueDate     *Date   `json:"issue_date"`
	ExpiryDate    *Date   `json:"expiry_date"`
	CredentialURL *string `json:"credential_url" validate:"omitempty,max=500"`
}

type UpdateCertificationRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=255"`
	Issuer        *string `json:"issuer" validate:"omitempty,min=1,max=255"`
	IssueDate     *Date   `json:"issue_date"`
	ExpiryDate    *Date   `json:"expiry_date"`
	CredentialURL *string `json:"credential_url" validate:"omitempty,max=500"`
}

type CertificationResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Issuer        string  `json:"issuer"`
	IssueDate     *Date   `json:"issue_date"`
	ExpiryDate    *Date   `json:"expiry_date"`
	CredentialURL *string `json:"credential_url"`
}

func NewCertificationResponse(m *models.Certification) *CertificationResponse {
	return &CertificationResponse{
		ID:            m.ID.String(),
		Title:         m.Title,
		Issuer:        m.Issuer,
		IssueDate:     DateOf(m.IssueDate),
		ExpiryDate:    DateOf(m.ExpiryDate),
		CredentialURL: m.CredentialURL,
	}
}

func NewCertificationResponseList(certs []*models.Certification) []*CertificationResponse {
	out := make([]*CertificationResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, NewCertificationResponse(c))
	}
	return out
}
