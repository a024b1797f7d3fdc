package mockserver

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"slices"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/api/ptr"
)

var certificateFilters = filterFields[api.Certificate]{
	"certificate-id":  func(c *api.Certificate) []string { return values(c.CertificateIdentifier) },
	"certificate-arn": func(c *api.Certificate) []string { return values(c.CertificateArn) },
}

func invalidCertificate(message string) error {
	return &api.InvalidCertificateFault{Message: ptr.String(message)}
}

// parsePEM reads the first certificate of a PEM bundle.
func parsePEM(data string) (*x509.Certificate, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, invalidCertificate("the certificate is not a PEM encoded X.509 certificate")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, invalidCertificate("the certificate cannot be parsed: " + err.Error())
	}
	return cert, nil
}

func publicKeyLength(cert *x509.Certificate) int32 {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return int32(key.N.BitLen())
	case *ecdsa.PublicKey:
		return int32(key.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return int32(len(key) * 8)
	}
	return 0
}

// ImportCertificate stores a PEM certificate or an Oracle wallet
func (s *Service) ImportCertificate(ctx context.Context, req *api.ImportCertificateRequest) (*api.ImportCertificateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := normalizeIdentifier("CertificateIdentifier", req.CertificateIdentifier, 255)
	if err != nil {
		return nil, err
	}
	certificates, err := s.certificates.List(ctx)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(certificates, func(c api.Certificate) bool {
		return ptr.ToString(c.CertificateIdentifier) == id
	}) {
		return nil, alreadyExists("certificate %s already exists", id)
	}

	arn := s.arn("cert")
	c := (&api.Certificate{}).
		SetCertificateArn(arn).
		SetCertificateIdentifier(id).
		SetCertificateOwner(s.accountID).
		SetCertificateCreationDate(s.timestamp())

	switch {
	case ptr.ToString(req.CertificatePem) != "":
		parsed, err := parsePEM(*req.CertificatePem)
		if err != nil {
			return nil, err
		}
		c.SetCertificatePem(*req.CertificatePem).
			SetValidFromDate(parsed.NotBefore.UTC()).
			SetValidToDate(parsed.NotAfter.UTC()).
			SetSigningAlgorithm(parsed.SignatureAlgorithm.String()).
			SetKeyLength(publicKeyLength(parsed))
	case len(req.CertificateWallet) > 0:
		c.SetCertificateWallet(req.CertificateWallet)
	default:
		return nil, invalidCertificate("either CertificatePem or CertificateWallet must be provided")
	}

	if err := s.certificates.Create(ctx, arn, *c); err != nil {
		return nil, err
	}
	if err := s.registerTags(ctx, arn, req.Tags); err != nil {
		return nil, err
	}
	return (&api.ImportCertificateResponse{}).SetCertificate(c), nil
}

// DescribeCertificates lists certificates
func (s *Service) DescribeCertificates(ctx context.Context, req *api.DescribeCertificatesRequest) (*api.DescribeCertificatesResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	certificates, err := s.certificates.List(ctx)
	if err != nil {
		return nil, err
	}
	certificates, err = applyFilters(certificates, req.Filters, certificateFilters)
	if err != nil {
		return nil, err
	}
	page, next, err := paginate(certificates, req.Marker, req.MaxRecords)
	if err != nil {
		return nil, err
	}
	return &api.DescribeCertificatesResponse{Certificates: page, Marker: next}, nil
}

// DeleteCertificate deletes a certificate no endpoint uses
func (s *Service) DeleteCertificate(ctx context.Context, req *api.DeleteCertificateRequest) (*api.DeleteCertificateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn := ptr.ToString(req.CertificateArn)
	if _, err := lookup(ctx, s.certificates, "certificate", arn); err != nil {
		return nil, err
	}
	endpoints, err := s.endpoints.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range endpoints {
		if ptr.ToString(e.CertificateArn) == arn {
			return nil, invalidState("certificate %s is used by endpoint %s", arn, ptr.ToString(e.EndpointIdentifier))
		}
	}

	c, err := s.certificates.Delete(ctx, arn)
	if err != nil {
		return nil, err
	}
	_, _ = s.tags.Delete(ctx, arn)
	return (&api.DeleteCertificateResponse{}).SetCertificate(&c), nil
}
