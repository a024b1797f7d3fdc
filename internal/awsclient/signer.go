package awsclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// SignerOptions contains options for the signer
type SignerOptions struct {
	Service string
	Region  string
}

// Signer signs AWS requests using Signature Version 4
type Signer struct {
	provider aws.CredentialsProvider
	options  SignerOptions
	signer   *v4.Signer
}

// NewSigner creates a new Signer that fetches credentials from provider on
// every signature, so rotated credentials are picked up.
func NewSigner(provider aws.CredentialsProvider, opts SignerOptions) *Signer {
	return &Signer{
		provider: provider,
		options:  opts,
		signer:   v4.NewSigner(),
	}
}

// SignRequest signs req, whose payload is body, at the given time.
func (s *Signer) SignRequest(ctx context.Context, req *http.Request, body []byte, signingTime time.Time) error {
	creds, err := s.provider.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve credentials: %w", err)
	}

	sum := sha256.Sum256(body)
	payloadHash := hex.EncodeToString(sum[:])

	if err := s.signer.SignHTTP(ctx, creds, req, payloadHash, s.options.Service, s.options.Region, signingTime); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}
