// Package signature verifies minisign signatures of release artifacts.
package signature

import (
	"github.com/jedisct1/go-minisign"
	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SignatureVerifier = (*Verifier)(nil)

// Verifier implements ports.SignatureVerifier with minisign.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks the detached minisign signature of payload.
func (v *Verifier) Verify(keyPath string, payload, signature []byte) error {
	pubKey, err := minisign.NewPublicKeyFromFile(keyPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", keyPath)
	}

	sig, err := minisign.DecodeSignature(string(signature))
	if err != nil {
		return zerr.Wrap(err, domain.ErrSignatureInvalid.Error())
	}

	valid, err := pubKey.Verify(payload, sig)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSignatureInvalid.Error())
	}
	if !valid {
		return domain.ErrSignatureInvalid
	}

	return nil
}
