package ports

// SignatureVerifier checks detached signatures of release artifacts.
//
//go:generate mockgen -source=signature_verifier.go -destination=mocks/mock_signature_verifier.go -package=mocks
type SignatureVerifier interface {
	// Verify checks that signature is a valid signature of payload for the public key at keyPath.
	Verify(keyPath string, payload, signature []byte) error
}
