package badge

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

type SignerConfig struct {
	CertPath string
	KeyPath  string
	Name     string
	Location string
}

// PDFSigner adds a certification signature to rendered badges. Signed output
// carries the signing time, so two signed renders of the same member differ.
type PDFSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	name        string
	location    string
	now         func() time.Time
}

func NewPDFSigner(cfg SignerConfig) (*PDFSigner, error) {
	if cfg.CertPath == "" || cfg.KeyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(cfg.CertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", cfg.CertPath, err)
	}
	keyPEM, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", cfg.KeyPath, err)
	}

	signer, err := NewPDFSignerFromPEM(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}
	if cfg.Name != "" {
		signer.name = cfg.Name
	}
	if cfg.Location != "" {
		signer.location = cfg.Location
	}

	slog.Info("Badge signer initialized",
		"cert_subject", signer.certificate.Subject.String(),
		"cert_expiry", signer.certificate.NotAfter)
	return signer, nil
}

func NewPDFSignerFromPEM(certPEM, keyPEM []byte) (*PDFSigner, error) {
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM")
	}
	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM")
	}
	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		// PKCS8 fallback
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	return &PDFSigner{
		certificate: certificate,
		privateKey:  privateKey,
		name:        "KOA Membership",
		location:    "Kerala Orthopaedic Association",
		now:         time.Now,
	}, nil
}

// Sign returns the signed document. The caller decides what to do with the
// unsigned input when it fails.
func (s *PDFSigner) Sign(document []byte, identifier string) (signed []byte, err error) {
	if len(document) == 0 {
		return nil, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     s.name,
				Location: s.location,
				Reason:   fmt.Sprintf("Membership badge for %s", identifier),
				Date:     s.now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	defer func() {
		if r := recover(); r != nil {
			signed, err = nil, fmt.Errorf("panic during PDF signing: %v", r)
		}
	}()

	input := bytes.NewReader(document)
	reader, err := digitorus_pdf.NewReader(input, int64(len(document)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF for signing: %w", err)
	}
	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := sign.Sign(input, &out, reader, int64(len(document)), signData); err != nil {
		return nil, fmt.Errorf("failed to sign PDF: %w", err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("signing produced empty output")
	}

	slog.Debug("Badge signed", "koalm", identifier, "original_size", len(document), "signed_size", out.Len())
	return out.Bytes(), nil
}
