package badge

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCertificate(t *testing.T) (certPEM []byte, key *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "KOA Badge Test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), key
}

func TestNewPDFSignerFromPEM(t *testing.T) {
	certPEM, key := testCertificate(t)
	pkcs1 := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	pkcs8DER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pkcs8 := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8DER})

	tests := []struct {
		name    string
		cert    []byte
		key     []byte
		wantErr bool
	}{
		{name: "pkcs1 key", cert: certPEM, key: pkcs1},
		{name: "pkcs8 key", cert: certPEM, key: pkcs8},
		{name: "cert is not PEM", cert: []byte("nope"), key: pkcs1, wantErr: true},
		{name: "key is not PEM", cert: certPEM, key: []byte("nope"), wantErr: true},
		{name: "key is a certificate", cert: certPEM, key: certPEM, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := NewPDFSignerFromPEM(tt.cert, tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "KOA Badge Test", signer.certificate.Subject.CommonName)
		})
	}
}

func TestNewPDFSigner_MissingPaths(t *testing.T) {
	_, err := NewPDFSigner(SignerConfig{})
	assert.Error(t, err)

	_, err = NewPDFSigner(SignerConfig{
		CertPath: filepath.Join(t.TempDir(), "cert.pem"),
		KeyPath:  filepath.Join(t.TempDir(), "key.pem"),
	})
	assert.Error(t, err)
}

func TestPDFSigner_Sign(t *testing.T) {
	certPEM, key := testCertificate(t)
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, certPEM, 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}), 0o600))

	signer, err := NewPDFSigner(SignerConfig{CertPath: certPath, KeyPath: keyPath, Name: "KOA Test"})
	require.NoError(t, err)
	assert.Equal(t, "KOA Test", signer.name)

	_, err = signer.Sign(nil, "KOA-1001")
	assert.Error(t, err)

	_, err = signer.Sign([]byte("not a pdf"), "KOA-1001")
	assert.Error(t, err)

	document := templateBytes(t, 250, 500)
	signed, err := signer.Sign(document, "KOA-1001")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(signed, document), "signature is an incremental update")
	assert.Greater(t, len(signed), len(document))
}
