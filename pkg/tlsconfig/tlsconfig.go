// Package tlsconfig builds mutual-TLS configurations for the BMI gRPC
// server and its clients from PEM files on disk.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// Files names the PEM files of one side of an mTLS connection
type Files struct {
	Cert string // this side's certificate
	Key  string // this side's private key
	CA   string // CA that signed the peer's certificate
}

// Enabled reports whether a certificate was configured at all
func (f Files) Enabled() bool {
	return f.Cert != ""
}

// LoadServerTLS returns a config that requires and verifies client certificates
func LoadServerTLS(f Files) (*tls.Config, error) {
	cert, pool, err := load(f)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// LoadClientTLS returns a config that presents a client certificate and
// verifies the server against the CA. serverName overrides the name checked
// in the server certificate when it differs from the dialed host.
func LoadClientTLS(f Files, serverName string) (*tls.Config, error) {
	cert, pool, err := load(f)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func load(f Files) (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.LoadX509KeyPair(f.Cert, f.Key)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("load key pair: %w", err)
	}

	caPEM, err := os.ReadFile(f.CA)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("read CA cert: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return tls.Certificate{}, nil, fmt.Errorf("parse CA cert %s: no certificates found", f.CA)
	}

	return cert, pool, nil
}
