// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/internal/helper/gc"
	x509issue "github.com/H0llyW00dzZ/certtool/src/internal/x509/issue"
)

// Artifact file names inside each per-certificate subdirectory.
const (
	CertFileName = "cert.pem"
	CSRFileName  = "csr.pem"
	KeyFileName  = "key.pem"
)

// Slugify produces a filesystem-friendly directory name from a string such
// as a commonName: lowercased, spaces become underscores, and everything
// except letters, digits, dots, dashes, and underscores is dropped. An
// empty result falls back to "cert".
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "cert"
	}

	var b strings.Builder
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('_')
		}
	}

	slug := strings.Trim(b.String(), "._-")
	if slug == "" {
		return "cert"
	}
	return slug
}

// PrepareDir ensures the base output directory exists. An empty path means
// stdout-only output and is a no-op.
func PrepareDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return certerr.Outputf("unable to create output directory %s: %v", path, err)
	}
	return nil
}

// makeCertSubdir creates a unique subdirectory for one certificate set.
// Naming preference: slugified commonName, then the label's stem (typically
// the config filename), then "cert". Existing directories get a numeric
// -1, -2, ... suffix instead of being overwritten.
func makeCertSubdir(baseDir, commonName, label string) (string, error) {
	var baseName string
	switch {
	case strings.TrimSpace(commonName) != "":
		baseName = Slugify(commonName)
	case label != "":
		stem := strings.TrimSuffix(filepath.Base(label), filepath.Ext(label))
		baseName = Slugify(stem)
	default:
		baseName = "cert"
	}

	candidate := filepath.Join(baseDir, baseName)
	for counter := 1; ; counter++ {
		err := os.Mkdir(candidate, 0755)
		if err == nil {
			return candidate, nil
		}
		if !os.IsExist(err) {
			return "", certerr.Outputf("unable to create directory %s: %v", candidate, err)
		}
		candidate = filepath.Join(baseDir, fmt.Sprintf("%s-%d", baseName, counter))
	}
}

// WriteBundleDir writes the PEM artifacts into a fresh per-certificate
// subdirectory of baseDir as cert.pem, csr.pem, and key.pem. The key file
// is written with mode 0600. Any failed write surfaces as an output error;
// partially written artifacts are never reported as success. The created
// subdirectory path is returned.
func WriteBundleDir(arts *x509issue.PemArtifacts, commonName, label, baseDir string) (string, error) {
	subdir, err := makeCertSubdir(baseDir, commonName, label)
	if err != nil {
		return "", err
	}

	files := []struct {
		name string
		data []byte
		mode os.FileMode
	}{
		{CertFileName, arts.CertificatePEM, 0644},
		{CSRFileName, arts.CSRPEM, 0644},
		{KeyFileName, arts.PrivateKeyPEM, 0600},
	}

	for _, f := range files {
		path := filepath.Join(subdir, f.name)
		if err := os.WriteFile(path, f.data, f.mode); err != nil {
			return "", certerr.Outputf("failed to write %s: %v", path, err)
		}
	}

	return subdir, nil
}

// WriteBundle renders the PEM artifacts to w in a human-readable layout,
// using the shared buffer pool to assemble the output in one write. label,
// if non-empty, delineates sections when several bundles are printed in a
// bulk run.
func WriteBundle(w io.Writer, arts *x509issue.PemArtifacts, label string) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if label != "" {
		buf.WriteString(fmt.Sprintf("\n########## CONFIG: %s ##########\n\n", label))
	}

	buf.WriteString("# Self-signed certificate (PEM)\n")
	buf.Write(arts.CertificatePEM)
	buf.WriteByte('\n')

	buf.WriteString("# Certificate Signing Request (CSR, PEM)\n")
	buf.Write(arts.CSRPEM)
	buf.WriteByte('\n')

	buf.WriteString("# Private Key (PEM)\n")
	buf.Write(arts.PrivateKeyPEM)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return certerr.Outputf("failed to write PEM bundle: %v", err)
	}
	return nil
}
