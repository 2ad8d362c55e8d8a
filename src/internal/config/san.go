// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"net"
	"strings"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
)

// SANKind classifies a subject alternative name entry.
type SANKind int

const (
	// SANDNS is a DNS hostname entry.
	SANDNS SANKind = iota
	// SANIPv4 is an IPv4 address entry.
	SANIPv4
	// SANIPv6 is an IPv6 address entry.
	SANIPv6
)

// SubjectAltName is one classified subject alternative name entry.
// Classification happens once, at resolve time; downstream components never
// re-derive it. Exactly one of DNS or IP is set, according to Kind.
type SubjectAltName struct {
	Kind SANKind
	DNS  string
	IP   net.IP
}

// String returns the entry as it was supplied in configuration.
func (s SubjectAltName) String() string {
	if s.Kind == SANDNS {
		return s.DNS
	}
	return s.IP.String()
}

// ClassifySAN classifies a single SAN entry as a DNS name or a parsed
// IPv4/IPv6 address. Entries that parse as IP literals become IP entries;
// everything else is treated as a DNS name. Blank entries are rejected.
func ClassifySAN(entry string) (SubjectAltName, error) {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return SubjectAltName{}, certerr.Configf("subject_alt_names entries must be non-empty strings")
	}

	if ip := net.ParseIP(trimmed); ip != nil {
		kind := SANIPv6
		if ip.To4() != nil {
			kind = SANIPv4
		}
		return SubjectAltName{Kind: kind, IP: ip}, nil
	}

	return SubjectAltName{Kind: SANDNS, DNS: trimmed}, nil
}

// classifySANs classifies every entry in order. Order is preserved so the
// issued certificate carries SAN entries exactly as supplied.
func classifySANs(entries []string) ([]SubjectAltName, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	sans := make([]SubjectAltName, 0, len(entries))
	for _, entry := range entries {
		san, err := ClassifySAN(entry)
		if err != nil {
			return nil, err
		}
		sans = append(sans, san)
	}

	return sans, nil
}
