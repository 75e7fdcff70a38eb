// Package validate checks user-supplied asset targets before they enter
// the console.
package validate

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var (
	hostnameRegex  = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)
	dangerousChars = regexp.MustCompile("[;|&`$(){}\\[\\]!<>\\\\\"']")
)

// Domain checks that an asset domain is a valid IP address or hostname.
func Domain(domain string) error {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	if dangerousChars.MatchString(domain) {
		return fmt.Errorf("domain contains invalid characters")
	}

	if ip := net.ParseIP(domain); ip != nil {
		return nil
	}

	if !hostnameRegex.MatchString(domain) {
		return fmt.Errorf("invalid domain: %s", domain)
	}
	if len(domain) > 253 {
		return fmt.Errorf("domain too long")
	}

	return nil
}

// Port checks a single port entry of the form "80" or "8000-8100".
func Port(port string) error {
	port = strings.TrimSpace(port)
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	for _, part := range strings.SplitN(port, "-", 2) {
		n := 0
		for _, c := range part {
			if c < '0' || c > '9' {
				return fmt.Errorf("invalid port: %s", port)
			}
			n = n*10 + int(c-'0')
			if n > 65535 {
				return fmt.Errorf("port out of range: %s", port)
			}
		}
		if part == "" || n == 0 {
			return fmt.Errorf("invalid port: %s", port)
		}
	}
	return nil
}
