package fetcher

import (
	"fmt"
	"net"
	"net/url"
)

// Sentinel errors for URL validation.
var (
	ErrInvalidURL = fmt.Errorf("invalid URL")
	ErrPrivateIP  = fmt.Errorf("URL resolves to a private IP")
)

// validateURL validates a URL before making an HTTP request. It checks
// the scheme (http/https only) and, when denyPrivateIPs is set, resolves
// the hostname and rejects loopback, private and link-local addresses to
// prevent SSRF through a hostile registry file or redirect target.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}
	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to %s", ErrPrivateIP, hostname, ip.String())
		}
	}
	return nil
}

// isPrivateIP reports whether the IP is loopback, private or link-local.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
