package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// DNS classification for hosts whose probes fail with transport errors.
const (
	DNSResolves = "RESOLVES"
	DNSNXDomain = "NXDOMAIN"
	DNSServfail = "SERVFAIL_OR_TIMEOUT"
	DNSInvalid  = "INVALID_NAME"
)

var dnsTimeout = 3 * time.Second

// DiagnoseDNS resolves a bare hostname with the OS resolver and classifies
// the result. Used purely for operator diagnostics after a failed probe; it
// never influences up/down classification.
func DiagnoseDNS(ctx context.Context, host string) (class string, addrs []net.IP) {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return DNSInvalid, nil
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	cctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()

	ips, err := (&net.Resolver{}).LookupIP(cctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return DNSResolves, ips
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsNotFound {
			return DNSNXDomain, nil
		}
		if de.IsTemporary || de.Timeout() {
			return DNSServfail, nil
		}
	}
	return DNSServfail, nil
}
