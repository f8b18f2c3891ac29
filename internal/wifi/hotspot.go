package wifi

import "strings"

// HotspotPrefixes checks that a client address belongs to an authorized hotspot subnet
type HotspotPrefixes struct {
	prefixes []string
}

// NewHotspotPrefixes creates a checker for the given address prefixes (e.g. "10.217.193.")
func NewHotspotPrefixes(prefixes []string) *HotspotPrefixes {
	p := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		if prefix != "" {
			p = append(p, prefix)
		}
	}
	return &HotspotPrefixes{prefixes: p}
}

// CleanIP strips the port and the IPv4-mapped IPv6 prefix from a remote address
func CleanIP(addr string) string {
	addr = strings.TrimSpace(addr)
	// X-Forwarded-For may carry a chain; the first entry is the client
	if i := strings.Index(addr, ","); i >= 0 {
		addr = strings.TrimSpace(addr[:i])
	}
	if strings.HasPrefix(addr, "[") {
		if i := strings.Index(addr, "]"); i > 0 {
			addr = addr[1:i]
		}
	} else if strings.Count(addr, ":") == 1 {
		addr = addr[:strings.Index(addr, ":")]
	}
	return strings.TrimPrefix(addr, "::ffff:")
}

// Allows reports whether ip starts with one of the configured prefixes.
// With no prefixes configured every address is denied.
func (h *HotspotPrefixes) Allows(ip string) bool {
	ip = CleanIP(ip)
	for _, prefix := range h.prefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
