// Package clientip selects a representative client address from forwarding
// metadata. The forwarded-for chain is walked from the nearest hop outward;
// the first address outside every trusted range wins. When the chain and
// the transport address are all trusted (or unparsable), the configured
// fallback is returned instead.
package clientip

import (
	"net/netip"
	"strings"
)

type Resolver struct {
	trusted  []netip.Prefix
	fallback netip.Addr
}

func NewResolver(trusted []netip.Prefix, fallback netip.Addr) *Resolver {
	return &Resolver{
		trusted:  trusted,
		fallback: fallback,
	}
}

// ClientAddr picks the outermost untrusted hop from the X-Forwarded-For
// value plus the transport remote address. remoteAddr may carry a port.
func (r *Resolver) ClientAddr(forwardedFor, remoteAddr string) netip.Addr {
	candidates := make([]netip.Addr, 0, 4)

	if addr, ok := parseHost(remoteAddr); ok {
		candidates = append(candidates, addr)
	}

	// Rightmost forwarded entry is the hop closest to us; walk outward.
	entries := strings.Split(forwardedFor, ",")
	for i := len(entries) - 1; i >= 0; i-- {
		entry := strings.TrimSpace(entries[i])
		if entry == "" {
			continue
		}
		addr, ok := parseHost(entry)
		if !ok {
			// An unparsable entry means the rest of the chain is
			// attacker-controlled noise; stop walking.
			break
		}
		candidates = append(candidates, addr)
	}

	for _, addr := range candidates {
		if !r.isTrusted(addr) {
			return addr
		}
	}

	return r.fallback
}

func (r *Resolver) isTrusted(addr netip.Addr) bool {
	for _, p := range r.trusted {
		if p.Contains(addr.Unmap()) {
			return true
		}
	}

	return false
}

func parseHost(s string) (netip.Addr, bool) {
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr(), true
	}
	if addr, err := netip.ParseAddr(s); err == nil {
		return addr, true
	}

	return netip.Addr{}, false
}
