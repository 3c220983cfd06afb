// Package privacy reduces client identifiers to a form safe for request logs.
package privacy

import "net/netip"

const (
	ipv4Prefix = 24
	ipv6Prefix = 48
)

// AnonymizeIP masks an IP address to its network prefix: /24 for IPv4
// ("192.168.1.47" -> "192.168.1.0") and /48 for IPv6. IPv4-mapped IPv6
// addresses are treated as IPv4.
//
// Returns "unknown" for empty input and "invalid" for unparseable input.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap().WithZone("")

	bits := ipv6Prefix
	if addr.Is4() {
		bits = ipv4Prefix
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}
