package clientip

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"
)

// ErrInvalidProxy is returned for a trusted proxy entry that is neither an
// address nor a CIDR prefix.
var ErrInvalidProxy = errors.New("clientip: invalid trusted proxy")

// Headers consulted for the client address, in priority order. They are set
// by the proxies the daemon usually runs behind.
var Headers = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the normalized client address of r: the first valid address
// found in Headers, falling back to RemoteAddr. It returns "" when nothing
// parses. Headers are trusted unconditionally; use a Resolver when requests
// can reach the server without passing a proxy.
func GetIP(r *http.Request) string {
	if ip := fromHeaders(r); ip != "" {
		return ip
	}
	return remoteIP(r)
}

// Resolver resolves client addresses, honouring Headers only for requests
// whose RemoteAddr belongs to a trusted proxy. The zero value trusts nobody
// and always answers with RemoteAddr.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver returns a Resolver trusting the given proxies. Each entry is an
// address ("10.0.0.1") or a CIDR prefix ("10.0.0.0/8").
func NewResolver(trusted ...string) (*Resolver, error) {
	r := &Resolver{}
	for _, entry := range trusted {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
			}
			r.trusted = append(r.trusted, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
		}
		addr = addr.Unmap()
		r.trusted = append(r.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return r, nil
}

// GetIP is like the package GetIP, but reads Headers only when the peer is
// a trusted proxy.
func (r *Resolver) GetIP(req *http.Request) string {
	remote := remoteIP(req)
	if r.trusts(remote) {
		if ip := fromHeaders(req); ip != "" {
			return ip
		}
	}
	return remote
}

func (r *Resolver) trusts(ip string) bool {
	if r == nil || ip == "" {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(r.trusted, func(p netip.Prefix) bool {
		return p.Contains(addr)
	})
}

func fromHeaders(r *http.Request) string {
	for _, h := range Headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For lists the client first.
		for candidate := range strings.SplitSeq(v, ",") {
			if ip := parse(candidate); ip != "" {
				return ip
			}
		}
	}
	return ""
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
