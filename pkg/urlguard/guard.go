package urlguard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
)

var (
	ErrBlockedScheme = errors.New("url scheme not allowed")
	ErrBlockedHost   = errors.New("host not allowed")
	ErrBlockedIP     = errors.New("ip address not allowed")
)

var blockedHostnames = map[string]struct{}{
	"localhost":                {},
	"metadata.google.internal": {},
	"metadata":                 {},
}

var blockedSuffixes = []string{".localhost", ".local", ".internal", ".localdomain"}

// Prefixes that are never reachable from a public scraper.
var blockedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("224.0.0.0/4"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("::/128"),
	netip.MustParsePrefix("fc00::/7"),
	netip.MustParsePrefix("fe80::/10"),
	netip.MustParsePrefix("ff00::/8"),
}

// Resolver looks up host addresses. *net.Resolver satisfies it.
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Guard decides whether an outbound URL may be fetched.
type Guard struct {
	allowPrivate bool
	resolver     Resolver
}

// Option configures a Guard.
type Option func(*Guard)

// AllowPrivate disables the IP range checks. Hostname rules still apply
// unless the host is an IP literal.
func AllowPrivate(allow bool) Option {
	return func(g *Guard) { g.allowPrivate = allow }
}

// WithResolver replaces net.DefaultResolver.
func WithResolver(r Resolver) Option {
	return func(g *Guard) { g.resolver = r }
}

// New creates a Guard.
func New(opts ...Option) *Guard {
	g := &Guard{resolver: net.DefaultResolver}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CheckURL validates scheme and host of raw without resolving DNS.
func (g *Guard) CheckURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBlockedHost, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrBlockedScheme
	}
	if err := g.CheckHost(u.Hostname()); err != nil {
		return nil, err
	}
	return u, nil
}

// CheckHost validates a bare hostname or IP literal.
func (g *Guard) CheckHost(host string) error {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return ErrBlockedHost
	}

	if addr, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil {
		return g.CheckIP(addr)
	}

	if g.allowPrivate {
		return nil
	}
	if _, ok := blockedHostnames[host]; ok {
		return ErrBlockedHost
	}
	for _, suffix := range blockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return ErrBlockedHost
		}
	}
	return nil
}

// CheckIP rejects loopback, private, link-local and other non-public addresses.
func (g *Guard) CheckIP(addr netip.Addr) error {
	if g.allowPrivate {
		return nil
	}
	addr = addr.Unmap()
	if !addr.IsValid() || addr.IsUnspecified() || addr.IsLoopback() || addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() || addr.IsMulticast() {
		return ErrBlockedIP
	}
	for _, p := range blockedPrefixes {
		if p.Contains(addr) {
			return ErrBlockedIP
		}
	}
	return nil
}

// Resolve checks the URL and every address its host resolves to.
func (g *Guard) Resolve(ctx context.Context, raw string) (*url.URL, error) {
	u, err := g.CheckURL(raw)
	if err != nil {
		return nil, err
	}
	if g.allowPrivate {
		return u, nil
	}
	host := u.Hostname()
	if _, err := netip.ParseAddr(host); err == nil {
		return u, nil
	}

	addrs, err := g.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}
	for _, addr := range addrs {
		if err := g.CheckIP(addr); err != nil {
			return nil, fmt.Errorf("%s -> %s: %w", host, addr, err)
		}
	}
	return u, nil
}

// DialControl is meant for net.Dialer.Control. It re-checks the address that is
// actually being dialled, which covers DNS rebinding between Resolve and dial.
func (g *Guard) DialControl(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBlockedIP, err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBlockedIP, err)
	}
	return g.CheckIP(addr)
}

// IsBlocked reports whether err came from the guard.
func IsBlocked(err error) bool {
	return errors.Is(err, ErrBlockedScheme) || errors.Is(err, ErrBlockedHost) || errors.Is(err, ErrBlockedIP)
}
