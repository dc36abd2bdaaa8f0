package netprobe

import (
	"context"
	"net"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// DNSResolver resolves hostnames with the system resolver.
type DNSResolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// NewDNSResolver builds a resolver bounded by timeout.
func NewDNSResolver(timeout time.Duration) *DNSResolver {
	if timeout <= 0 {
		timeout = domain.DefaultLookupTimeout
	}
	return &DNSResolver{resolver: net.DefaultResolver, timeout: timeout}
}

// LookupHost implements ports.HostResolver.
func (r *DNSResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	addrs, err := r.resolver.LookupHost(cctx, host)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", host)
	}
	return addrs, nil
}

var _ ports.HostResolver = (*DNSResolver)(nil)
