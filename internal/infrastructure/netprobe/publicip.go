package netprobe

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// maxBodyBytes is far more than any plain-text address service answers with.
const maxBodyBytes = 256

// HTTPPublicIPResolver asks plain-text address services, in order, for the
// host's public IPv4 address.
type HTTPPublicIPResolver struct {
	services []string
	client   *http.Client
	log      ports.Logger
}

// NewHTTPPublicIPResolver builds a resolver; every request is bounded by timeout.
func NewHTTPPublicIPResolver(services []string, timeout time.Duration, log ports.Logger) *HTTPPublicIPResolver {
	if len(services) == 0 {
		services = domain.DefaultPublicIPServices
	}
	if timeout <= 0 {
		timeout = domain.DefaultLookupTimeout
	}
	return &HTTPPublicIPResolver{
		services: services,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// PublicIP implements ports.PublicIPResolver. The first service returning a
// parseable IPv4 address wins; if all fail the errors are combined.
func (r *HTTPPublicIPResolver) PublicIP(ctx context.Context) (string, error) {
	var errs error
	for _, service := range r.services {
		ip, err := r.fetch(ctx, service)
		if err == nil {
			return ip, nil
		}
		if r.log != nil {
			r.log.Debug("public ip service failed", map[string]interface{}{"service": service, "error": err.Error()})
		}
		errs = errors.CombineErrors(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Wrap(errs, "detect public IP")
}

func (r *HTTPPublicIPResolver) fetch(ctx context.Context, service string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, service, nil)
	if err != nil {
		return "", errors.Wrapf(err, "build request for %s", service)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "query %s", service)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("%s answered %s", service, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", errors.Wrapf(err, "read %s", service)
	}
	text := strings.TrimSpace(string(body))
	ip := net.ParseIP(text)
	if ip == nil || ip.To4() == nil {
		return "", errors.Newf("%s returned %q, not an IPv4 address", service, text)
	}
	return ip.String(), nil
}

var _ ports.PublicIPResolver = (*HTTPPublicIPResolver)(nil)
