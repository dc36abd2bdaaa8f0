package netprobe

import (
	"context"
	"net"
	"strconv"
	"sync"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// ListenProber checks ports by binding them on all interfaces.
type ListenProber struct {
	log ports.Logger
}

// NewListenProber builds a prober.
func NewListenProber(log ports.Logger) *ListenProber {
	return &ListenProber{log: log}
}

// Probe implements ports.PortProber. Every port is probed concurrently and
// the result slice keeps the input order regardless of completion order.
func (p *ListenProber) Probe(ctx context.Context, list []int) []domain.PortCheck {
	results := make([]domain.PortCheck, len(list))
	var wg sync.WaitGroup
	for i, port := range list {
		wg.Add(1)
		go func(i, port int) {
			defer wg.Done()
			results[i] = domain.PortCheck{Port: port, Available: p.available(ctx, port)}
		}(i, port)
	}
	wg.Wait()
	return results
}

func (p *ListenProber) available(ctx context.Context, port int) bool {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", ":"+strconv.Itoa(port))
	if err != nil {
		if p.log != nil {
			p.log.Debug("port unavailable", map[string]interface{}{"port": port, "error": err.Error()})
		}
		return false
	}
	_ = ln.Close()
	return true
}

var _ ports.PortProber = (*ListenProber)(nil)
