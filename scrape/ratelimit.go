package scrape

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/digest"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

var _ digest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each publisher. Hosts under one
// registrable domain share a bucket, so www.bbc.co.uk and feeds.bbc.co.uk
// are throttled together while different publishers proceed in parallel.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter allows rps requests per second to each publisher with no
// bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	key := publisher(host)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// publisher returns the registrable domain of host without its port. IP
// addresses and single-label hosts are returned as they are.
func publisher(host string) string {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if net.ParseIP(host) != nil {
		return host
	}
	if site, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return site
	}
	return host
}
