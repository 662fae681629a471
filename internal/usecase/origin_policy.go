package usecase

import (
	"net/url"
	"strings"

	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// OriginPolicy admits cross-origin callers by exact allow-list match or by a
// trusted hosting-platform hostname suffix. Comparison is case-sensitive.
type OriginPolicy struct {
	allowed  map[string]struct{}
	suffixes []string
	logger   usecasecontract.IAppLogger
}

// NewOriginPolicy builds a policy. Allow-list entries are normalised the same
// way request origins are.
func NewOriginPolicy(allowedOrigins, trustedSuffixes []string, logger usecasecontract.IAppLogger) *OriginPolicy {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = normalizeOrigin(strings.TrimSpace(o)); o != "" {
			allowed[o] = struct{}{}
		}
	}
	suffixes := make([]string, 0, len(trustedSuffixes))
	for _, s := range trustedSuffixes {
		if s = strings.TrimSpace(s); s != "" {
			suffixes = append(suffixes, s)
		}
	}
	return &OriginPolicy{allowed: allowed, suffixes: suffixes, logger: logger}
}

var _ usecasecontract.IOriginPolicy = (*OriginPolicy)(nil)

// Allows reports whether origin may receive a response. An empty origin means
// a same-origin or non-browser caller and is always allowed.
func (p *OriginPolicy) Allows(origin string) bool {
	if origin == "" {
		return true
	}
	if _, ok := p.allowed[normalizeOrigin(origin)]; ok {
		return true
	}
	if len(p.suffixes) == 0 {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	for _, s := range p.suffixes {
		if strings.HasSuffix(host, s) {
			return true
		}
	}
	return false
}

// Admit is Allows plus the denial side effects.
func (p *OriginPolicy) Admit(origin string) error {
	if p.Allows(origin) {
		return nil
	}
	metrics.OriginDenials.Inc()
	p.logger.Warnf("Blocked by CORS: %s", origin)
	return errs.ForbiddenOrigin
}

// normalizeOrigin strips exactly one trailing slash.
func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(origin, "/")
}
