package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/obs"
	"route-summary-service/internal/ports"
)

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// NominatimProvider implements AddressProvider using the Nominatim reverse
// geocoding endpoint (/reverse).
//
// Same best-effort contract as the elevation adapter: one attempt, failures
// degrade to absent. Nominatim's usage policy requires an identifying
// User-Agent on every request.
type NominatimProvider struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     ports.LookupStore
	log       zerolog.Logger
}

func NewNominatimProvider(baseURL, userAgent string, store ports.LookupStore, log zerolog.Logger) *NominatimProvider {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if userAgent == "" {
		userAgent = "route-summary-service"
	}

	return &NominatimProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		cache:     store,
		log:       log,
	}
}

// ReverseGeocode returns the address text for c; ok is false when the
// lookup failed or the provider had no address for the coordinate.
func (p *NominatimProvider) ReverseGeocode(ctx context.Context, c domain.Coordinate) (string, bool) {
	key := cacheKey(c)

	if p.cache != nil {
		v, found, err := p.cache.Get(ctx, key)
		if err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("address cache read failed")
		} else if found {
			return v, true
		}
	}

	address, err := p.fetch(ctx, c)
	if err != nil {
		p.log.Warn().Err(err).Str("coordinate", c.String()).Msg("reverse geocode failed")
		return "", false
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, address); err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("address cache write failed")
		}
	}

	return address, true
}

func (p *NominatimProvider) fetch(ctx context.Context, c domain.Coordinate) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.reverse")(&err)

	endpoint := p.baseURL + "/reverse"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", p.userAgent)

	q := req.URL.Query()
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%f", c.Lat))
	q.Set("lon", fmt.Sprintf("%f", c.Lon))
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	if strings.TrimSpace(decoded.DisplayName) == "" {
		return "", fmt.Errorf("no address for %s", c)
	}

	return decoded.DisplayName, nil
}

func cacheKey(c domain.Coordinate) string {
	return fmt.Sprintf("addr:%.6f,%.6f", c.Lat, c.Lon)
}
