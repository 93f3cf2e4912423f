package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/obs"
	"route-summary-service/internal/ports"
)

type lookupResponse struct {
	Results []struct {
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// OpenElevationProvider implements ElevationProvider using the
// Open-Elevation API (/api/v1/lookup).
//
// Lookups are best-effort with a single attempt: a timeout, non-200
// response, or malformed payload is logged and reported as absent, never
// returned to the caller. Successful results are cached when a store is
// configured; cache failures also fall through silently.
type OpenElevationProvider struct {
	session *http.Client
	baseURL string
	cache   ports.LookupStore
	log     zerolog.Logger
}

func NewOpenElevationProvider(baseURL string, store ports.LookupStore, log zerolog.Logger) *OpenElevationProvider {
	if baseURL == "" {
		baseURL = "https://api.open-elevation.com"
	}

	return &OpenElevationProvider{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cache:   store,
		log:     log,
	}
}

// Elevation returns the ground elevation at c in meters; ok is false when
// the lookup failed for any reason.
func (p *OpenElevationProvider) Elevation(ctx context.Context, c domain.Coordinate) (float64, bool) {
	key := cacheKey(c)

	if p.cache != nil {
		v, found, err := p.cache.Get(ctx, key)
		if err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("elevation cache read failed")
		} else if found {
			if m, err := strconv.ParseFloat(v, 64); err == nil {
				return m, true
			}
		}
	}

	meters, err := p.fetch(ctx, c)
	if err != nil {
		p.log.Warn().Err(err).Str("coordinate", c.String()).Msg("elevation lookup failed")
		return 0, false
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, strconv.FormatFloat(meters, 'f', -1, 64)); err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("elevation cache write failed")
		}
	}

	return meters, true
}

func (p *OpenElevationProvider) fetch(ctx context.Context, c domain.Coordinate) (_ float64, err error) {
	defer obs.Time(ctx, "openelevation.lookup")(&err)

	endpoint := p.baseURL + "/api/v1/lookup"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("locations", fmt.Sprintf("%f,%f", c.Lat, c.Lon))
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode elevation response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return 0, fmt.Errorf("no elevation results for %s", c)
	}

	return decoded.Results[0].Elevation, nil
}

func cacheKey(c domain.Coordinate) string {
	return fmt.Sprintf("elev:%.6f,%.6f", c.Lat, c.Lon)
}
