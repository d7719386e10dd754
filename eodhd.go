package folio

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

const eodhdAPIKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhdAPIKeyEnv+"\". You can get one at https://eodhd.com/")

// EodhdAPIDemoKey is the public demo key, valid for a handful of tickers
// (AAPL.US, MCD.US, ...). Useful for smoke tests.
const EodhdAPIDemoKey = "demo"

func eodhdAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdAPIKeyEnv)
	}
	return *eodhdAPIFlag
}

// EODHDProvider implements PriceProvider against the EODHD.com REST API.
//
// Responses are cached on disk with a daily expiry, so repeated lookups of
// the same ticker within a session do not hammer the service. The cache
// lives in the transport; the engine above it still sees every call as a
// plain synchronous lookup.
type EODHDProvider struct {
	key    string
	base   string
	client *http.Client
}

// NewEODHDProvider returns a provider using the given API key, or the
// -eodhd-api-key flag / EODHD_API_KEY environment variable when empty.
func NewEODHDProvider(apiKey string) *EODHDProvider {
	if apiKey == "" {
		apiKey = eodhdAPIKey()
	}
	return &EODHDProvider{
		key:    apiKey,
		base:   "https://eodhd.com",
		client: daily(),
	}
}

// mapErr translates transport and HTTP failures into the provider error
// taxonomy: 404 means the ticker does not exist, anything else means the
// provider is unavailable.
func (p *EODHDProvider) mapErr(ticker string, err error) error {
	var herr *httpError
	if errors.As(err, &herr) && herr.code == http.StatusNotFound {
		return fmt.Errorf("eodhd: %s: %w", ticker, ErrTickerNotFound)
	}
	return fmt.Errorf("eodhd: %s: %v: %w", ticker, err, ErrProviderUnavailable)
}

// RecentHistory fetches end-of-day closes for the trailing period,
// chronological, from the /api/eod endpoint.
func (p *EODHDProvider) RecentHistory(ticker string, period Period) ([]PricePoint, error) {
	ticker = NormalizeTicker(ticker)
	from := Today().Add(-period.days())
	addr := fmt.Sprintf("%s/api/eod/%s?from=%s&to=%s&period=d&fmt=json&api_token=%s",
		p.base, url.PathEscape(ticker), from, Today(), url.QueryEscape(p.key))

	var rows []struct {
		Date          string  `json:"date"`
		Close         float64 `json:"close"`
		AdjustedClose float64 `json:"adjusted_close"`
	}
	if err := jwget(p.client, addr, &rows); err != nil {
		return nil, p.mapErr(ticker, err)
	}

	points := make([]PricePoint, 0, len(rows))
	for _, row := range rows {
		day, err := ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("eodhd: %s: %v: %w", ticker, err, ErrProviderUnavailable)
		}
		c := row.AdjustedClose
		if c == 0 {
			c = row.Close
		}
		points = append(points, PricePoint{Date: day, Close: c})
	}
	return points, nil
}

// Descriptive fetches the descriptive fields from the /api/fundamentals
// endpoint, plus the day's volume from /api/real-time.
func (p *EODHDProvider) Descriptive(ticker string) (SecurityInfo, error) {
	ticker = NormalizeTicker(ticker)
	addr := fmt.Sprintf("%s/api/fundamentals/%s?fmt=json&api_token=%s",
		p.base, url.PathEscape(ticker), url.QueryEscape(p.key))

	var jobj any
	if err := jwget(p.client, addr, &jobj); err != nil {
		return SecurityInfo{}, p.mapErr(ticker, err)
	}

	info := SecurityInfo{
		Name:       jstr(jobj, "$.General.Name"),
		Sector:     jstr(jobj, "$.General.Sector"),
		Industry:   jstr(jobj, "$.General.Industry"),
		MarketCap:  jnum(jobj, "$.Highlights.MarketCapitalization"),
		Week52High: jnum(jobj, `$.Technicals["52WeekHigh"]`),
		Week52Low:  jnum(jobj, `$.Technicals["52WeekLow"]`),
	}

	// Volume comes from the delayed quote endpoint; a failure here is not
	// fatal, the field just stays 0.
	quoteAddr := fmt.Sprintf("%s/api/real-time/%s?fmt=json&api_token=%s",
		p.base, url.PathEscape(ticker), url.QueryEscape(p.key))
	var quote struct {
		Volume int64 `json:"volume"`
	}
	if err := jwget(p.client, quoteAddr, &quote); err == nil {
		info.Volume = quote.Volume
	}
	return info, nil
}

// jstr extracts a string at a jsonpath, "" when absent or not a string.
func jstr(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// jnum extracts a number at a jsonpath, 0 when absent or not a number.
func jnum(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, _ := jval.(float64)
	return v
}

var _ PriceProvider = (*EODHDProvider)(nil)
