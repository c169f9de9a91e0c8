package external

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
	"wristweather.app/pkg/uri"
)

// Yahoo publishes pubDate as "Wed, 18 Nov 2015 9:00 am EET"
// Layouts for the wall clock part of pubDate, zone token removed
var yahooPubDateLayouts = []string{
	"Mon, 02 Jan 2006 3:04 pm",
	"Mon, 2 Jan 2006 3:04 pm",
	"Mon, 02 Jan 2006 15:04:05",
}

const yahooClockLayout = "2006-01-02 3:04 pm"

// YahooProviderAdapter implements ConditionsProvider for the Yahoo YQL weather tables.
// One multi-query returns the forecast channel and the reverse geocoded neighborhood.
type YahooProviderAdapter struct {
	baseURL string
}

// YahooProviderParams holds parameters for creating the Yahoo provider
type YahooProviderParams struct {
	BaseURL string
}

type yahooResponse struct {
	Query struct {
		Results *struct {
			Results []json.RawMessage `json:"results"`
		} `json:"results"`
	} `json:"query"`
}

type yahooChannelResult struct {
	Channel *struct {
		Astronomy struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"astronomy"`
		Item struct {
			PubDate   string `json:"pubDate"`
			Condition struct {
				Code string `json:"code"`
				Temp string `json:"temp"`
			} `json:"condition"`
		} `json:"item"`
	} `json:"channel"`
}

type yahooPlaceResult struct {
	Result *struct {
		Neighborhood *string `json:"neighborhood"`
		City         *string `json:"city"`
	} `json:"Result"`
}

// NewYahooProviderAdapter creates a new Yahoo provider adapter
func NewYahooProviderAdapter(params YahooProviderParams) *YahooProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://query.yahooapis.com/v1/public/yql"
	}
	return &YahooProviderAdapter{baseURL: baseURL}
}

// Name returns the name of this weather provider
func (p *YahooProviderAdapter) Name() string {
	return "yahoo"
}

// BuildRequest returns the multi-query URL. nocache carries the request time in milliseconds.
func (p *YahooProviderAdapter) BuildRequest(coords ports.Coordinates, opts ports.RequestOptions) (string, error) {
	text := formatCoordinate(coords.Latitude) + "," + formatCoordinate(coords.Longitude)

	scale := "f"
	if opts.Unit == ports.UnitCelsius {
		scale = "c"
	}

	subselect := `SELECT woeid FROM geo.placefinder WHERE text="` + text + `" AND gflags="R"`
	neighbor := `SELECT * FROM geo.placefinder WHERE text="` + text + `" AND gflags="R";`
	query := `SELECT * FROM weather.forecast WHERE woeid IN (` + subselect + `) AND u="` + scale + `";`
	multi := `SELECT * FROM yql.query.multi WHERE queries='` + query + ` ` + neighbor + `'`

	return fmt.Sprintf("%s?format=json&q=%s&nocache=%d",
		p.baseURL, uri.EncodeComponent(multi), requestTime(opts).UnixMilli()), nil
}

// Parse extracts the current conditions from both sub-results. A missing sub-result aborts.
func (p *YahooProviderAdapter) Parse(body []byte, opts ports.RequestOptions) (*ports.ConditionsReading, error) {
	var apiResp yahooResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode Yahoo response", err)
	}

	if apiResp.Query.Results == nil || len(apiResp.Query.Results.Results) < 2 {
		return nil, errors.NewParseError("Yahoo response is missing query results", nil)
	}

	var weather yahooChannelResult
	if err := json.Unmarshal(apiResp.Query.Results.Results[0], &weather); err != nil || weather.Channel == nil {
		return nil, errors.NewParseError("Yahoo response is missing the weather channel", err)
	}

	var place yahooPlaceResult
	if err := json.Unmarshal(apiResp.Query.Results.Results[1], &place); err != nil || place.Result == nil {
		return nil, errors.NewParseError("Yahoo response is missing the place result", err)
	}

	channel := weather.Channel

	code, err := parseYahooNumber(channel.Item.Condition.Code)
	if err != nil {
		return nil, errors.NewParseError("invalid Yahoo condition code", err)
	}
	temp, err := parseYahooNumber(channel.Item.Condition.Temp)
	if err != nil {
		return nil, errors.NewParseError("invalid Yahoo temperature", err)
	}

	loc := deviceLocation(opts)
	published, err := parseYahooPubDate(channel.Item.PubDate, loc)
	if err != nil {
		return nil, err
	}

	today := requestTime(opts).In(loc).Format("2006-01-02")

	sunrise, err := time.ParseInLocation(yahooClockLayout, today+" "+channel.Astronomy.Sunrise, loc)
	if err != nil {
		return nil, errors.NewParseError("invalid Yahoo sunrise", err)
	}
	sunset, err := time.ParseInLocation(yahooClockLayout, today+" "+channel.Astronomy.Sunset, loc)
	if err != nil {
		return nil, errors.NewParseError("invalid Yahoo sunset", err)
	}

	return &ports.ConditionsReading{
		Condition:   ports.ConditionCode{Code: code},
		Temperature: ports.Temperature{Value: float64(temp), Unit: scaleUnit(opts)},
		Sunrise:     sunrise.Unix(),
		Sunset:      sunset.Unix(),
		Locale:      yahooLocale(place),
		Published:   published,
	}, nil
}

// parseYahooNumber reads numeric strings the way Yahoo sends them, truncating decimals ("72.5" is 72)
func parseYahooNumber(value string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", value)
	}
	return int(math.Trunc(f)), nil
}

// parseYahooPubDate keeps the publication wall clock. Numeric offsets are honored;
// zone abbreviations are dropped and the time is read in the device zone.
func parseYahooPubDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC1123Z, value); err == nil {
		return t, nil
	}

	wall := value
	if i := strings.LastIndex(value, " "); i > 0 && isZoneAbbreviation(value[i+1:]) {
		wall = value[:i]
	}
	for _, layout := range yahooPubDateLayouts {
		if t, err := time.ParseInLocation(layout, wall, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewParseError(fmt.Sprintf("invalid Yahoo pubDate %q", value), nil)
}

func isZoneAbbreviation(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func yahooLocale(place yahooPlaceResult) string {
	if n := place.Result.Neighborhood; n != nil && *n != "" {
		return *n
	}
	if c := place.Result.City; c != nil && *c != "" {
		return *c
	}
	return "unknown"
}
