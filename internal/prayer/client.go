// Package prayer proxies the AlAdhan prayer-times API, renaming fields into
// the shape the front-end renders.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/basirah-app/backend/internal/config"
)

// Timings are the five daily prayers plus sunrise.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Hijri is the Islamic-calendar date in Arabic.
type Hijri struct {
	Day         string `json:"day"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Designation string `json:"designation"`
	Weekday     string `json:"weekday"`
	Full        string `json:"full"`
}

// Date carries both calendars for the requested day.
type Date struct {
	Gregorian        string `json:"gregorian"`
	Hijri            *Hijri `json:"hijri"`
	GregorianWeekday string `json:"gregorianWeekday,omitempty"`
}

// Location echoes the calculation context.
type Location struct {
	Timezone string `json:"timezone"`
	Method   string `json:"method"`
}

// Times is the full response payload.
type Times struct {
	Timings  Timings  `json:"timings"`
	Date     Date     `json:"date"`
	Location Location `json:"location"`
}

// Client queries AlAdhan.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New builds the AlAdhan client.
func New(cfg config.Prayer, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.AlAdhanBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// aladhanTimings mirrors the parts of the AlAdhan payload we map. The same
// response carries the Hijri date, so one request covers both calendars.
type aladhanTimings struct {
	Data struct {
		Timings Timings `json:"timings"`
		Date    struct {
			Readable string `json:"readable"`
			Hijri    *struct {
				Day   string `json:"day"`
				Month struct {
					Ar string `json:"ar"`
				} `json:"month"`
				Year        string `json:"year"`
				Designation struct {
					Abbreviated string `json:"abbreviated"`
				} `json:"designation"`
				Weekday struct {
					Ar string `json:"ar"`
				} `json:"weekday"`
			} `json:"hijri"`
			Gregorian struct {
				Weekday struct {
					Ar string `json:"ar"`
				} `json:"weekday"`
			} `json:"gregorian"`
		} `json:"date"`
		Meta struct {
			Timezone string `json:"timezone"`
			Method   struct {
				Name string `json:"name"`
			} `json:"method"`
		} `json:"meta"`
	} `json:"data"`
}

// Today fetches prayer times for the given coordinates and calculation
// method on the current date.
func (c *Client) Today(ctx context.Context, latitude, longitude float64, method int) (*Times, error) {
	date := time.Now().UTC().Format("02-01-2006")
	url := fmt.Sprintf("%s/v1/timings/%s?latitude=%s&longitude=%s&method=%d",
		c.baseURL, date,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64),
		method,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladhan status %d", resp.StatusCode)
	}

	var payload aladhanTimings
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode timings: %w", err)
	}

	out := &Times{
		Timings: payload.Data.Timings,
		Date: Date{
			Gregorian:        payload.Data.Date.Readable,
			GregorianWeekday: payload.Data.Date.Gregorian.Weekday.Ar,
		},
		Location: Location{
			Timezone: payload.Data.Meta.Timezone,
			Method:   payload.Data.Meta.Method.Name,
		},
	}

	if h := payload.Data.Date.Hijri; h != nil {
		out.Date.Hijri = &Hijri{
			Day:         h.Day,
			Month:       h.Month.Ar,
			Year:        h.Year,
			Designation: h.Designation.Abbreviated,
			Weekday:     h.Weekday.Ar,
			Full:        fmt.Sprintf("%s %s %s", h.Day, h.Month.Ar, h.Year),
		}
	}

	return out, nil
}
