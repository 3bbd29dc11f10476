package holidays

import (
	_ "embed"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// England & Wales bank holidays, GOV.UK bank-holidays.json format. The
// embedded snapshot covers 2024-2027; BANK_HOLIDAYS_URL can point at the
// live GOV.UK feed to extend it at runtime.

//go:embed bankholidays.json
var embedded []byte

const division = "england-and-wales"

var (
	feedURL string
	client  *http.Client

	mu    sync.RWMutex
	dates map[string]struct{}

	refreshOnce sync.Once
)

func init() {
	feedURL = os.Getenv("BANK_HOLIDAYS_URL")
	if feedURL != "" {
		client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	dates = parseFeed(embedded)
}

// SetFeedURL points the registry at a remote feed. It has no effect after
// the first lookup, and the BANK_HOLIDAYS_URL environment variable wins.
func SetFeedURL(u string) {
	if u == "" || feedURL != "" {
		return
	}
	feedURL = u
	client = &http.Client{Timeout: 2 * time.Second}
}

type feed map[string]struct {
	Division string `json:"division"`
	Events   []struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	} `json:"events"`
}

func parseFeed(b []byte) map[string]struct{} {
	var f feed
	if err := json.Unmarshal(b, &f); err != nil {
		return map[string]struct{}{}
	}
	out := make(map[string]struct{})
	for _, ev := range f[division].Events {
		out[ev.Date] = struct{}{}
	}
	return out
}

// IsBankHoliday reports whether t falls on an England & Wales bank holiday.
// The first call triggers a one-shot remote refresh when BANK_HOLIDAYS_URL
// is set; on any fetch error the embedded snapshot stands.
func IsBankHoliday(t time.Time) bool {
	refreshOnce.Do(refresh)
	mu.RLock()
	_, ok := dates[t.Format("2006-01-02")]
	mu.RUnlock()
	return ok
}

func refresh() {
	if feedURL == "" {
		return
	}
	resp, err := client.Get(feedURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	fetched := parseFeed(body)
	if len(fetched) == 0 {
		return
	}
	mu.Lock()
	for d := range fetched {
		dates[d] = struct{}{}
	}
	mu.Unlock()
}
