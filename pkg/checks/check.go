package checks

import (
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Check statuses as reported by the service.
const (
	StatusUp     = "up"
	StatusDown   = "down"
	StatusGrace  = "grace"
	StatusPaused = "paused"
)

// neverYear is the cutoff below which a last-ping instant is treated as
// "never pinged". It covers the sentinel and any implausible epoch value.
const neverYear = 1950

// Check represents one monitor as known by the remote service. Values are
// built by decoding a service response, or locally as a draft carrying only
// UUID/PingURL when addressing pause, ping and delete calls.
type Check struct {
	UUID      string `json:"uuid,omitempty"`
	ShortUUID string `json:"short_uuid,omitempty"`
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	PingURL   string `json:"ping_url"`
	PauseURL  string `json:"pause_url,omitempty"`
	LastPing  string `json:"last_ping,omitempty"`
	NextPing  string `json:"next_ping,omitempty"`
	Grace     int    `json:"grace,omitempty"`
	NPings    int    `json:"n_pings,omitempty"`
	Tags      string `json:"tags,omitempty"`
	Timeout   *int   `json:"timeout,omitempty"`
	TZ        string `json:"tz,omitempty"`
	Schedule  string `json:"schedule,omitempty"`
	Status    string `json:"status,omitempty"`
	UpdateURL string `json:"update_url,omitempty"`

	idOnce    sync.Once
	id        string
	shortOnce sync.Once
	shortID   string
}

// ID returns the check's identifier. When the payload carried no explicit
// uuid, it is derived from the last path segment of the ping URL. The
// derived value is computed at most once per instance.
func (c *Check) ID() string {
	if c.UUID != "" {
		return c.UUID
	}
	c.idOnce.Do(func() {
		c.id = extractID(c.PingURL)
	})
	return c.id
}

// ShortID returns the shortened display form of the identifier: the prefix
// of ID() up to the first '-', or the whole id when it has no hyphen.
func (c *Check) ShortID() string {
	if c.ShortUUID != "" {
		return c.ShortUUID
	}
	c.shortOnce.Do(func() {
		id := c.ID()
		if i := strings.IndexByte(id, '-'); i >= 0 {
			id = id[:i]
		}
		c.shortID = id
	})
	return c.shortID
}

func extractID(pingURL string) string {
	if pingURL == "" {
		return ""
	}
	parts := strings.Split(pingURL, "/")
	return parts[len(parts)-1]
}

// LastPingAt returns the instant of the last heartbeat in local time. A
// check that has never pinged, or whose timestamp does not parse, reports
// the sentinel instant 1901-01-01 00:00.
func (c *Check) LastPingAt() time.Time {
	if c.LastPing == "" {
		return neverPingedAt()
	}
	at, err := time.Parse(time.RFC3339, c.LastPing)
	if err != nil {
		return neverPingedAt()
	}
	return at.Local()
}

// HumanizedLastPingAt renders the last heartbeat as a relative phrase such
// as "3 minutes ago", or the literal "never" for the sentinel.
func (c *Check) HumanizedLastPingAt() string {
	at := c.LastPingAt()
	if at.Year() < neverYear {
		return "never"
	}
	return humanize.Time(at)
}

func neverPingedAt() time.Time {
	return time.Date(1901, time.January, 1, 0, 0, 0, 0, time.Local)
}
