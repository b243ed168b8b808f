package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func draftCheck(uuid string) *Check {
	return &Check{
		Name:    "test",
		Slug:    "test",
		PingURL: "https://hc-ping.com/" + uuid,
		Grace:   3600,
		Status:  StatusUp,
	}
}

func TestCheckIDFromPingURL(t *testing.T) {
	check := draftCheck("abc123-def456")
	require.Equal(t, "abc123-def456", check.ID())
}

func TestCheckIDPrefersExplicitUUID(t *testing.T) {
	check := draftCheck("abc123-def456")
	check.UUID = "explicit-uuid"
	require.Equal(t, "explicit-uuid", check.ID())
}

func TestCheckIDEmptyPingURL(t *testing.T) {
	check := &Check{}
	require.Equal(t, "", check.ID())
}

func TestCheckShortID(t *testing.T) {
	check := draftCheck("abc123-def456")
	require.Equal(t, "abc123", check.ShortID())
}

func TestCheckShortIDNoHyphen(t *testing.T) {
	check := draftCheck("abc123def456")
	require.Equal(t, "abc123def456", check.ShortID())
}

func TestCheckLastPingAtSentinel(t *testing.T) {
	check := draftCheck("abc123-def456")

	at := check.LastPingAt()
	require.Equal(t, 1901, at.Year())
	require.Equal(t, time.January, at.Month())
	require.Equal(t, 1, at.Day())
}

func TestCheckLastPingAtUnparsable(t *testing.T) {
	check := draftCheck("abc123-def456")
	check.LastPing = "not-a-timestamp"

	require.Equal(t, 1901, check.LastPingAt().Year())
}

func TestCheckLastPingAt(t *testing.T) {
	check := draftCheck("abc123-def456")
	check.LastPing = "2024-01-15T10:30:00+00:00"

	require.GreaterOrEqual(t, check.LastPingAt().Year(), 2024)
}

func TestCheckHumanizedLastPingAtNever(t *testing.T) {
	check := draftCheck("abc123-def456")
	require.Equal(t, "never", check.HumanizedLastPingAt())
}

func TestCheckHumanizedLastPingAt(t *testing.T) {
	check := draftCheck("abc123-def456")
	check.LastPing = "2024-01-15T10:30:00+00:00"

	humanized := check.HumanizedLastPingAt()
	require.NotEmpty(t, humanized)
	require.NotEqual(t, "never", humanized)
}
