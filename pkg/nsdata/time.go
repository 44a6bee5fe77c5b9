package nsdata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const (
	// DateTimeLayout is the wire format of date-time values, e.g.
	// 2018-05-25T22:13:00+0200.
	DateTimeLayout = "2006-01-02T15:04:05-0700"
	DateLayout     = "2006-01-02"
)

// ParseDateTime parses a date-time carrying a UTC offset. Offsets written
// with a colon (RFC 3339) are accepted as well.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
		return t2, nil
	}
	return time.Time{}, err
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDuration parses an "H:MM" travel time such as "1:07".
func ParseDuration(s string) (time.Duration, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("nsdata: invalid duration %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("nsdata: invalid duration %q", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 || len(m) != 2 {
		return 0, fmt.Errorf("nsdata: invalid duration %q", s)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// FormatDuration renders d as "H:MM", truncated to whole minutes.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int(d / time.Minute)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Delay is a delay in whole minutes together with the text the service
// shows for it ("+19 min").
type Delay struct {
	Minutes int
	Text    string
}

// ParseDelay reads a delay given either as plain minutes or as an ISO-8601
// duration (PT19M). An empty text is replaced by "+N min", or by nothing
// when there is no delay.
func ParseDelay(code, text string) (Delay, error) {
	code = strings.TrimSpace(code)
	var minutes int
	if code != "" {
		if n, err := strconv.Atoi(code); err == nil {
			minutes = n
		} else {
			d, err := iso8601.ParseISO8601(code)
			if err != nil {
				return Delay{}, fmt.Errorf("nsdata: invalid delay %q: %w", code, err)
			}
			minutes = d.D*24*60 + d.TH*60 + d.TM + d.TS/60
		}
	}
	if text == "" && minutes != 0 {
		text = fmt.Sprintf("+%d min", minutes)
	}
	return Delay{Minutes: minutes, Text: text}, nil
}

func (d Delay) String() string { return d.Text }

func (d Delay) IsZero() bool { return d.Minutes == 0 }
