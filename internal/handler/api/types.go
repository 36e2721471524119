package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date accepts "2006-01-02" or RFC 3339 timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// IDList accepts either a JSON array of identifiers or a single identifier.
type IDList []string

func (l *IDList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		if many == nil {
			many = []string{}
		}
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return fmt.Errorf("identifier list must be a string or an array of strings")
	}
	if one == "" {
		*l = IDList{}
		return nil
	}
	*l = IDList{one}
	return nil
}

// firstIDs returns the first submitted list, or nil when none was.
func firstIDs(lists ...*IDList) []string {
	for _, l := range lists {
		if l != nil {
			out := []string(*l)
			if out == nil {
				out = []string{}
			}
			return out
		}
	}
	return nil
}
