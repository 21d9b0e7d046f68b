package main

import (
	"time"

	"task-calendar/pkg/datemath"
)

// resolveDate turns "today", "next friday", "in 3 days" or YYYY-MM-DD into
// YYYY-MM-DD. An empty string stays empty.
func resolveDate(p *datemath.Parser, s string, now time.Time) (string, error) {
	if s == "" {
		return "", nil
	}
	d, err := p.Parse(s, now)
	if err != nil {
		return "", err
	}
	return d.Format(datemath.DateFormat), nil
}
