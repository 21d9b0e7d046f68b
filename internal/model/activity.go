package model

// DailyActivity is the number of minutes worked on one day.
type DailyActivity struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
}
