// Package reminders lets users keep simple daily reminders ("drink water at
// 15:00"). Reminders are private to their owner; another user's reminder is
// indistinguishable from a missing one.
package reminders

import "time"

// maxTitleLen matches reminders.title.
const maxTitleLen = 200

// timeLayout is the wall-clock format reminders are stored and returned in.
const timeLayout = "15:04"

// Reminder is one user reminder.
type Reminder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReminderRequest is the JSON body of POST /reminders.
type CreateReminderRequest struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}
