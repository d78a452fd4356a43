package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/client/models"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatTime renders t in local time, or "-" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func (s Styles) card(title string, rows [][2]string) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(title))
	for _, r := range rows {
		sb.WriteString("\n")
		sb.WriteString(s.Label.Render(r[0] + ":"))
		sb.WriteString(" ")
		sb.WriteString(r[1])
	}
	return s.Card.Render(sb.String())
}

// UserCard shows the logged-in user.
func UserCard(s Styles, u models.User, loggedInAt time.Time) string {
	return s.card("Logged in", [][2]string{
		{"ID", fmt.Sprint(u.ID)},
		{"Username", u.Username},
		{"Name", u.Name},
		{"Login time", FormatTime(loggedInAt)},
	})
}

// ResultCard shows a process-data outcome.
func ResultCard(s Styles, r *models.ProcessResult) string {
	return s.card("Result", [][2]string{
		{"Action", r.Action},
		{"Input", RawValue(r.Input)},
		{"Result", RawValue(r.Result)},
		{"Message", r.Message},
		{"Processed", FormatTime(r.Timestamp)},
	})
}

// UsersCard lists users under a heading with the count.
func UsersCard(s Styles, users []models.User) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(fmt.Sprintf("Users (%d)", len(users))))
	if len(users) == 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render("no users"))
	}
	for _, u := range users {
		sb.WriteString(fmt.Sprintf("\n%s %s (%s)", s.Label.Render(fmt.Sprintf("#%d", u.ID)), u.Name, u.Username))
	}
	return s.Card.Render(sb.String())
}

// StatusCard shows the server status. st is ignored when offline.
func StatusCard(s Styles, st *models.ServerStatus, online bool, checked time.Time, serverURL string) string {
	if !online || st == nil {
		return s.card("Server offline", [][2]string{
			{"Message", "Cannot reach the backend server."},
			{"Checked", FormatTime(checked)},
			{"Server", serverURL},
		})
	}
	return s.card("Server online", [][2]string{
		{"Message", st.Message},
		{"Server time", FormatTime(st.Timestamp)},
		{"Checked", FormatTime(checked)},
		{"Server", serverURL},
	})
}

// RawValue renders a JSON value for display: strings without quotes,
// everything else as compact JSON.
func RawValue(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
