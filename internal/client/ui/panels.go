package ui

import (
	"strings"
)

// Panel is one screen region of the CLI.
type Panel int

const (
	PanelLogin Panel = iota
	PanelUser
	PanelData
	PanelUsers
	PanelStatus
)

func (p Panel) String() string {
	switch p {
	case PanelLogin:
		return "login"
	case PanelUser:
		return "user"
	case PanelData:
		return "data"
	case PanelUsers:
		return "users"
	case PanelStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Panels returns the visible panels for the session state. The login panel
// is shown iff there is no session; user, data and users iff there is one.
// Server status is always visible.
func Panels(loggedIn bool) []Panel {
	if loggedIn {
		return []Panel{PanelUser, PanelData, PanelUsers, PanelStatus}
	}
	return []Panel{PanelLogin, PanelStatus}
}

var panelHints = map[Panel]string{
	PanelLogin:  "login",
	PanelUser:   "logout",
	PanelData:   "calc <n> | reverse <text> | echo <text> | process <action> <data>",
	PanelUsers:  "users",
	PanelStatus: "status",
}

// RenderPanels lists the visible panels and the commands each one offers.
func RenderPanels(s Styles, loggedIn bool) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Panels"))
	for _, p := range Panels(loggedIn) {
		sb.WriteString("\n  ")
		sb.WriteString(s.Label.Render(p.String()))
		sb.WriteString("  ")
		sb.WriteString(s.Muted.Render(panelHints[p]))
	}
	return sb.String()
}
