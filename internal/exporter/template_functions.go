package exporter

import (
	"fmt"
	"html/template"
	"time"
)

// templateFunctions returns the helper functions available to the diff
// report template.
func templateFunctions() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02 15:04:05")
		},
		"formatPercent": func(p float64) string {
			return fmt.Sprintf("%.1f%%", p)
		},
		"rowClass": func(changeType any) string {
			switch fmt.Sprint(changeType) {
			case "add":
				return "line-add"
			case "remove":
				return "line-remove"
			default:
				return "line-unchanged"
			}
		},
	}
}
