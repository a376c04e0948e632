package config

import (
	"strconv"
	"strings"
)

const autoPort = "[auto]"

// NormalizeContextPath maps "", blanks and "/" to "" and makes sure any other
// path starts with a slash.
func NormalizeContextPath(path string) string {
	if strings.TrimSpace(path) == "" || path == "/" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// BuildDeployURL renders http://localhost:<port><path>. Port 0 is shown as
// [auto] and an empty path as "/".
func BuildDeployURL(port int, path string) string {
	p := autoPort
	if port != 0 {
		p = strconv.Itoa(port)
	}
	if path == "" {
		path = "/"
	}
	return "http://localhost:" + p + path
}

// BuildOpenURL layers an optional custom location over the deploy URL.
//
// An absolute URL replaces it, a location starting with "/" is resolved
// against the host and anything else is appended to the deploy URL.
func BuildOpenURL(port int, contextPath, custom string) string {
	deployURL := BuildDeployURL(port, contextPath)
	switch {
	case custom == "":
		return deployURL
	case strings.HasPrefix(custom, "http://"), strings.HasPrefix(custom, "https://"):
		return custom
	case strings.HasPrefix(custom, "/"):
		return BuildDeployURL(port, custom)
	default:
		return deployURL + custom
	}
}
