package glinr

import "time"

// LogPath describes one log source the daemon can serve lines from.
type LogPath struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// logPathsResponse mirrors GET /v1/logs/paths. Older daemons return the
// list under "paths"; current ones use "log_paths". Both are accepted,
// preferring "log_paths" when present.
type logPathsResponse struct {
	LogPaths []LogPath `json:"log_paths"`
	Paths    []LogPath `json:"paths"`
}

func (r logPathsResponse) list() []LogPath {
	if len(r.LogPaths) > 0 {
		return r.LogPaths
	}
	if len(r.Paths) > 0 {
		return r.Paths
	}
	return nil
}

// logsResponse mirrors GET /v1/logs. Each entry is one raw log line in the
// order the daemon chose; the client does not re-sort.
type logsResponse struct {
	Logs []string `json:"logs"`
}

// SystemInfo mirrors GET /v1/system.
type SystemInfo struct {
	Version       string `json:"version"`
	GoVersion     string `json:"go_version"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	DockerStatus  string `json:"docker_status"`
}

// Uptime returns the daemon uptime as a duration.
func (s SystemInfo) Uptime() time.Duration {
	if s.UptimeSeconds <= 0 {
		return 0
	}
	return time.Duration(s.UptimeSeconds) * time.Second
}
