package config

import (
	"os"
	"strconv"
	"time"
)

type Settings struct {
	Addr           string        // status API bind address, e.g., "127.0.0.1:8080"
	LogDir         string        // logs directory
	RefreshPeriod  time.Duration // fixed monitoring cycle period
	ProbeTimeout   time.Duration // per-probe liveness timeout
	DNSDiagnostics bool          // resolve and log DNS class on probe transport errors
}

func FromEnv() Settings {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	refresh := 15 * time.Second
	if v := os.Getenv("REFRESH_PERIOD_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			refresh = time.Duration(n) * time.Second
		}
	}

	// Short on purpose: the probe detects downness, it is not a functional check.
	probeTimeout := 500 * time.Millisecond
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			probeTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	dnsDiag := true
	if v := os.Getenv("DNS_DIAGNOSTICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			dnsDiag = b
		}
	}

	return Settings{
		Addr:           addr,
		LogDir:         logDir,
		RefreshPeriod:  refresh,
		ProbeTimeout:   probeTimeout,
		DNSDiagnostics: dnsDiag,
	}
}
