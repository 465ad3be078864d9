package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr          string
	GinMode          string
	APIBaseURL       string
	SiteBaseURL      string
	StatePath        string
	CORSOrigins      []string
	RequestTimeout   time.Duration
	RefreshWindow    time.Duration
	KeepAliveSpec    string
	KeepAliveEnabled bool
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":3000"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	baseURL := strings.TrimSpace(os.Getenv("ODYSS_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.odyss.ng/api/v1"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	siteURL := strings.TrimSpace(os.Getenv("ODYSS_SITE_BASE_URL"))
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}
	siteURL = strings.TrimRight(siteURL, "/")

	statePath := strings.TrimSpace(os.Getenv("ODYSS_STATE_PATH"))
	if statePath == "" {
		statePath = defaultStatePath()
	}

	var corsOrigins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}

	timeout := parseDuration(os.Getenv("ODYSS_REQUEST_TIMEOUT"), 30*time.Second)
	refreshWindow := parseDuration(os.Getenv("ODYSS_REFRESH_WINDOW"), 5*time.Minute)

	keepAliveSpec := strings.TrimSpace(os.Getenv("ODYSS_KEEPALIVE_SPEC"))
	if keepAliveSpec == "" {
		keepAliveSpec = "@every 10m"
	}

	keepAliveEnabled := true
	if v := strings.TrimSpace(os.Getenv("ODYSS_KEEPALIVE")); v != "" {
		keepAliveEnabled = v != "0" && !strings.EqualFold(v, "false") && !strings.EqualFold(v, "off")
	}

	return Env{
		AppAddr:          appAddr,
		GinMode:          ginMode,
		APIBaseURL:       baseURL,
		SiteBaseURL:      siteURL,
		StatePath:        statePath,
		CORSOrigins:      corsOrigins,
		RequestTimeout:   timeout,
		RefreshWindow:    refreshWindow,
		KeepAliveSpec:    keepAliveSpec,
		KeepAliveEnabled: keepAliveEnabled,
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".odyss/state.json"
	}
	return home + "/.odyss/state.json"
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
