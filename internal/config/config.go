// Package config loads runtime configuration from the environment,
// with a .env file honored in development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable the server and engine need.
type Config struct {
	Port string
	Env  string

	HTTPTimeout  time.Duration
	MaxBodyBytes int64

	NominatimBaseURL  string
	NominatimContact  string
	OSRMBaseURL       string
	OverpassEndpoints []string
	GoogleMapsAPIKey  string

	NCDOTBaseURL   string
	WSDOTBaseURL   string
	WSDOTAccessKey string
	GTFSAlertURL   string
	GTFSAlertState string

	GazetteerPath string

	GeocodeTTL  time.Duration
	RouteTTL    time.Duration
	StopsTTL    time.Duration
	RegionalTTL time.Duration
	OverpassTTL time.Duration

	StopRadiusM    int
	HazardBufferMi float64
}

// Load reads configuration, applying defaults for anything unset. A
// missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		HTTPTimeout:  getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		MaxBodyBytes: getInt64Env("MAX_BODY_BYTES", 1<<20),

		NominatimBaseURL:  getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimContact:  getEnv("NOMINATIM_CONTACT", "evacroute/1.0 (ops@evacroute.local)"),
		OSRMBaseURL:       getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
		OverpassEndpoints: getListEnv("OVERPASS_ENDPOINTS", []string{
			"https://overpass-api.de/api/interpreter",
			"https://overpass.kumi.systems/api/interpreter",
		}),
		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),

		NCDOTBaseURL:   getEnv("NCDOT_BASE_URL", "https://eapps.ncdot.gov/services/traffic-prod/v1"),
		WSDOTBaseURL:   getEnv("WSDOT_BASE_URL", "https://wsdot.wa.gov/Traffic/api/HighwayAlerts/HighwayAlertsREST.svc"),
		WSDOTAccessKey: getEnv("WSDOT_ACCESS_KEY", ""),
		GTFSAlertURL:   getEnv("GTFS_ALERT_URL", ""),
		GTFSAlertState: getEnv("GTFS_ALERT_STATE", ""),

		GazetteerPath: getEnv("GAZETTEER_PATH", ""),

		GeocodeTTL:  getDurationEnv("GEOCODE_TTL", 10*time.Minute),
		RouteTTL:    getDurationEnv("ROUTE_TTL", 2*time.Minute),
		StopsTTL:    getDurationEnv("STOPS_TTL", 5*time.Minute),
		RegionalTTL: getDurationEnv("REGIONAL_TTL", 2*time.Minute),
		OverpassTTL: getDurationEnv("OVERPASS_TTL", 5*time.Minute),

		StopRadiusM:    getIntEnv("STOP_RADIUS_M", 8000),
		HazardBufferMi: getFloatEnv("HAZARD_BUFFER_MI", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getListEnv(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := parts[:0]
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
