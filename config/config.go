package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server config
const SERVER_ADDRESS = ":8080"
const SESSION_TOKEN_HEADER = "X-Session-Token"

// Session / cache lifetimes
const SESSION_TTL_HOURS = 168
const SEARCH_CACHE_TTL_SECONDS = 120
const DASHBOARD_STATS_CACHE_TTL_MINUTES = 30

// Stats refresher config
const STATS_REFRESHER_SCHEDULE_MINUTES = 30

// Matrimony backend endpoints
const MATRIMONY_ENDPOINT_BASE = "https://nadarmahamai.com/api"
const MATRIMONY_UPLOADS_BASE = "https://nadarmahamai.com/uploads"

const LOGIN_ENDPOINT = "/login.php"
const REGISTER_ENDPOINT = "/register.php"
const SEARCH_PROFILES_ENDPOINT = "/search_profiles.php"
const GET_PROFILE_ENDPOINT = "/profile.php"
const SELECTED_PROFILES_ENDPOINT = "/selected-profiles.php"
const DASHBOARD_STATS_ENDPOINT = "/dashboard-stats.php"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const LOGIN_RESPONSE_RESOURCE = "login_response.json"
const SEARCH_PROFILES_RESPONSE_RESOURCE = "search_profiles_response.json"
const PROFILE_RESPONSE_RESOURCE = "profile_response.json"
const SELECTED_PROFILES_RESPONSE_RESOURCE = "selected_profiles_response.json"
const DASHBOARD_STATS_RESPONSE_RESOURCE = "dashboard_stats_response.json"

// LoadEnv reads a .env file if one is present so deployments can override the
// defaults below without rebuilding.
func LoadEnv() {
	_ = godotenv.Load()
}

// Env returns the runtime environment; anything other than "prod" wires the
// mock matrimony API client.
func Env() string {
	if env := os.Getenv("MM_ENV"); env != "" {
		return env
	}
	return "prod"
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDRESS override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// MatrimonyEndpointBase returns the upstream API base URL, honoring the
// MATRIMONY_BASE_URL override (used to point at a staging backend).
func MatrimonyEndpointBase() string {
	if base := os.Getenv("MATRIMONY_BASE_URL"); base != "" {
		return base
	}
	return MATRIMONY_ENDPOINT_BASE
}

// LogDir returns the file-logging directory; empty disables file logging.
func LogDir() string {
	return os.Getenv("LOG_DIR")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
