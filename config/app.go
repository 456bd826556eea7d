package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName       string
	Port          string
	Env           string
	Debug         bool
	MediaUrl      string
	PageSize      int
	SubmitDelay   time.Duration
	StorageDriver string // memory, db or redis
	StorageDump   string // memory driver only: file the storage is restored from and dumped to
	CatalogSource string // fixture or db
	CartIdleTTL   time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:       GetEnv("APP_NAME", "storefront.GO"),
			Port:          GetEnv("PORT", "8080"),
			Env:           os.Getenv("APP_ENV"),
			Debug:         os.Getenv("DEBUG") == "true",
			MediaUrl:      GetEnv("MEDIA_URL", "/media/catalog/product/"),
			PageSize:      envInt("PAGE_SIZE", 6),
			SubmitDelay:   envDuration("SUBMIT_DELAY", 2*time.Second),
			StorageDriver: GetEnv("STORAGE_DRIVER", "memory"),
			StorageDump:   os.Getenv("STORAGE_DUMP"),
			CatalogSource: GetEnv("CATALOG_SOURCE", "fixture"),
			CartIdleTTL:   envDuration("CART_IDLE_TTL", 30*time.Minute),
		}
	})
}

// App returns AppConfig, loading it on first use.
func App() *Config {
	LoadAppConfig()
	return AppConfig
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v >= 0 {
		return v
	}
	return def
}
