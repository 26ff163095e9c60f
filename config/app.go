package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName    string
	Port       string
	Env        string
	Debug      bool
	BackendURL string // remote product/auth/SEO API
	SiteURL    string // canonical base for SEO links
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		siteURL := os.Getenv("SITE_URL")
		if siteURL == "" {
			siteURL = "https://thapaelectronics.com.np"
		}
		AppConfig = &Config{
			AppName:    os.Getenv("APP_NAME"),
			Port:       os.Getenv("PORT"),
			Env:        os.Getenv("APP_ENV"),
			Debug:      os.Getenv("DEBUG") == "true",
			BackendURL: os.Getenv("BACKEND_URL"),
			SiteURL:    siteURL,
		}
	})
}
