package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Log         LogConfig
	AWS         AWSConfig
	Campus      CampusConfig
	Wifi        WifiConfig
	Fingerprint FingerprintConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // console or json
}

// AWSConfig holds AWS/S3 configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
}

// CampusConfig holds the geofence anchor and radius
type CampusConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// WifiConfig holds the network allow-lists
type WifiConfig struct {
	SSIDAllowList   []string
	HotspotPrefixes []string
}

// FingerprintConfig holds the access point order and reference dataset location
type FingerprintConfig struct {
	APOrder     []string
	K           int
	DatasetPath string
	DatasetKey  string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("CAMPUS_LATITUDE", 30.681063)
	viper.SetDefault("CAMPUS_LONGITUDE", 76.669967)
	viper.SetDefault("CAMPUS_RADIUS_METERS", 350)
	viper.SetDefault("SSID_ALLOWLIST", "")
	viper.SetDefault("HOTSPOT_PREFIXES", "")
	viper.SetDefault("AP_ORDER", "AA:BB:CC:01,AA:BB:CC:02,AA:BB:CC:03,AA:BB:CC:04,AA:BB:CC:05")
	viper.SetDefault("KNN_K", 3)
	viper.SetDefault("FINGERPRINT_DATASET_PATH", "data/wifi_fingerprints.json")
	viper.SetDefault("FINGERPRINT_DATASET_S3_KEY", "")

	// Environment variables override .env file values
	viper.AutomaticEnv()

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	var config Config
	config.Database.URL = viper.GetString("DATABASE_URL")
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = splitList(viper.GetString("ALLOWED_ORIGINS"))
	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")
	config.AWS.Region = viper.GetString("AWS_REGION")
	config.AWS.AccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = viper.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = viper.GetString("S3_ENDPOINT")
	config.Campus.Latitude = viper.GetFloat64("CAMPUS_LATITUDE")
	config.Campus.Longitude = viper.GetFloat64("CAMPUS_LONGITUDE")
	config.Campus.RadiusMeters = viper.GetFloat64("CAMPUS_RADIUS_METERS")
	config.Wifi.SSIDAllowList = splitList(viper.GetString("SSID_ALLOWLIST"))
	config.Wifi.HotspotPrefixes = splitList(viper.GetString("HOTSPOT_PREFIXES"))
	config.Fingerprint.APOrder = splitList(viper.GetString("AP_ORDER"))
	config.Fingerprint.K = viper.GetInt("KNN_K")
	config.Fingerprint.DatasetPath = viper.GetString("FINGERPRINT_DATASET_PATH")
	config.Fingerprint.DatasetKey = viper.GetString("FINGERPRINT_DATASET_S3_KEY")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Float64("campus_lat", config.Campus.Latitude).
		Float64("campus_lon", config.Campus.Longitude).
		Float64("radius_m", config.Campus.RadiusMeters).
		Int("ssids", len(config.Wifi.SSIDAllowList)).
		Int("hotspot_prefixes", len(config.Wifi.HotspotPrefixes)).
		Int("access_points", len(config.Fingerprint.APOrder)).
		Int("k", config.Fingerprint.K).
		Msg("Configuration loaded")

	return &config, nil
}

// Validate checks the presence-verification settings
func (c *Config) Validate() error {
	if c.Campus.Latitude < -90 || c.Campus.Latitude > 90 {
		return fmt.Errorf("CAMPUS_LATITUDE %v out of range", c.Campus.Latitude)
	}
	if c.Campus.Longitude < -180 || c.Campus.Longitude > 180 {
		return fmt.Errorf("CAMPUS_LONGITUDE %v out of range", c.Campus.Longitude)
	}
	if c.Campus.RadiusMeters <= 0 {
		return fmt.Errorf("CAMPUS_RADIUS_METERS must be positive, got %v", c.Campus.RadiusMeters)
	}
	if c.Fingerprint.K < 1 {
		return fmt.Errorf("KNN_K must be at least 1, got %d", c.Fingerprint.K)
	}
	if len(c.Fingerprint.APOrder) == 0 {
		return fmt.Errorf("AP_ORDER must list at least one access point")
	}
	seen := make(map[string]bool, len(c.Fingerprint.APOrder))
	for _, ap := range c.Fingerprint.APOrder {
		key := strings.ToUpper(ap)
		if seen[key] {
			return fmt.Errorf("AP_ORDER lists %s twice", ap)
		}
		seen[key] = true
	}
	if c.Fingerprint.DatasetKey != "" && c.AWS.S3Bucket == "" {
		return fmt.Errorf("FINGERPRINT_DATASET_S3_KEY requires S3_BUCKET")
	}
	return nil
}

// splitList splits a comma-separated setting, trimming entries and dropping empty ones
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
