package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Attendance   AttendanceConfig
	FaceService  FaceServiceConfig
	Redis        RedisConfig
	Storage      StorageConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig tunes the check-in decision pipeline.
type AttendanceConfig struct {
	CodeLength        int
	SessionTTL        time.Duration
	FaceThreshold     float64
	GeofenceEnabled   bool
	GeofenceLatitude  float64
	GeofenceLongitude float64
	GeofenceRadiusM   float64
	LivenessEnabled   bool
	LivenessMin       int
}

type FaceServiceConfig struct {
	URL     string
	Timeout time.Duration
	Skip    bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	VerifyLimit  int
	VerifyWindow time.Duration
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	// AllowedDomain restricts login to one campus Workspace domain,
	// e.g. "campus.ac.id". Empty disables the restriction.
	AllowedDomain string
}

func Load() (*Config, error) {
	// Missing .env is fine in containers where the env is injected
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "campus-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	codeLength, err := strconv.Atoi(getEnv("ATTENDANCE_CODE_LENGTH", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_CODE_LENGTH: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("ATTENDANCE_SESSION_TTL", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SESSION_TTL: %w", err)
	}

	faceThreshold, err := strconv.ParseFloat(getEnv("ATTENDANCE_FACE_THRESHOLD", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_FACE_THRESHOLD: %w", err)
	}

	geofenceLat, err := strconv.ParseFloat(getEnv("GEOFENCE_LATITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_LATITUDE: %w", err)
	}

	geofenceLng, err := strconv.ParseFloat(getEnv("GEOFENCE_LONGITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_LONGITUDE: %w", err)
	}

	geofenceRadius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_M", "500"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_M: %w", err)
	}

	livenessMin, err := strconv.Atoi(getEnv("LIVENESS_MIN_CHALLENGES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LIVENESS_MIN_CHALLENGES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		CodeLength:        codeLength,
		SessionTTL:        sessionTTL,
		FaceThreshold:     faceThreshold,
		GeofenceEnabled:   getEnv("GEOFENCE_ENABLED", "true") == "true",
		GeofenceLatitude:  geofenceLat,
		GeofenceLongitude: geofenceLng,
		GeofenceRadiusM:   geofenceRadius,
		LivenessEnabled:   getEnv("LIVENESS_ENABLED", "true") == "true",
		LivenessMin:       livenessMin,
	}

	faceTimeout, err := time.ParseDuration(getEnv("FACE_SERVICE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_SERVICE_TIMEOUT: %w", err)
	}

	config.FaceService = FaceServiceConfig{
		URL:     getEnv("FACE_SERVICE_URL", "http://localhost:5000"),
		Timeout: faceTimeout,
		Skip:    getEnv("FACE_SERVICE_SKIP", "false") == "true",
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	verifyLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_VERIFY_CODE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_VERIFY_CODE: %w", err)
	}

	verifyWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_VERIFY_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_VERIFY_WINDOW: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
		Password:     getEnv("REDIS_PASSWORD", ""),
		DB:           redisDB,
		VerifyLimit:  verifyLimit,
		VerifyWindow: verifyWindow,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:      getEnv("CLIENT_ID", ""),
		ClientSecret:  getEnv("CLIENT_SECRET", ""),
		RedirectURL:   getEnv("REDIRECT_URL", ""),
		Scopes:        getEnvSlice("SCOPES"),
		AllowedDomain: getEnv("OAUTH_ALLOWED_DOMAIN", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.CodeLength < 4 {
		return fmt.Errorf("ATTENDANCE_CODE_LENGTH must be at least 4")
	}
	if c.Attendance.SessionTTL <= 0 {
		return fmt.Errorf("ATTENDANCE_SESSION_TTL must be positive")
	}
	if c.Attendance.FaceThreshold <= 0 || c.Attendance.FaceThreshold > 1 {
		return fmt.Errorf("ATTENDANCE_FACE_THRESHOLD must be in (0, 1]")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
