package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	SMTP      SMTPConfig
	OAuth     OAuthConfig
	Org       OrgConfig
	Render    RenderConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type StorageConfig struct {
	Path          string
	UploadMaxSize int64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	From        string
	FrontendURL string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendSuccessURL string
	FrontendErrorURL   string
}

// OrgConfig holds the organization identity printed on receipts.
type OrgConfig struct {
	NameEnglish    string
	NameNepali     string
	AddressEnglish string
	AddressNepali  string
	Phone          string
	Email          string
	RegistrationNo string
	PANNumber      string
	LogoCaptionL   string
	LogoCaptionR   string
}

// RenderConfig controls the receipt rendering pipeline.
type RenderConfig struct {
	// Backend is "pdf" for the vector backend or "browser" for headless
	// Chrome. The pipeline falls back to the other backend on failure.
	Backend        string
	FontDir        string
	BrowserTimeout time.Duration
	IncludeLogos   bool
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "donation-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "donations")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kathmandu")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM_NAME", "Ashram Seva")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("OAUTH_FRONTEND_SUCCESS_URL", "http://localhost:3000/auth/callback")
	viper.SetDefault("OAUTH_FRONTEND_ERROR_URL", "http://localhost:3000/login")
	viper.SetDefault("ORG_NAME_EN", "Shree Ashram Seva Samiti")
	viper.SetDefault("ORG_NAME_NE", "श्री आश्रम सेवा समिति")
	viper.SetDefault("ORG_ADDRESS_EN", "Kathmandu, Nepal")
	viper.SetDefault("ORG_ADDRESS_NE", "काठमाडौँ, नेपाल")
	viper.SetDefault("RENDER_BACKEND", "pdf")
	viper.SetDefault("RENDER_FONT_DIR", "./assets/fonts")
	viper.SetDefault("RENDER_BROWSER_TIMEOUT_SECONDS", 20)
	viper.SetDefault("RENDER_INCLUDE_LOGOS", true)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Storage: StorageConfig{
			Path:          viper.GetString("STORAGE_PATH"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		SMTP: SMTPConfig{
			Host:        viper.GetString("SMTP_HOST"),
			Port:        viper.GetInt("SMTP_PORT"),
			Username:    viper.GetString("SMTP_USERNAME"),
			Password:    viper.GetString("SMTP_PASSWORD"),
			FromName:    viper.GetString("SMTP_FROM_NAME"),
			From:        viper.GetString("SMTP_FROM"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
			FrontendSuccessURL: viper.GetString("OAUTH_FRONTEND_SUCCESS_URL"),
			FrontendErrorURL:   viper.GetString("OAUTH_FRONTEND_ERROR_URL"),
		},
		Org: OrgConfig{
			NameEnglish:    viper.GetString("ORG_NAME_EN"),
			NameNepali:     viper.GetString("ORG_NAME_NE"),
			AddressEnglish: viper.GetString("ORG_ADDRESS_EN"),
			AddressNepali:  viper.GetString("ORG_ADDRESS_NE"),
			Phone:          viper.GetString("ORG_PHONE"),
			Email:          viper.GetString("ORG_EMAIL"),
			RegistrationNo: viper.GetString("ORG_REGISTRATION_NO"),
			PANNumber:      viper.GetString("ORG_PAN_NUMBER"),
			LogoCaptionL:   viper.GetString("ORG_LOGO_CAPTION_LEFT"),
			LogoCaptionR:   viper.GetString("ORG_LOGO_CAPTION_RIGHT"),
		},
		Render: RenderConfig{
			Backend:        viper.GetString("RENDER_BACKEND"),
			FontDir:        viper.GetString("RENDER_FONT_DIR"),
			BrowserTimeout: time.Duration(viper.GetInt("RENDER_BROWSER_TIMEOUT_SECONDS")) * time.Second,
			IncludeLogos:   viper.GetBool("RENDER_INCLUDE_LOGOS"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
