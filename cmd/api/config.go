package main

import (
	"fmt"
	"marquee/internal/ratelimiter"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type config struct {
	addr        string
	env         string
	apiURL      string
	db          dbConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
	media       mediaConfig
	dashboard   dashboardConfig
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime time.Duration
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret        string
	refreshSecret string
	iss           string
}

type basicConfig struct {
	user string
	pass string
}

type mediaConfig struct {
	cloudinaryURL string
}

type dashboardConfig struct {
	locale language.Tag
}

// envConfig is the raw environment. loadConfig maps it onto config.
type envConfig struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Env         string `env:"ENV" envDefault:"development"`
	ExternalURL string `env:"EXTERNAL_URL" envDefault:"localhost:8080"`

	DBAddr        string        `env:"DB_ADDR,required"`
	DBMaxConns    int32         `env:"DB_MAX_CONNS" envDefault:"30"`
	DBMaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"15m"`

	BasicUser          string `env:"AUTH_BASIC_USER" envDefault:"admin"`
	BasicPass          string `env:"AUTH_BASIC_PASS"`
	TokenSecret        string `env:"AUTH_TOKEN_SECRET,required"`
	TokenRefreshSecret string `env:"AUTH_TOKEN_REFRESH_SECRET,required"`
	TokenIssuer        string `env:"AUTH_TOKEN_ISS" envDefault:"marquee"`

	RateLimitRequests  int           `env:"RATELIMITER_REQUESTS_COUNT" envDefault:"200"`
	RateLimitEnabled   bool          `env:"RATE_LIMITER_ENABLED" envDefault:"false"`
	RateLimitTimeFrame time.Duration `env:"RATELIMITER_TIMEFRAME" envDefault:"5s"`

	CloudinaryURL string `env:"CLOUDINARY_URL"`
	Locale        string `env:"DASHBOARD_LOCALE" envDefault:"en-US"`
}

// loadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func loadConfig(files ...string) (config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return config{}, fmt.Errorf("load env file: %w", err)
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	locale, err := language.Parse(e.Locale)
	if err != nil {
		return config{}, fmt.Errorf("invalid DASHBOARD_LOCALE %q: %w", e.Locale, err)
	}

	return config{
		addr:   e.Addr,
		env:    e.Env,
		apiURL: e.ExternalURL,
		db: dbConfig{
			addr:        e.DBAddr,
			maxConns:    e.DBMaxConns,
			maxIdleTime: e.DBMaxIdleTime,
		},
		auth: authConfig{
			basic: basicConfig{
				user: e.BasicUser,
				pass: e.BasicPass,
			},
			token: tokenConfig{
				secret:        e.TokenSecret,
				refreshSecret: e.TokenRefreshSecret,
				iss:           e.TokenIssuer,
			},
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: e.RateLimitRequests,
			TimeFrame:            e.RateLimitTimeFrame,
			Enabled:              e.RateLimitEnabled,
		},
		media: mediaConfig{
			cloudinaryURL: e.CloudinaryURL,
		},
		dashboard: dashboardConfig{
			locale: locale,
		},
	}, nil
}
