package main

import (
	"context"
	"expvar"
	"log"
	"marquee/internal/auth"
	"marquee/internal/dashboard"
	"marquee/internal/db"
	"marquee/internal/domain/storage"
	"marquee/internal/media"
	"marquee/internal/ratelimiter"
	"marquee/internal/ui"
	"os"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a colored console zap logger.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)

	return zap.New(core).Sugar(), nil
}

var version = "0.4.0"

//	@title			Marquee API
//	@description	Dashboard API for the events and creators marketplace.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	logger, err := NewLogger()
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal(err)
	}

	// Database
	pool, err := db.New(context.Background(), db.Config{
		Addr:        cfg.db.addr,
		MaxConns:    cfg.db.maxConns,
		MaxIdleTime: cfg.db.maxIdleTime,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	// Avatars are optional: without Cloudinary the chat list shows none.
	var avatars dashboard.AvatarResolver
	if cfg.media.cloudinaryURL != "" {
		a, err := media.NewAvatars(cfg.media.cloudinaryURL, logger)
		if err != nil {
			logger.Fatal(err)
		}
		avatars = a
	} else {
		logger.Warn("CLOUDINARY_URL not set, avatars disabled")
	}

	renderer, err := ui.NewRenderer()
	if err != nil {
		logger.Fatal(err)
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
	)

	app := &application{
		config:        cfg,
		store:         store,
		logger:        logger,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		renderer:      renderer,
		avatars:       avatars,
		format:        dashboard.NewFormatter(cfg.dashboard.locale),
	}

	// Metrics collected at /v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return db.Stats(pool)
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}
