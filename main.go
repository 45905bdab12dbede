package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"
	"golang.org/x/time/rate"

	"github.com/pitwall/pitwallapi/config"
	"github.com/pitwall/pitwallapi/db"
	"github.com/pitwall/pitwallapi/handlers"
	applog "github.com/pitwall/pitwallapi/logger"
	mw "github.com/pitwall/pitwallapi/middleware"
	"github.com/pitwall/pitwallapi/repository"
	"github.com/pitwall/pitwallapi/services"
	"github.com/pitwall/pitwallapi/token"
)

// jsonSerializer swaps Echo's default encoding/json for goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v",
				ute.Type, ute.Value, ute.Field, ute.Offset)).SetInternal(err)
	} else if se, ok := err.(*json.SyntaxError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Syntax error: offset=%v, error=%v", se.Offset, se.Error())).SetInternal(err)
	}
	return err
}

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	events := repository.NewEventRepository(bdb)
	results := repository.NewResultRepository(bdb)
	users := repository.NewUserRepository(bdb)
	prefs := repository.NewPreferenceRepository(bdb)

	h := &handlers.Handler{
		Series:   services.NewSeriesService(repository.NewSeriesRepository(bdb)),
		Calendar: services.NewCalendarService(events, repository.NewSeasonRepository(bdb)),
		Events: services.NewEventService(
			events,
			repository.NewSessionRepository(bdb),
			results,
			repository.NewTelemetryRepository(bdb),
		),
		Drivers:   services.NewDriverService(repository.NewDriverRepository(bdb), results),
		Teams:     services.NewTeamService(repository.NewTeamRepository(bdb)),
		Standings: services.NewStandingsService(repository.NewStandingRepository(bdb)),
		Feed:      services.NewFeedService(repository.NewFeedRepository(bdb)),
		Auth:      services.NewAuthService(users, prefs, cfg.JWTKey(), token.DefaultTTL),
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = handlers.NewErrorHandler(logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))
	e.Use(mw.Metrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Brute-force protection for credential endpoints only.
	rl := mw.NewRateLimiter(rate.Every(time.Second), 10, 5*time.Minute)
	defer rl.Stop()

	api := e.Group("/api")

	api.GET("/series", h.ListSeries)
	api.GET("/series/:slug", h.GetSeries)
	api.GET("/series/:slug/standings", h.DriverStandings)
	api.GET("/series/:slug/constructors", h.ConstructorStandings)
	api.GET("/series/:slug/classes", h.StandingClasses)
	api.GET("/series/:slug/drivers", h.SeriesDrivers)

	api.GET("/calendar", h.GetCalendar)
	api.GET("/calendar/seasons", h.Seasons)
	api.GET("/calendar/range", h.CalendarRange)
	api.GET("/calendar/:series", h.SeriesCalendar)

	api.GET("/events/:slug", h.GetEvent)
	api.GET("/events/:slug/results", h.EventResults)
	api.GET("/events/:slug/result-classes", h.EventResultClasses)
	api.GET("/events/:slug/telemetry", h.EventTelemetry)

	api.GET("/drivers/:slug", h.GetDriver)
	api.GET("/drivers/:slug/results", h.DriverResults)
	api.GET("/teams/:seriesSlug", h.TeamsBySeries)

	api.GET("/feed", h.GetFeed)

	auth := api.Group("/auth", rl.Middleware())
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	// Protected – require valid JWT in Authorization header
	me := api.Group("", mw.JWT(cfg.JWTKey()))
	me.GET("/feed/personalized", h.PersonalizedFeed)
	me.GET("/users/me/preferences", h.GetPreferences)
	me.PUT("/users/me/preferences", h.UpdatePreferences)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
