package di

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"mm-server/api"
	"mm-server/api/matrimony"
	"mm-server/config"
	"mm-server/dao/redis"
	"mm-server/db"
	"mm-server/server"
	"mm-server/server/handlers"
	services "mm-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	SessionDao            *redis.RedisSessionDao
	MatrimonyAPI          matrimony.MatrimonyAPI
	AuthService           *services.AuthService
	SearchService         *services.SearchService
	ProfileService        *services.ProfileService
	StatsRefresherService *services.StatsRefresherService
	AuthHandler           *handlers.AuthHandler
	SearchHandler         *handlers.SearchHandler
	ProfileHandler        *handlers.ProfileHandler
	DashboardHandler      *handlers.DashboardHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	MatrimonyHttpServer   *server.MatrimonyHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	slog.Info("initializing container", "env", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewSessionRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	sessionDao := redis.NewRedisSessionDao(redisClient)

	// Anything but prod talks to canned fixtures instead of the live backend.
	var matrimonyAPI matrimony.MatrimonyAPI
	if env != "prod" {
		slog.Info("using mock matrimony api")
		matrimonyAPI = matrimony.NewMatrimonyApiClientMock()
	} else {
		slog.Info("using prod matrimony api", "base", config.MatrimonyEndpointBase())
		httpClient := api.NewHTTPClient(config.MatrimonyEndpointBase())
		matrimonyAPI = matrimony.NewMatrimonyApiClient(httpClient)
	}

	authService := services.NewAuthService(matrimonyAPI, sessionDao)
	searchService := services.NewSearchService(matrimonyAPI, sessionDao)
	profileService := services.NewProfileService(matrimonyAPI, sessionDao)
	statsRefresherService := services.NewStatsRefresherService(profileService, sessionDao)

	authHandler := handlers.NewAuthHandler(authService)
	searchHandler := handlers.NewSearchHandler(searchService, authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	dashboardHandler := handlers.NewDashboardHandler(profileService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(authHandler, searchHandler, profileHandler, dashboardHandler, muxRouter)
	matrimonyHttpServer := server.NewMatrimonyHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		SessionDao:            sessionDao,
		MatrimonyAPI:          matrimonyAPI,
		AuthService:           authService,
		SearchService:         searchService,
		ProfileService:        profileService,
		StatsRefresherService: statsRefresherService,
		AuthHandler:           authHandler,
		SearchHandler:         searchHandler,
		ProfileHandler:        profileHandler,
		DashboardHandler:      dashboardHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		MatrimonyHttpServer:   matrimonyHttpServer,
	}
}
