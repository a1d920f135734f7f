package main

import (
	"context"
	"net/http"
	"os"

	"timepass_server/config"
	"timepass_server/routes"
	"timepass_server/services"
	"timepass_server/socket"
	"timepass_server/store"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	var docStore store.Store
	switch cfg.StoreBackend {
	case config.BackendMemory:
		docStore = store.NewMemoryStore()
		log.Warn().Msg("using in-memory store; documents will not survive a restart")
	default:
		client, err := store.InitializeDynamoDBClient(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize DynamoDB client")
		}
		docStore = &store.DynamoStore{Client: client, TablePrefix: cfg.TablePrefix}
	}

	if cfg.RedisAddr != "" {
		docStore = &store.CachedStore{
			Client:   redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
			Internal: docStore,
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("document cache enabled")
	}

	userService := &services.UserService{Store: docStore}
	graphService := &services.GraphService{Store: docStore}
	postService := &services.PostService{Store: docStore}
	feedService := &services.FeedService{Store: docStore}
	storyService := &services.StoryService{Store: docStore}
	notificationService := &services.NotificationService{Store: docStore}
	chatService := &services.ChatService{Store: docStore}

	mediaService, err := services.NewMediaService(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize media service")
	}

	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error().Err(err).Msg("socket server stopped")
		}
	}()
	defer socketServer.Close()

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	routes.RegisterUserRoutes(r, userService, graphService)
	routes.RegisterPostRoutes(r, postService, graphService, feedService)
	routes.RegisterStoryRoutes(r, storyService, graphService)
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterNotificationRoutes(r, notificationService)
	routes.RegisterChatRoutes(r, chatService, socketServer)
	routes.RegisterMediaRoutes(r, mediaService)
	r.PathPrefix("/socket.io/").Handler(socketServer)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
