package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	apii "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	operatorTokenTTL = 24 * time.Hour
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	mazeService    i.MazeGenerator
	mazeController apii.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	clientOptions := options.Client().ApplyURI(config.Envs.MongoURI)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(ctx context.Context) {
	if config.Envs.MongoURI == "" {
		mazeRepo = repo.NewMemoryMazeRepo()
		appLogger.Warn("MONGO_URI not set, archiving mazes in memory")
		return
	}

	initMongo(ctx)
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initMazeCache(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warn("REDIS_ADDR not set, maze cache disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, "vinom-maze", config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze cache initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(mazeRepo, serviceLogger, &service.Options{Cache: mazeCache})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, newRenderer())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.MustJWTSecret(), config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []apii.Controller{mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func serve() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMazeRepo(ctx)
	if mongoClient != nil {
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
	}

	initMazeCache(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func issueToken(subject string) {
	initJWTTokenizer()
	t, err := jwtTokenizer.Issue(subject, operatorTokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Issuing token: %v", err))
		os.Exit(1)
	}
	fmt.Println(t)
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	args := os.Args[1:]
	switch {
	case len(args) == 1 && args[0] == "serve":
		serve()
	case len(args) == 2 && args[0] == "token":
		issueToken(args[1])
	default:
		os.Exit(runGenerate(os.Args[0], args, os.Stdout, os.Stderr))
	}
}
