package app

import (
	"hireflow/config"
	"hireflow/internal/services"
	"hireflow/internal/storage"
	"hireflow/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	UserRepo        storage.UserRepository
	JobRepo         storage.JobRepository
	ApplicationRepo storage.ApplicationRepository

	AuthService        services.AuthService
	UserService        services.UserService
	JobService         services.JobService
	ApplicationService services.ApplicationService
}

// NewApplication wires repositories and services on top of the shared
// connection pool. The Redis client may be nil; job caching is then
// disabled.
func NewApplication(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	userRepo := postgres.NewUserRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)

	return &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		UserRepo:        userRepo,
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,

		AuthService:        services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, applicationRepo, redisClient),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, redisClient),
	}
}
