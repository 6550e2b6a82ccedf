package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rajib3777/academia/api/handler"
	apiMiddleware "github.com/rajib3777/academia/api/middleware"
	"github.com/rajib3777/academia/api/routes"
	"github.com/rajib3777/academia/config"
	"github.com/rajib3777/academia/internal/cache"
	"github.com/rajib3777/academia/internal/entity"
	"github.com/rajib3777/academia/internal/repository"
	"github.com/rajib3777/academia/internal/service"
	"github.com/rajib3777/academia/internal/utils"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectionDb(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	validate := handler.NewValidator()

	jwtManager := utils.JWTManager{
		Secret:          []byte(cfg.JWTSecret),
		Issuer:          cfg.JWTIssuer,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}

	otpRepo := repository.NewOTPRepository(db)
	historyRepo := repository.NewSMSHistoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	gateway := service.NewBulkSMSClient(cfg.SMS.GatewayURL, cfg.SMS.APIKey, cfg.SMS.SenderID)
	smsService := service.NewSMSService(historyRepo, gateway, logger)
	otpService := service.NewOTPService(otpRepo, smsService, service.RealClock{}, service.OTPConfig{
		TTL:        cfg.OTP.TTL,
		CodeLength: cfg.OTP.CodeLength,
	})

	var roleCache cache.RoleCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		roleCache = cache.NewRedisRoleCache(rdb, cfg.Redis.TTL)
	}

	accountService := service.NewAccountService(
		userRepo,
		roleRepo,
		roleCache,
		otpService,
		service.BcryptPasswordHasher{},
		jwtManager,
	)

	seedRoles(db, logger)

	otpHandler := handler.NewOTPHandler(otpService, validate)
	otpHandler.Logger = logger
	accountHandler := handler.NewAccountHandler(accountService, validate)
	smsHandler := handler.NewSMSHistoryHandler(smsService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Users: userRepo}
	router := routes.NewRouter(app, otpHandler, accountHandler, smsHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// seedRoles makes sure the fixed role set exists.
func seedRoles(db *gorm.DB, logger *logrus.Logger) {
	for _, name := range []entity.RoleName{
		entity.RoleAdmin, entity.RoleTeacher, entity.RoleStudent, entity.RoleStaff, entity.RoleAcademy,
	} {
		var role entity.Role
		err := db.FirstOrCreate(&role, entity.Role{Name: name}).Error
		if err != nil {
			logger.WithError(err).WithField("role", name).Warn("failed to seed role")
		}
	}
}
