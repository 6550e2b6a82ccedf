package routes

import (
	"time"

	"github.com/rajib3777/academia/api/handler"
	"github.com/rajib3777/academia/api/middleware"
	"github.com/rajib3777/academia/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	OTP            *handler.OTPHandler
	Account        *handler.AccountHandler
	SMSHistory     *handler.SMSHistoryHandler
	AuthMiddleware middleware.AuthMiddleware
	OTPRate        *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(e *echo.Echo, otpHandler *handler.OTPHandler, accountHandler *handler.AccountHandler, smsHandler *handler.SMSHistoryHandler, authMiddleware middleware.AuthMiddleware) *Router {
	return &Router{
		Echo:           e,
		OTP:            otpHandler,
		Account:        accountHandler,
		SMSHistory:     smsHandler,
		AuthMiddleware: authMiddleware,
		OTPRate:        middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	api := r.Echo.Group("/api")

	// Phone verification runs before any account exists, so no auth here.
	api.POST("/send-otp/", r.OTP.SendOTP, r.OTPRate.Middleware())
	api.POST("/verify-otp/", r.OTP.VerifyOTP, r.OTPRate.Middleware())

	api.POST("/register/", r.Account.Register, r.OTPRate.Middleware())
	api.POST("/login/", r.Account.Login, r.LoginRate.Middleware())

	api.GET("/me/", r.Account.Me, r.AuthMiddleware.RequireAuth)
	api.GET("/users/", r.Account.ListUsers, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
	api.GET("/sms-history/", r.SMSHistory.ListByPhone, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
}
