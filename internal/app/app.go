package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Forbidden-Duck/ecommerce-backend/internal/config"
	httpx "github.com/Forbidden-Duck/ecommerce-backend/internal/http"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/handlers"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/middleware"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/infrastructure/audit"
)

// Run wires the container into a router and serves until the listener
// fails.
func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.RedisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	if err := EnsureAdmin(ctx, c.UserRepo, c.PasswordSvc, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}

	seedPolicies(c, log)

	auditLog := audit.NewZerologAuditLogger(log)

	authH := handlers.NewAuthHandlers(c.AuthSvc, auditLog, cfg.RefreshTTL, cfg.SecureCookie)
	userH := handlers.NewUserHandlers(c.UserSvc, auditLog)
	productH := handlers.NewProductHandlers(c.ProductSvc)
	cartH := handlers.NewCartHandlers(c.CartSvc, auditLog)
	orderH := handlers.NewOrderHandlers(c.OrderSvc)

	authMW := middleware.NewAuthMW(c.TokenSvc, c.TokenRepo)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, userH, productH, cartH, orderH, authMW, casbinMW)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default product-management policy set on an
// empty policy table. The write routes are admin only; reads are open to
// every authenticated user and bypass the enforcer entirely.
func seedPolicies(c *Container, log zerolog.Logger) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/api/product", "POST")
	c.Casbin.E.AddPolicy("role_admin", "/api/product/:productid", "(PUT|DELETE)")
	if err := c.Casbin.E.SavePolicy(); err != nil {
		log.Warn().Err(err).Msg("casbin: failed to save seeded policies")
		return
	}
	log.Info().Msg("casbin: seeded default policies")
}
