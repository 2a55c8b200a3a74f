package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mandinga/gateway/base/ctx"
	"github.com/mandinga/gateway/base/database/redisclient"
	"github.com/mandinga/gateway/base/env"
	"github.com/mandinga/gateway/base/goroutine"
	"github.com/mandinga/gateway/base/log"
	bValidator "github.com/mandinga/gateway/base/validator"
	"github.com/mandinga/gateway/domain/records"
	mmiddleware "github.com/mandinga/gateway/middleware"
	auth_middleware "github.com/mandinga/gateway/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mandinga/gateway/stores/auth/usecase"
	gateway_delivery "github.com/mandinga/gateway/stores/gateway/delivery/http"
	gateway_usecase "github.com/mandinga/gateway/stores/gateway/usecase"
	hc_delivery "github.com/mandinga/gateway/stores/healthcheck/delivery/http"
	hc_usecase "github.com/mandinga/gateway/stores/healthcheck/usecase"
	records_delivery "github.com/mandinga/gateway/stores/records/delivery/http"
	records_repository "github.com/mandinga/gateway/stores/records/repository"
	records_usecase "github.com/mandinga/gateway/stores/records/usecase"
)

var (
	configFile    = pflag.String("config", "", "path of a yaml config file, environment variables are used when empty")
	issueToken    = pflag.String("issue-admin-token", "", "print an admin bearer token for the given subject and exit")
	issueTokenTtl = pflag.Duration("admin-token-ttl", 24*time.Hour, "lifetime of the token printed by --issue-admin-token")
)

var envBindings = map[string][]string{
	"server.address":             {"GATEWAY_ADDRESS"},
	"gateway.signerPrivateKey":   {"GATEWAY_SIGNER_PRIVATE_KEY"},
	"gateway.ttlSeconds":         {"GATEWAY_TTL_SECONDS"},
	"gateway.allowedOrigins":     {"GATEWAY_ALLOWED_ORIGINS"},
	"gateway.resultCacheTtl":     {"GATEWAY_RESULT_CACHE_TTL"},
	"gateway.resultCacheSizeMB":  {"GATEWAY_RESULT_CACHE_SIZE_MB"},
	"records.backend":            {"GATEWAY_RECORDS_BACKEND"},
	"records.path":               {"GATEWAY_RECORDS_PATH"},
	"records.ensDomain":          {"GATEWAY_ENS_DOMAIN"},
	"records.chainId":            {"GATEWAY_CHAIN_ID"},
	"records.defaultDescription": {"GATEWAY_DEFAULT_DESCRIPTION"},
	"records.defaultUrl":         {"GATEWAY_DEFAULT_URL"},
	"redis.uri":                  {"GATEWAY_REDIS_URI"},
	"redis.password":             {"GATEWAY_REDIS_PASSWORD"},
	"redis.key":                  {"GATEWAY_REDIS_KEY"},
	"admin.jwtSecret":            {"GATEWAY_ADMIN_JWT_SECRET"},
	"datadog_host":               {"DATADOG_HOST"},
	"env_name":                   {"ENV_NAME"},
	"app_name":                   {"APP_NAME"},
	"debug":                      {"GATEWAY_DEBUG"},
}

func init() {
	pflag.Parse()

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("gateway.ttlSeconds", "300")
	viper.SetDefault("gateway.resultCacheTtl", "0s")
	viper.SetDefault("gateway.resultCacheSizeMB", 16)
	viper.SetDefault("records.backend", "file")
	viper.SetDefault("records.path", "./records.json")
	viper.SetDefault("records.ensDomain", records_usecase.DefaultDomain)
	viper.SetDefault("records.chainId", records_usecase.DefaultChainId)
	viper.SetDefault("records.defaultDescription", records_usecase.DefaultDescription)
	viper.SetDefault("records.defaultUrl", records_usecase.DefaultUrl)
	viper.SetDefault("redis.uri", "localhost:6379")
	viper.SetDefault("redis.key", "gateway:records")
	viper.SetDefault("app_name", "gateway")

	for key, envs := range envBindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			panic(err)
		}
	}

	if *configFile != "" {
		viper.SetConfigType("yaml")
		viper.SetConfigFile(*configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	if port := env.Port(); port != "" {
		viper.Set("server.address", ":"+port)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	context := ctx.Background()
	defer log.Sync()

	if *issueToken != "" {
		tkn, err := auth_usecase.New(viper.GetString("admin.jwtSecret")).SignToken(context, *issueToken, *issueTokenTtl)
		if err != nil {
			context.WithField("err", err).Panic("issue admin token failed")
		}
		fmt.Println(tkn)
		return
	}

	ttlSeconds, err := strconv.ParseInt(strings.TrimSpace(viper.GetString("gateway.ttlSeconds")), 10, 64)
	if err != nil || ttlSeconds <= 0 {
		context.WithFields(log.Fields{
			"ttlSeconds": viper.GetString("gateway.ttlSeconds"),
			"err":        err,
		}).Panic("gateway.ttlSeconds must be a positive integer")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	middL := mmiddleware.InitMiddleware(splitList(viper.GetString("gateway.allowedOrigins")))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	recordsRepo := newRecordsRepo(context)

	gatewayUsecase, err := gateway_usecase.New(&gateway_usecase.GatewayCfg{
		PrivateKey:        viper.GetString("gateway.signerPrivateKey"),
		TTLSeconds:        ttlSeconds,
		Repo:              recordsRepo,
		ResultCacheTtl:    viper.GetDuration("gateway.resultCacheTtl"),
		ResultCacheSizeMB: viper.GetInt("gateway.resultCacheSizeMB"),
	})
	if err != nil {
		context.WithField("err", err).Panic("gateway_usecase.New failed")
	}
	recordsUsecase, err := records_usecase.New(&records_usecase.RecordsUseCaseCfg{
		Repo:               recordsRepo,
		Invalidator:        gatewayUsecase,
		Domain:             viper.GetString("records.ensDomain"),
		ChainId:            viper.GetUint64("records.chainId"),
		DefaultDescription: viper.GetString("records.defaultDescription"),
		DefaultUrl:         viper.GetString("records.defaultUrl"),
	})
	if err != nil {
		context.WithField("err", err).Panic("records_usecase.New failed")
	}
	hc := hc_usecase.New(recordsRepo)

	adminAuth := []echo.MiddlewareFunc{}
	if secret := viper.GetString("admin.jwtSecret"); secret != "" {
		adminAuth = append(adminAuth, auth_middleware.New(auth_usecase.New(secret)).Auth())
	} else {
		context.Warn("admin.jwtSecret is empty, /records/vault is unauthenticated")
	}

	hc_delivery.New(e, hc)
	gateway_delivery.New(e, gatewayUsecase)
	records_delivery.New(e, recordsUsecase, adminAuth...)

	serverErr := goroutine.Run("http-server", func() error {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case err := <-serverErr:
		log.Log().WithField("err", err).Error("server stopped")
	}
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func newRecordsRepo(context ctx.Ctx) records.Repository {
	switch backend := viper.GetString("records.backend"); backend {
	case "file":
		path := viper.GetString("records.path")
		context.WithField("path", path).Info("init records file")
		return records_repository.NewFile(path)
	case "redis":
		context.Info("init records redis")
		pool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
			MaxIdle:   4,
			MaxActive: 16,
			Retries:   2,
		})
		return records_repository.NewRedis(pool, viper.GetString("redis.key"))
	default:
		context.WithField("backend", backend).Panic("unknown records.backend")
	}
	return nil
}

func splitList(s string) []string {
	res := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
