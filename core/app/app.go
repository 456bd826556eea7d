// Package app assembles the storefront from configuration: database, catalog, cart storage,
// notification broker, services and the echo server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront.GO/api"
	_ "storefront.GO/api/cart"
	_ "storefront.GO/api/catalog"
	_ "storefront.GO/api/contact"
	_ "storefront.GO/api/graphql"
	_ "storefront.GO/api/realtime"
	"storefront.GO/cart"
	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/core/events"
	"storefront.GO/core/storage"
	"storefront.GO/service/checkout"
	"storefront.GO/service/contact"
)

const (
	DriverMemory = "memory"
	DriverDB     = "db"
	DriverRedis  = "redis"
)

// App is one assembled storefront process.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	Redis    *redis.Client
	Catalog  *catalog.Catalog
	Storage  storage.Storage
	Bus      *events.Bus
	Relay    *events.Relay
	Carts    *cart.Sessions
	Checkout *checkout.Service
	Contact  *contact.Service

	memory *storage.Memory
}

// Options override the process-wide connections; zero fields are opened from config.
type Options struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// New wires the storefront. The database is only opened when the catalog source or the
// storage driver needs it; Redis only when REDIS_ADDR is set or a client is given.
func New(cfg *config.Config, log *zap.Logger, opts Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log, DB: opts.DB, Redis: opts.Redis, Bus: events.NewBus()}

	if a.DB == nil && (cfg.CatalogSource == DriverDB || cfg.StorageDriver == DriverDB) {
		db, err := config.NewDB()
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.DB = db
	}
	if a.Redis == nil {
		config.InitRedis()
		if config.PingRedis() {
			a.Redis = config.RedisClient
			log.Info("redis connection successful")
		}
	}

	cat, err := catalog.Load(cfg.CatalogSource, a.DB)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.Catalog = cat
	log.Info("catalog loaded", zap.String("source", cfg.CatalogSource), zap.Int("products", cat.Len()))

	if err := a.openStorage(); err != nil {
		return nil, err
	}

	var broker events.Broker = a.Bus
	if a.Redis != nil {
		a.Relay = events.NewRelay(a.Redis, a.Bus, events.DefaultChannel, log.Named("relay"))
		broker = a.Relay
	}
	a.Carts = cart.NewSessions(a.Storage, broker, log.Named("cart"))
	a.Checkout = checkout.NewService(cfg.SubmitDelay, log.Named("checkout"))
	a.Contact = contact.NewService(cfg.SubmitDelay, uuid.NewString, log.Named("contact"))
	return a, nil
}

func (a *App) openStorage() error {
	switch a.Config.StorageDriver {
	case DriverDB:
		st, err := storage.NewDB(a.DB)
		if err != nil {
			return fmt.Errorf("storage db: %w", err)
		}
		a.Storage = st
	case DriverRedis:
		if a.Redis == nil {
			return errors.New("storage redis: REDIS_ADDR not set or not reachable")
		}
		a.Storage = storage.NewRedis(a.Redis, "storefront:")
	default:
		a.memory = storage.NewMemory()
		if path := a.Config.StorageDump; path != "" {
			if err := a.memory.RestoreFromFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				a.Log.Warn("storage restore failed", zap.String("file", path), zap.Error(err))
			}
		}
		a.Storage = a.memory
	}
	a.Log.Info("cart storage", zap.String("driver", a.Config.StorageDriver))
	return nil
}

// Deps is what the api modules are applied with.
func (a *App) Deps() *api.Deps {
	return &api.Deps{
		DB:       a.DB,
		Catalog:  a.Catalog,
		Carts:    a.Carts,
		Checkout: a.Checkout,
		Contact:  a.Contact,
		PageSize: a.Config.PageSize,
		Log:      a.Log,
	}
}

// Echo builds the HTTP server: /api modules, root routes and /health.
func (a *App) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(requestDuration(a.Log))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":   "ok",
			"products": a.Catalog.Len(),
			"sessions": a.Carts.Len(),
			"storage":  a.Config.StorageDriver,
			"relay":    a.Relay != nil,
		})
	})

	d := a.Deps()
	api.ApplyModules(e.Group("/api"), d)
	api.ApplyRoutes(e, d)
	return e
}

func requestDuration(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
			})
			err := next(c)
			log.Debug("request",
				zap.String("path", c.Path()),
				zap.Duration("duration", time.Since(start)))
			return err
		}
	}
}

// RunRelay forwards remote cart notifications until ctx is done. Without Redis it just waits.
func (a *App) RunRelay(ctx context.Context) error {
	if a.Relay == nil {
		<-ctx.Done()
		return nil
	}
	return a.Relay.Run(ctx)
}

// EvictEvery is how often idle cart stores are swept.
const EvictEvery = "@every 1m"

// Schedule adds the application's maintenance jobs to c.
func (a *App) Schedule(c *cron.Cron) error {
	ttl := a.Config.CartIdleTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	_, err := c.AddFunc(EvictEvery, func() { a.Carts.Evict(ttl) })
	if err != nil {
		return fmt.Errorf("schedule cart eviction: %w", err)
	}
	return nil
}

// Close detaches the cart stores and dumps memory storage when STORAGE_DUMP is set.
func (a *App) Close() error {
	a.Carts.Close()
	if a.memory != nil && a.Config.StorageDump != "" {
		if err := a.memory.DumpToFile(a.Config.StorageDump); err != nil {
			return fmt.Errorf("storage dump: %w", err)
		}
		a.Log.Info("storage dumped", zap.String("file", a.Config.StorageDump))
	}
	return nil
}
