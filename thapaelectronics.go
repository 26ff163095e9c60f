//go:build !cli
// +build !cli

package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/programmer-santosh-main/thapaelectronics/api"
	_ "github.com/programmer-santosh-main/thapaelectronics/api/auth"
	_ "github.com/programmer-santosh-main/thapaelectronics/api/cart"
	_ "github.com/programmer-santosh-main/thapaelectronics/api/catalog"
	_ "github.com/programmer-santosh-main/thapaelectronics/api/graphql"
	_ "github.com/programmer-santosh-main/thapaelectronics/api/seo"
	"github.com/programmer-santosh-main/thapaelectronics/config"
	coreAuth "github.com/programmer-santosh-main/thapaelectronics/core/auth"
	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	"github.com/programmer-santosh-main/thapaelectronics/html"
	sessionRepo "github.com/programmer-santosh-main/thapaelectronics/model/repository/session"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
	seoService "github.com/programmer-santosh-main/thapaelectronics/service/seo"
)

// newSessionStore picks the session store backend: redis when reachable,
// the database otherwise, plain memory when STORE_BACKEND=memory.
func newSessionStore() kvstore.Store {
	if os.Getenv("STORE_BACKEND") == "memory" {
		log.Println("Session store: memory")
		return kvstore.NewMemory()
	}
	if config.RedisClient != nil {
		log.Println("Session store: redis")
		return kvstore.NewRedis(config.RedisClient)
	}
	db, err := config.NewDB()
	if err != nil {
		log.Printf("Session store: db unavailable (%v), falling back to memory", err)
		return kvstore.NewMemory()
	}
	repo, err := sessionRepo.NewRepository(db)
	if err != nil {
		log.Printf("Session store: migration failed (%v), falling back to memory", err)
		return kvstore.NewMemory()
	}
	log.Println("Session store: database")
	return repo
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, session caching in fallback store."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, falling back."
		}
	}
	log.Println(redisStatus)

	store := newSessionStore()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	// Register the template renderer
	e.Renderer = html.NewRenderer()

	deps := &api.Deps{
		Store:      store,
		Catalog:    catalogService.GetClient(),
		SEO:        seoService.GetService(),
		BackendURL: config.AppConfig.BackendURL,
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(coreAuth.Middleware())
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Thapa Electronics", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println("Electronics storefront")

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
