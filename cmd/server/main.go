package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"circles/internal/common/jwt"
	"circles/internal/common/middleware/mhttp"
	"circles/internal/common/session"
	"circles/internal/config"
	"circles/internal/logic"
	"circles/internal/model"
	"circles/internal/pkg/db"
	"circles/internal/pkg/log"
	"circles/internal/pkg/mpprof"
	"circles/internal/pkg/mprometheus"
	"circles/internal/pkg/mtrace"
	"circles/internal/pkg/redis"
	"circles/internal/pkg/utils"
	"circles/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var cfg = flag.String("c", "./config.yaml", "")

func main() {
	flag.Parse()

	c := config.ParseConfig(*cfg)

	log.InitLogger(c.Log)
	jwt.Init(c.JWT)
	mtrace.InitTelemetry(c.Trace)

	rdb := redis.NewRedis(c.Redis)
	defer rdb.Close()
	database := db.NewDB(c.DB)
	defer database.Close()

	if err := database.AutoMigrate(&model.Group{}, &model.JoinRequest{}, &model.User{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if c.Pprof {
		mpprof.RegisterPprof()
	}
	if c.Prometheus.Enable {
		mprometheus.GormPrometheus(&c.Prometheus, database.DB, string(c.DB.Driver))
		prometheus.MustRegister(mprometheus.RedisPrometheus(&c.Prometheus, rdb, "circles", "server"))
		http.Handle("/metrics", promhttp.Handler())
		utils.SafeGo(func() {
			err := http.ListenAndServe(c.Prometheus.Listen, nil)
			if err != nil {
				panic(err)
			}
		})
	}

	if c.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.RecoveryWithWriter(log.Output()))
	if c.Trace.Enable {
		engine.Use(mhttp.Trace())
	}
	api := engine.Group("/api")

	s := server.NewServer(database, session.NewRedisStore(rdb))
	if c.Seed {
		if err := s.Seed(context.Background()); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	groupApi := logic.NewGroupApi(s)
	groupApi.RegisterRouter(api)

	joinRequestApi := logic.NewJoinRequestApi(s)
	joinRequestApi.RegisterRouter(api)

	authApi := logic.NewAuthApi(s)
	authApi.RegisterRouter(api)

	if c.Addr == "" {
		c.Addr = "0.0.0.0:8080"
	}
	svc := http.Server{
		Addr:    c.Addr,
		Handler: engine,
	}

	done := make(chan struct{})
	signals := make(chan os.Signal, 1)

	go func() {
		svc.ListenAndServe()
		done <- struct{}{}
	}()

	log.Infof("server listening on %s", c.Addr)

	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-signals:
	case <-done:
	}

	log.Infof("server shutdown.")

	svc.Shutdown(context.TODO())
}
