package main

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/veritas-legal/lexaid-core-api/biz/infra/config"
	"github.com/veritas-legal/lexaid-core-api/biz/router"
	"github.com/veritas-legal/lexaid-core-api/pkg/logs"
	"github.com/veritas-legal/lexaid-core-api/provider"
)

func main() {
	c, err := config.NewConfig()
	if err != nil {
		panic(err)
	}
	provider.Init()

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.MetricsOn, "/metrics")),
	)
	h.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	router.Register(h)

	logs.Infof("lexaid-core-api listening on %s", c.ListenOn)
	h.Spin()
}
