package main

import (
	"net/http"

	"go.uber.org/zap"

	"ismis-scheduler/internal/config"
	"ismis-scheduler/internal/crawler"
	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/server"
	"ismis-scheduler/internal/store"
	"ismis-scheduler/internal/task"
	"ismis-scheduler/internal/websocket"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.NewFromEnv()

	datasets, err := store.New(cfg.DataDir)
	if err != nil {
		logger.Fatal("cannot open dataset store", zap.Error(err))
	}

	var scraper task.Scraper = crawler.Unconfigured{}
	if len(cfg.CrawlerCmd) > 0 {
		scraper = crawler.NewExecScraper(cfg.CrawlerCmd[0], cfg.CrawlerCmd[1:], logger)
	} else {
		logger.Warn("no crawler configured, scrape requests will fail")
	}

	hub := websocket.NewHub(logger)
	go hub.Run()

	tasks := task.NewManager(scraper, datasets, logger)
	tasks.OnUpdate(hub.PublishTaskStatus)

	generator := model.NewGenerator(model.UnscheduledCompatible)
	router := server.New(datasets, generator, tasks, hub, logger).Router(cfg.AllowedOrigins)

	logger.Info("server is running",
		zap.String("addr", cfg.Addr),
		zap.String("dataDir", cfg.DataDir),
	)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("ListenAndServe: ", zap.Error(err))
	}
}
