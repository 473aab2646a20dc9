package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vestineo/news-blog-api/internal/config"
	"github.com/vestineo/news-blog-api/internal/pkg"
	"github.com/vestineo/news-blog-api/internal/repository/mongodb"
	"github.com/vestineo/news-blog-api/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := pkg.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := mongodb.Connect(mongodb.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
	}, log)
	if err != nil {
		log.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer db.Close(context.Background())

	repo := mongodb.NewPostRepository(db)

	r := router.InitRouter(cfg, log, db, repo)
	log.Info("listening", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
