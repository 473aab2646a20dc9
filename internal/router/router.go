package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vestineo/news-blog-api/internal/config"
	"github.com/vestineo/news-blog-api/internal/handler"
	"github.com/vestineo/news-blog-api/internal/middleware"
	"github.com/vestineo/news-blog-api/internal/repository/mongodb"
)

func InitRouter(cfg *config.Config, log *zap.Logger, db *mongodb.Client, repo *mongodb.PostRepository) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Metrics(), gin.Recovery())

	post := handler.NewPostHandler(repo)
	health := handler.NewHealthHandler(db)

	// Post surface
	r.GET("/", post.Hello)
	r.POST("/post", post.CreatePost)
	r.GET("/post/:id", post.GetPost)
	r.GET("/posts", post.ListPosts)
	r.GET("/category/:query", post.PostsByCategory)
	r.GET("/author/:query", post.PostsByAuthor)
	r.GET("/search/:query", post.SearchPosts)

	// Operational surface
	r.GET("/healthz", health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/static", cfg.StaticDir)

	return r
}
