package main

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/EbukaAmadiObi/drawn-together/config"
	"github.com/EbukaAmadiObi/drawn-together/game"
	"github.com/EbukaAmadiObi/drawn-together/shared/logger"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden origin"})
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Origin",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.SetDebug()
	}

	var allowedOrigins []string
	if cfg.GinMode == "release" {
		allowedOrigins = append(allowedOrigins,
			"https://"+cfg.FrontendOrigin,
			"https://www."+cfg.FrontendOrigin,
		)
	} else {
		allowedOrigins = append(allowedOrigins, "http://"+cfg.FrontendOrigin)
	}

	words := game.NewWordBank(game.LoadWords(cfg.WordsFile))
	settings := game.Settings{
		MaxPlayers:     cfg.MaxPlayers,
		TotalRounds:    cfg.TotalRounds,
		RoundSeconds:   cfg.RoundSeconds,
		RoundEndDelay:  time.Duration(cfg.RoundEndDelay) * time.Second,
		MatchOverDelay: time.Duration(cfg.MatchOverDelay) * time.Second,
	}

	session := game.NewSession(settings, words, clockwork.NewRealClock())
	go session.Run(context.Background())

	r := CreateServer(allowedOrigins)
	game.RegisterRoute(r, session)

	logger.Infof("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
