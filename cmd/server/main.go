package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/speakercard/internal/api"
	"github.com/youruser/speakercard/internal/card"
	"github.com/youruser/speakercard/internal/config"
	"github.com/youruser/speakercard/internal/fonts"
	"github.com/youruser/speakercard/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := util.NewLogger(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	resolver := fonts.NewResolver(logger)
	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	gen := card.NewGenerator(client, resolver, logger).WithDefaultFont(cfg.Font.DefaultName)

	defaultSel := fonts.SelectNames(fonts.ThemeFonts...)
	if cfg.Font.File != "" {
		if util.FileExists(cfg.Font.File) {
			defaultSel = fonts.SelectFile(cfg.Font.File)
		} else {
			logger.Warn("configured font file not found, using theme fonts",
				zap.String("path", cfg.Font.File))
		}
	}

	r := gin.Default()
	api.New(gen, defaultSel, logger).RegisterRoutes(r)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server exited", zap.Error(err))
	}
}
