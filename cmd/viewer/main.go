package main

import (
	"flag"
	"os"

	"github.com/CharlieDoesDev/DidItHappen/internal/config"
	"github.com/CharlieDoesDev/DidItHappen/internal/engine"
	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"go.uber.org/zap"
)

func main() {
	scenePath := flag.String("scene", "scene.json", "path to the scene description file")
	debug := flag.Bool("debug", false, "render in wireframe")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*scenePath)
	if err != nil {
		logger.Log.Error("Invalid scene config", zap.String("path", *scenePath), zap.Error(err))
		os.Exit(1)
	}

	viewer := engine.NewViewer(cfg)
	viewer.SetDebugMode(*debug)
	if err := viewer.Run(100, 100); err != nil {
		logger.Log.Error("Viewer exited with error", zap.Error(err))
		os.Exit(1)
	}
}
