package main

import (
	"context"
	"log"

	"github.com/Jordo960/VibePulse/config"
	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/routes"
	"github.com/Jordo960/VibePulse/services"
	"github.com/Jordo960/VibePulse/utils"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	kv, err := config.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store, err)
	}

	opts := services.Options{
		JWTSecret:    []byte(cfg.JWTSecret),
		AuthDelay:    cfg.AuthDelay,
		ToastTTL:     cfg.ToastTTL,
		DefaultTheme: models.Theme(cfg.DefaultTheme),
		Remote:       services.SimulatedRemote{Delay: cfg.SyncDelay, FailureRate: cfg.SyncFailureRate},
	}
	if cfg.GeminiAPIKey != "" {
		opts.Estimator = services.NewGeminiEstimator(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Printf("GEMINI_API_KEY not set; estimates will fail")
	}
	if cfg.AWSRegion != "" {
		awsCfg, err := utils.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			log.Printf("photo recognition disabled: %v", err)
		} else {
			opts.Labels = rekognition.NewFromConfig(awsCfg)
		}
	}

	app := services.NewApp(ctx, services.NewStateRepository(kv, cfg.PersistLog), opts)
	defer app.Close()

	r := routes.SetupRouter(app, opts.JWTSecret)
	log.Printf("VibePulse listening on %s (store=%s)", cfg.Addr, cfg.Store)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
