package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/megaverse-cli/internal/adapters/config"
	"github.com/bnema/megaverse-cli/internal/adapters/megaverse/httpapi"
	"github.com/bnema/megaverse-cli/internal/adapters/megaverse/memory"
	"github.com/bnema/megaverse-cli/internal/application"
	"github.com/bnema/megaverse-cli/internal/observability"
	"github.com/bnema/megaverse-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	service *application.Service
	cfg     config.Config
	logger  zerolog.Logger
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger("mega", os.Stderr)

	client := httpapi.Client{
		API:         httpapi.DefaultAPI(cfg.BaseURL),
		CandidateID: cfg.CandidateID,
	}

	service := application.NewService(client, memory.NewEndpoint(), ports.SystemClock{}, logger, application.Tuning{
		Retries:        cfg.Submission.Retries,
		BaseDelay:      cfg.Submission.BaseDelay(),
		RateLimitDelay: cfg.Submission.RateLimitDelay(),
		Pace:           cfg.Submission.Pace(),
		PatternPace:    cfg.Submission.PatternPace(),
		Workers:        cfg.Submission.Workers,
	})

	return &app{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}, nil
}
