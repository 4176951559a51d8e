package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/docgen-backend/internal/api"
	assistantapi "github.com/futig/docgen-backend/internal/api/assistant"
	billapi "github.com/futig/docgen-backend/internal/api/bill"
	"github.com/futig/docgen-backend/internal/api/docs"
	financeapi "github.com/futig/docgen-backend/internal/api/finance"
	legalapi "github.com/futig/docgen-backend/internal/api/legal"
	presentationapi "github.com/futig/docgen-backend/internal/api/presentation"
	researchapi "github.com/futig/docgen-backend/internal/api/research"
	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/integration/search"
	"github.com/futig/docgen-backend/internal/pkg/artifact"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	pkglogger "github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/futig/docgen-backend/internal/usecase/assistant"
	"github.com/futig/docgen-backend/internal/usecase/bill"
	"github.com/futig/docgen-backend/internal/usecase/content"
	"github.com/futig/docgen-backend/internal/usecase/finance"
	"github.com/futig/docgen-backend/internal/usecase/legal"
	"github.com/futig/docgen-backend/internal/usecase/presentation"
	"github.com/futig/docgen-backend/internal/usecase/research"
	"github.com/unidoc/unioffice/common/license"
	"go.uber.org/zap"
)

// generationClient is a content generator holding SDK resources.
type generationClient interface {
	content.Generator
	Close() error
}

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("llm_provider", cfg.LLMCfg.Provider),
	)

	if cfg.UnidocLicenseKey != "" {
		if err := license.SetMeteredKey(cfg.UnidocLicenseKey); err != nil {
			return nil, fmt.Errorf("set office renderer license: %w", err)
		}
		logger.Info("Office renderer license configured")
	}

	// Initialize external service connectors (with mock support)
	var generator generationClient
	var searchClient research.SearchClient

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		generator = llm.NewMockConnector(logger)
		searchClient = search.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		generator, err = setupGenerator(ctx, cfg.LLMCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup generation client: %w", err)
		}
		searchClient = search.NewConnector(cfg.SearchCfg, logger)
	}

	kb, err := knowledge.Load(cfg.KnowledgeBasePath, logger)
	if err != nil {
		_ = generator.Close()
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	// Rendering and storage
	factory := formatter.NewFactory(formatter.WithTempDir(cfg.OutputCfg.TempDir))
	store := artifact.NewStore(cfg.OutputCfg.Dir, factory)
	pipeline := content.NewPipeline(prompt.DefaultRegistry(), generator)

	// Initialize validators
	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)
	logger.Info("Validators initialized")

	// Initialize use cases
	legalUC := legal.NewUsecase(pipeline, store, time.Now, logger)
	presentationUC := presentation.NewUsecase(pipeline, store, time.Now, logger)
	billUC := bill.NewUsecase(pipeline, fileValidator, logger)
	researchUC := research.NewUsecase(searchClient, pipeline, time.Now, logger)
	financeUC := finance.NewUsecase(pipeline, logger)
	assistantUC := assistant.NewUsecase(pipeline, kb, time.Now, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	handlers := api.Handlers{
		Legal:        legalapi.NewHandler(legalUC, store, cfg.OutputCfg.KeepArtifacts),
		Presentation: presentationapi.NewHandler(presentationUC, store, cfg.OutputCfg.KeepArtifacts),
		Bill:         billapi.NewHandler(billUC, cfg.FileUploadCfg, fileValidator),
		Research:     researchapi.NewHandler(researchUC),
		Finance:      financeapi.NewHandler(financeUC),
		Assistant:    assistantapi.NewHandler(assistantUC),
	}
	logger.Info("API handlers initialized")

	apiSpec, err := docs.LoadSpec(cfg.SwaggerPath)
	if err != nil {
		logger.Warn("API documentation disabled", zap.String("path", cfg.SwaggerPath), zap.Error(err))
	}

	// Generation calls are bounded by LLM_TIMEOUT, leave headroom for rendering.
	requestTimeout := cfg.LLMCfg.Timeout + 30*time.Second

	router := api.SetupRouter(handlers, api.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: requestTimeout,
		AIConfigured:   pipeline.Configured(),
		APISpec:        apiSpec,
	}, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      requestTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
		zap.Bool("ai_configured", pipeline.Configured()),
		zap.Bool("search_configured", searchClient.Configured()),
	)

	return &App{
		server:    server,
		generator: generator,
		logger:    logger,
	}, nil
}

func setupGenerator(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (generationClient, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIConnector(cfg, logger), nil
	default:
		return llm.NewGeminiConnector(ctx, cfg, logger)
	}
}
