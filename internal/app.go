package internal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MHarnil/dwarkesh-admin/internal/adapters/api"
	"github.com/MHarnil/dwarkesh-admin/internal/adapters/localfile"
	"github.com/MHarnil/dwarkesh-admin/internal/configs"
	"github.com/MHarnil/dwarkesh-admin/internal/core/usecase"
	"github.com/MHarnil/dwarkesh-admin/internal/logging"
	"github.com/MHarnil/dwarkesh-admin/internal/ui"
	"github.com/MHarnil/dwarkesh-admin/pkg/restclient"
)

// Options override configuration from the command line.
type Options struct {
	EnvFile string
	BaseURL string
}

// App holds the wired application.
type App struct {
	config   *configs.AppConfig
	log      *zap.SugaredLogger
	closeLog func()
	deps     ui.Deps
}

// NewApp is the composition root: every dependency is created and connected
// here, nothing resolves its own collaborators.
func NewApp(opts Options) (*App, error) {
	var appConfig *configs.AppConfig
	var err error
	if opts.EnvFile != "" {
		appConfig, err = configs.LoadConfig(opts.EnvFile)
	} else {
		appConfig, err = configs.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	if opts.BaseURL != "" {
		appConfig.API.BaseURL = opts.BaseURL
	}

	// 1. Low-level dependencies: the logger first, everything else logs
	// through it. Stdout belongs to the terminal UI, so logs go to a file.
	log, closeLog, err := logging.New(appConfig.Log.File, appConfig.Log.Level)
	if err != nil {
		return nil, err
	}

	client, err := restclient.NewClient(restclient.Config{
		BaseURL: appConfig.API.BaseURL,
		Timeout: time.Duration(appConfig.API.TimeoutSeconds) * time.Second,
	}, log)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	log.Infow("backend client initialized", "base_url", appConfig.API.BaseURL)

	// 2. Outgoing adapters.
	typeGateway := api.NewPropertyTypeGateway(client, log)
	propertyGateway := api.NewPropertyGateway(client, log)
	contactGateway := api.NewContactGateway(client, log)
	blobSource := localfile.NewBlobSourceAdapter()
	log.Infow("all outgoing adapters initialized")

	// 3. Use cases.
	submitUseCase := usecase.NewSubmitPropertyUseCase(propertyGateway, blobSource, log)
	loadUseCase := usecase.NewLoadPropertyUseCase(propertyGateway, log)
	log.Infow("all use cases initialized")

	return &App{
		config:   appConfig,
		log:      log,
		closeLog: closeLog,
		deps: ui.Deps{
			Types:      typeGateway,
			Properties: propertyGateway,
			Contacts:   contactGateway,
			Submit:     submitUseCase,
			Load:       loadUseCase,
			Log:        log,
		},
	}, nil
}

// Run starts the terminal UI and blocks until the user quits.
func (a *App) Run() error {
	defer a.closeLog()
	a.log.Infow("application starting")

	program := tea.NewProgram(ui.NewModel(a.deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI exited with error: %w", err)
	}

	a.log.Infow("application stopped")
	return nil
}
