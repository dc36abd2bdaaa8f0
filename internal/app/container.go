package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/doeshing/n8n-ready/assets"
	"github.com/doeshing/n8n-ready/internal/application/compose"
	appconfig "github.com/doeshing/n8n-ready/internal/application/config"
	"github.com/doeshing/n8n-ready/internal/application/doctor"
	"github.com/doeshing/n8n-ready/internal/application/scaffold"
	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/infrastructure/config"
	"github.com/doeshing/n8n-ready/internal/infrastructure/executor"
	"github.com/doeshing/n8n-ready/internal/infrastructure/netprobe"
	"github.com/doeshing/n8n-ready/internal/infrastructure/project"
	"github.com/doeshing/n8n-ready/internal/infrastructure/toolchain"
	"github.com/doeshing/n8n-ready/internal/pkg/logger"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config          domain.Config
	ConfigLoader    *config.FileLoader
	DoctorService   *doctor.Service
	ComposeService  *compose.Service
	ScaffoldService *scaffold.Service
	Logger          *logger.ZapLogger
	RunID           string
}

// BuildContainer constructs the dependency graph. Nothing is cached between
// invocations; every command starts from a fresh container.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, errors.WithHint(err, "Fix or remove "+cfgLoader.Path())
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "invalid configuration"), "Fix or remove "+cfgLoader.Path())
	}

	runID := uuid.NewString()
	log := logger.New(verbose).With(map[string]interface{}{"run_id": runID})
	log.Debug("configuration loaded", map[string]interface{}{"path": cfgLoader.Path()})

	probeRunner := executor.NewLocalExecutor(cfg.Timeouts.Command, log)
	composeRunner := executor.NewLocalExecutor(cfg.Timeouts.Compose, log)
	detector := toolchain.NewDetector(probeRunner, log)
	reader := project.NewFileReader(log)

	doctorService := &doctor.Service{
		Toolchain: detector,
		Prober:    netprobe.NewListenProber(log),
		Project:   reader,
		PublicIP:  netprobe.NewHTTPPublicIPResolver(cfg.PublicIP.Services, cfg.Timeouts.Lookup, log),
		DNS:       netprobe.NewDNSResolver(cfg.Timeouts.Lookup),
		PortSets:  cfg.Ports,
		Logger:    log,
	}

	composeService := &compose.Service{
		Toolchain: detector,
		Runner:    composeRunner,
		Project:   reader,
		Logger:    log,
	}

	scaffoldService := &scaffold.Service{
		Templates: assets.Templates(),
		Logger:    log,
	}

	return &Container{
		Config:          cfg,
		ConfigLoader:    cfgLoader,
		DoctorService:   doctorService,
		ComposeService:  composeService,
		ScaffoldService: scaffoldService,
		Logger:          log,
		RunID:           runID,
	}, nil
}
