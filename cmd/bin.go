package cmd

import (
	"fmt"
	"log"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/buildcontext"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/gateway"
	"github.com/LambdaTest/ghnotify/pkg/gitscm"
	"github.com/LambdaTest/ghnotify/pkg/inference"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/notifier"
	"github.com/LambdaTest/ghnotify/pkg/secrets/static"
	"github.com/LambdaTest/ghnotify/pkg/secrets/vault"
	"github.com/LambdaTest/ghnotify/pkg/service/commit"
	"github.com/LambdaTest/ghnotify/pkg/service/gitstatus"
	"github.com/LambdaTest/ghnotify/pkg/service/gituser"
	"github.com/LambdaTest/ghnotify/pkg/service/repo"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:           "ghnotify",
		Long:          `ghnotify publishes the outcome of a build as a GitHub commit status.`,
		Version:       constants.BinaryVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	rootCmd.AddCommand(
		notifyCommand(),
		checkCommand(),
		listCommand(),
		serveCommand(),
		consumeCommand(),
	)
	return &rootCmd
}

// app holds the wired notification stack shared by every command.
type app struct {
	cfg      *config.Config
	logger   lumber.Logger
	notifier core.StatusNotifier
	loader   core.BuildContextLoader
}

func bootstrap(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Printf("Failed to load config: %v", err)
		return nil, err
	}
	if err := verifyEnv(cfg.Env); err != nil {
		return nil, err
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(&cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return nil, err
	}

	credentialStore, err := newCredentialStore(cfg, logger)
	if err != nil {
		logger.Errorf("could not instantiate credential store %v", err)
		return nil, err
	}

	scmProvider := gitscm.New(cfg.GitHub.APIURL, gitscm.NewProxySelector(cfg.Proxy), logger)
	repoGateway := gateway.New(credentialStore,
		scmProvider,
		gituser.New(logger),
		repo.New(cfg.GitHub.PageSize, logger),
		commit.New(logger),
		gitstatus.New(logger),
		logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		notifier: notifier.New(repoGateway, inference.New(logger), credentialStore, logger),
		loader:   buildcontext.NewLoader(&cfg.BuildContext, logger),
	}, nil
}

func newCredentialStore(cfg *config.Config, logger lumber.Logger) (core.CredentialStore, error) {
	switch cfg.Credentials.Store {
	case constants.CredentialStoreVault:
		vaultStore, err := vault.New(&cfg.Vault, logger)
		if err != nil {
			return nil, err
		}
		return vault.NewCredentialStore(vaultStore, cfg.Vault.MountPath, cfg.Vault.BasePath, logger), nil
	case constants.CredentialStoreStatic, "":
		return static.New(cfg.Credentials.Static, logger), nil
	default:
		return nil, errs.New(fmt.Sprintf("Unsupported credential store %s", cfg.Credentials.Store))
	}
}

func verifyEnv(env string) error {
	switch env {
	case constants.Dev, constants.Stage, constants.Prod:
		return nil
	default:
		return errs.ErrInvalidEnvironemt
	}
}
