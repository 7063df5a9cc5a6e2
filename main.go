//	@title			Storefront API
//	@version		0.1.0
//	@description	Per-session storefront state: catalog, filters, cart and checkout.

//	@contact.name	Roy Situmorang
//	@contact.email	roy.situmorang@gmail.com

//	@host
//	@BasePath	/v1

//	@accept		json
//	@produce	json

//	@schemes	http https

//	@securitydefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Optional identity provider token: "Bearer <jwt>"

// @securityDefinitions.basic	BasicAuth
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/roysitumorang/storefront/config"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/keys"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"github.com/roysitumorang/storefront/router"
	serviceNsq "github.com/roysitumorang/storefront/services/nsq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func main() {
	ctxt := "Main"
	ctx := context.Background()
	helper.InitLogger()
	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", config.Version, config.Commit, config.Build)
		},
	}
	cmdRun := &cobra.Command{
		Use:   "run",
		Short: "run app",
		Run: func(_ *cobra.Command, _ []string) {
			service, err := makeService(ctx)
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMakeService")
				return
			}
			defer service.Close()
			if err := service.Migration.Migrate(ctx); err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMigrate")
				return
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return service.HTTPServerMain(ctx)
			})
			g.Go(func() error {
				consumer, err := serviceNsq.NewConsumer(ctx, service.Config.NsqAddress, config.TopicProduct, config.NsqChannel, serviceNsq.NewConfig())
				if err != nil {
					helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrNewConsumer")
					return err
				}
				defer consumer.Stop()
				if err = service.ProductUseCase.ConsumeMessage(ctx, consumer); err != nil {
					helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrConsumeMessage")
					return err
				}
				<-ctx.Done()
				return nil
			})
			g.Go(func() error {
				c := cron.New(cron.WithChain(
					cron.Recover(cron.DefaultLogger),
				))
				// run every minute
				entryID, err := c.AddFunc("* * * * *", func() {
					service.SessionUseCase.SweepSessions(ctx, time.Now())
				})
				if err != nil {
					helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrAddFunc")
					return err
				}
				helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("cron: entry added with ID %d", entryID), ctxt, "")
				c.Start()
				helper.Log(ctx, zap.InfoLevel, "cron: scheduled tasks running!...", ctxt, "")
				<-ctx.Done()
				<-c.Stop().Done()
				return nil
			})
			if err := g.Wait(); err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrWait")
			}
		},
	}
	cmdMigration := &cobra.Command{
		Use:   "migration",
		Short: "new/run migration",
		Args: func(_ *cobra.Command, args []string) (err error) {
			if len(args) == 0 {
				err = errors.New("requires at least 1 arg (new|run)")
				return
			}
			if args[0] != "new" && args[0] != "run" {
				err = fmt.Errorf("invalid first flag specified: %s", args[0])
			}
			return
		},
		Run: func(_ *cobra.Command, args []string) {
			now := time.Now()
			service, err := makeService(ctx)
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMakeService")
				return
			}
			defer service.Close()
			var activity string
			switch args[0] {
			case "new":
				path, err := service.Migration.CreateMigrationFile(ctx, "./migration")
				if err != nil {
					helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrCreateMigrationFile")
					return
				}
				activity = "creating " + path
			case "run":
				if err := service.Migration.Migrate(ctx); err != nil {
					helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMigrate")
					return
				}
				activity = "running"
			}
			duration := time.Since(now)
			helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("%s migration successfully in %s", activity, duration.String()), ctxt, "")
		},
	}
	cmdSeed := &cobra.Command{
		Use:   "seed <products.yaml>",
		Short: "load products from a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			content, err := os.ReadFile(args[0])
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrReadFile")
				return
			}
			var products []productModel.Product
			if err = yaml.Unmarshal(content, &products); err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrUnmarshal")
				return
			}
			service, err := makeService(ctx)
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMakeService")
				return
			}
			defer service.Close()
			if err = service.Migration.Migrate(ctx); err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrMigrate")
				return
			}
			var created int
			for i := range products {
				product := &products[i]
				if err = product.Validate(); err != nil {
					helper.Log(ctx, zap.WarnLevel, fmt.Sprintf("product #%d: %s", i+1, err), ctxt, "ErrValidate")
					continue
				}
				if _, err = service.ProductUseCase.CreateProduct(ctx, product); err != nil {
					if errors.Is(err, productModel.ErrUniqueNameViolation) || errors.Is(err, productModel.ErrUniqueSlugViolation) {
						helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("product %s skipped: %s", product.Slug, err), ctxt, "")
						continue
					}
					helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrCreateProduct")
					return
				}
				created++
			}
			helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("%d of %d products created", created, len(products)), ctxt, "")
		},
	}
	var tokenName string
	var tokenAge time.Duration
	cmdToken := &cobra.Command{
		Use:   "token <subject>",
		Short: "mint a development bearer token",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrLoadConfig")
				return
			}
			if !cfg.IsDevelopment() {
				helper.Log(ctx, zap.ErrorLevel, "token minting is only available in development", ctxt, "ErrEnv")
				return
			}
			privateKey, err := keys.InitPrivateKey()
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrInitPrivateKey")
				return
			}
			now := time.Now()
			token, err := helper.GenerateAccessToken(
				uuid.NewString(),
				args[0],
				cfg.JwtIssuer,
				cfg.JwtAudience,
				now,
				now.Add(tokenAge),
				map[string]any{"name": tokenName},
				privateKey,
			)
			if err != nil {
				helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrGenerateAccessToken")
				return
			}
			fmt.Println(token)
		},
	}
	cmdToken.Flags().StringVar(&tokenName, "name", "", "name claim")
	cmdToken.Flags().DurationVar(&tokenAge, "age", time.Hour, "token lifetime")
	rootCmd := &cobra.Command{Use: config.AppName}
	rootCmd.AddCommand(
		cmdVersion,
		cmdRun,
		cmdMigration,
		cmdSeed,
		cmdToken,
	)
	rootCmd.SuggestionsMinimumDistance = 1
	if err := rootCmd.Execute(); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrExecute")
	}
}

func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return config.Load()
}

func makeService(ctx context.Context) (*router.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return router.MakeHandler(ctx, cfg)
}
