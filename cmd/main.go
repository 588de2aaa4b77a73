package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"hoteltrack/cmd/bootstrap"
	"hoteltrack/internal/infra/db"
	"hoteltrack/internal/infra/gormstore"
	"hoteltrack/internal/pkg/config"
	"hoteltrack/internal/usecase/commands"
)

func init() {
	// Release mode unless explicitly overridden; misconfiguration must not
	// expose debug output.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hoteltrack: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hoteltrack",
		Short:         "Hotel operations engine: rooms, reservations, stays and billing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand(), newSeedCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func runServer(ctx context.Context) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(ctx); err != nil {
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("shutdown did not complete cleanly", "error", err)
	}
	return nil
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a starter set of room types and rooms in the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context())
		},
	}
}

// runSeed wires the stack by hand: a one-shot command has no use for the
// fx lifecycle.
func runSeed(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	store := gormstore.New(gdb)
	if err := store.Migrate(); err != nil {
		return err
	}

	logger := bootstrap.NewLogger(cfg)
	roomCommands := commands.NewRoomCommands(
		gormstore.NewRoomTypeRepo(store),
		gormstore.NewRoomRepo(store),
		logger,
	)

	types := []commands.CreateRoomTypeParams{
		{Name: "Standard", Description: "Queen bed, city view", MaxOccupancy: 2, BasePriceCents: 10000, TaxRate: 0.10},
		{Name: "Deluxe", Description: "King bed, balcony", MaxOccupancy: 3, BasePriceCents: 17500, TaxRate: 0.10},
		{Name: "Suite", Description: "Separate living room", MaxOccupancy: 4, BasePriceCents: 30000, TaxRate: 0.10},
	}

	typeIDs := make(map[string]int64, len(types))
	for _, params := range types {
		rt, err := roomCommands.CreateRoomType(ctx, params)
		if err != nil {
			if errors.Is(err, commands.ErrDuplicateRoomType) {
				logger.Info("room type already seeded", "name", params.Name)
				continue
			}
			return err
		}
		typeIDs[params.Name] = rt.ID()
		logger.Info("seeded room type", "name", params.Name, "id", rt.ID())
	}

	rooms := []struct {
		Number   string
		Floor    int
		TypeName string
	}{
		{"101", 1, "Standard"},
		{"102", 1, "Standard"},
		{"201", 2, "Deluxe"},
		{"202", 2, "Deluxe"},
		{"301", 3, "Suite"},
	}

	for _, r := range rooms {
		typeID, ok := typeIDs[r.TypeName]
		if !ok {
			continue
		}
		created, err := roomCommands.CreateRoom(ctx, commands.CreateRoomParams{
			Number:     r.Number,
			Floor:      r.Floor,
			RoomTypeID: typeID,
		})
		if err != nil {
			if errors.Is(err, commands.ErrDuplicateRoom) {
				logger.Info("room already seeded", "number", r.Number)
				continue
			}
			return err
		}
		logger.Info("seeded room", "number", created.Number(), "id", created.ID())
	}

	return nil
}
