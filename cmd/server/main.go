package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/engine"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/infrastructure/storage"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/server"
	"github.com/olveryu/WerewolfGameJudge-sub011/internal/version"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "werewolf-judge",
		Short: "Authoritative werewolf night judge",
		Long:  "Server-side rule engine for werewolf-style social deduction games.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env опционален: молча игнорируем его отсутствие
			_ = godotenv.Load()
			logger.Init()
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newReplayCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newServeCommand() *cobra.Command {
	var port string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Log.Info("Starting Werewolf Judge...")
			logger.Log.Info(version.String())

			if port == "" {
				port = os.Getenv("WGJ_PORT")
			}
			if port == "" {
				port = "8080"
			}

			var store engine.Store
			if dbPath != "" {
				sqlite, err := storage.Open(dbPath)
				if err != nil {
					return fmt.Errorf("open storage: %w", err)
				}
				defer sqlite.Close()
				store = sqlite
				logger.Log.WithField("path", dbPath).Info("Storage attached")
			} else {
				logger.Log.Warn("No --db path given, running without persistence")
			}

			game := engine.NewService(store)
			srv := server.New(game, port)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Run(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-stop:
				logger.Log.Info("Shutting down...")
			}

			for _, code := range game.RoomCodes() {
				game.CloseRoom(code)
			}
			logger.Log.Info("Done.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $WGJ_PORT or 8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to sqlite database (empty = in-memory only)")

	return cmd
}

func newReplayCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "replay <room-code>",
		Short: "Re-run a room's intent journal and print the final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomCode := args[0]

			sqlite, err := storage.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer sqlite.Close()

			view, err := engine.ReplayFromStore(sqlite, roomCode)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "werewolf.db", "path to sqlite database")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
