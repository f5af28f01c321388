package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"jobboard/internal/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const databaseURLKey = "database-url"

var (
	loadDotEnv    = func() error { return godotenv.Load() }
	runMigrations = database.RunMigrations
	rollbackAll   = database.RollbackAll
	exitFunc      = os.Exit
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the jobboard database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("讀取 .env 失敗: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().String(databaseURLKey, "", "Postgres connection URL (or use DATABASE_URL)")
	_ = v.BindPFlag(databaseURLKey, root.PersistentFlags().Lookup(databaseURLKey))
	_ = v.BindEnv(databaseURLKey, "DATABASE_URL")

	dbURL := func() (string, error) {
		url := v.GetString(databaseURLKey)
		if url == "" {
			return "", fmt.Errorf("--%s 或環境變數 DATABASE_URL 未設定", databaseURLKey)
		}
		return url, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := dbURL()
			if err != nil {
				return err
			}
			if err := runMigrations(url); err != nil {
				return fmt.Errorf("Migration 執行失敗: %w", err)
			}
			cmd.Println("migrations applied")
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := dbURL()
			if err != nil {
				return err
			}
			if err := rollbackAll(url); err != nil {
				return fmt.Errorf("RollbackAll 失敗: %w", err)
			}
			cmd.Println("migrations rolled back")
			return nil
		},
	})

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
