// Package main is the entry point for the hookbot CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"hookbot/pkg/bot"
	"hookbot/pkg/command"
	"hookbot/pkg/config"
	"hookbot/pkg/logger"
	"hookbot/pkg/rest"
	"hookbot/pkg/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "hookbot",
	Short: "hookbot - Discord HTTP-interactions bot",
	Long: `hookbot serves Discord application commands over the HTTP
interactions webhook, without a gateway connection.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactions webhook server",
	Run:   runServe,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Push the command tree to Discord and exit",
	Run:   runRegister,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetFullVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(versionCmd)
}

func baseModules() []fx.Option {
	if configPath != "" {
		os.Setenv(config.ConfigPathEnv, configPath)
	}
	return []fx.Option{
		logger.Module,
		config.Module,
		rest.Module,
		command.Module,
		fx.Invoke(registerCommands),
	}
}

func runServe(cmd *cobra.Command, args []string) {
	opts := append(baseModules(), bot.Module)
	app := fx.New(opts...)
	app.Run()
}

func runRegister(cmd *cobra.Command, args []string) {
	opts := append(baseModules(),
		fx.Invoke(func(cfg *config.Config, log *logger.Logger, reg *command.Registry, client *rest.Client) error {
			s, err := bot.NewServer(cfg, log, reg, client)
			if err != nil {
				return err
			}
			return s.RegisterCommands(context.Background())
		}),
		fx.NopLogger,
	)
	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "register failed:", err)
		os.Exit(1)
	}
	fmt.Println("commands registered")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
