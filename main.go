package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bragabarreto/financeai-pro-sub000/cmd/categorize"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/file"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/paycheck"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/receipt"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/rollback"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/root"
	"github.com/bragabarreto/financeai-pro-sub000/cmd/sms"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the log level before any command logs
	configureLogLevel()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(file.Cmd)
	root.Cmd.AddCommand(sms.Cmd)
	root.Cmd.AddCommand(paycheck.Cmd)
	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(rollback.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the shared command logger level from the
// environment, defaulting to info.
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	root.Log.SetLevel(logLevel)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		root.Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		root.Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
