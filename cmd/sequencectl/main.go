package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sequence-backend/internal/cli"
	"sequence-backend/internal/config"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	config.LoadEnvFile(log)

	if err := cli.NewRootCommand(cli.ConfiguredOpener(log)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
