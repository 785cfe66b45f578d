package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"i18nsync/internal/adapters/cli"
	"i18nsync/internal/config"
	"i18nsync/internal/infrastructure/i18n"
	"i18nsync/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	translator := i18n.NewTranslator(cfg.Locale)
	app := cli.NewApp(cfg, translator, os.Stdin, os.Stdout, os.Stderr)

	if err := app.Command().ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Debug("run failed")
		fmt.Fprintf(os.Stderr, "%s\n%v\n", cli.ErrorMessage(translator, app.Locale(), err), err)
		os.Exit(1)
	}
}
