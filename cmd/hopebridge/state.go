package main

import (
	"hopebridge/internal/ledger"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var stateCommand = &cli.Command{
	Name:  "state",
	Usage: "Pretty-print the catalog as the serve command would load it",
	Action: func(c *cli.Context) error {
		logger := logrus.New()

		config, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(config, logger)
		if err != nil {
			return err
		}

		ngos, needs := ledger.New(logger, store).Snapshot()

		pp.Println(ngos)
		pp.Println(needs)

		return nil
	},
}
