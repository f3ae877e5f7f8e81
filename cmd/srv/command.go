package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "leaderboard"
	s.app.Usage = "Community leaderboard server"
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serve the http api and push the leaderboard to websocket clients.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate database tables",
			Category:    "Database",
			Description: `Create or update tables of communities, users and experience points.`,
		},
		{
			Action:    s.startSeed,
			Name:      "seed",
			Usage:     "Insert records from a toml file",
			ArgsUsage: "--file <path>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Usage:    "path to the toml file",
					Required: true,
				},
			},
			Category:    "Database",
			Description: `Insert communities, users and experience points in one transaction.`,
		},
	}
}
