package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	caltrainlive "github.com/baytransit/caltrain-live"

	_ "time/tzdata"
)

func main() {
	caltrainlive.InitLogging()

	app := &cli.App{
		Name:        "caltrain-live",
		Description: "Live Caltrain departures from the 511 SF Bay API",
		Commands: []*cli.Command{
			serveCommand(),
			nextCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newService() (*caltrainlive.Service, error) {
	if err := caltrainlive.LoadAppConfig(); err != nil {
		return nil, err
	}
	return caltrainlive.NewService(caltrainlive.Config)
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API server",
		Action: func(c *cli.Context) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			caltrainlive.StartServer(svc)
			caltrainlive.HandleGracefulShutdown()
			return nil
		},
	}
}

func nextCommand() *cli.Command {
	return &cli.Command{
		Name:      "next",
		Usage:     "print the next trains at a stop (by id or name)",
		ArgsUsage: "[stop] [direction]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 5, Usage: "max trains to print"},
			&cli.StringFlag{Name: "to", Usage: "destination stop for a travel-time estimate"},
		},
		Action: func(c *cli.Context) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			stop := strings.TrimSpace(c.Args().Get(0))
			if stop == "" {
				stop = "70031"
			}
			direction := strings.TrimSpace(c.Args().Get(1))

			result := svc.NextTrains(c.Context, stop, c.Int("limit"), direction, c.String("to"))
			if result.StopID == nil {
				if result.Message != nil {
					fmt.Println(*result.Message)
				} else {
					fmt.Printf("Stop not found: %q\n", stop)
				}
				return cli.Exit("", 1)
			}

			label := *result.StopID
			if result.StopName != nil {
				label = *result.StopName
			}
			fmt.Printf("Next %d trains at %s:\n", len(result.Trains), label)
			for _, t := range result.Trains {
				line := fmt.Sprintf("  %s — %s", t.Destination, t.Time)
				if t.TravelMinutes != nil {
					line += fmt.Sprintf(" (%d min to destination)", *t.TravelMinutes)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
