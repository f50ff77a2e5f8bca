package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mobil-koeln/fahrinfo/internal/config"
	"github.com/mobil-koeln/fahrinfo/internal/models"
	"github.com/mobil-koeln/fahrinfo/internal/output"
	"github.com/mobil-koeln/fahrinfo/internal/search"
)

var stationsCmd = &cobra.Command{
	Use:   "stations [query]",
	Short: "List stations from the MVG catalog",
	Long: `List stations whose name contains the query. Matching ignores case and
accents, so "munchen" finds "München". Without a query the whole catalog
is printed.

Examples:
  fahrinfo stations
  fahrinfo stations ost
  fahrinfo stations "Flughafen"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStations,
}

var departuresCmd = &cobra.Command{
	Use:   "departures <station>",
	Short: "Show the departure board of a station",
	Long: `Show the live departure board of a station.

The station is either a global ID such as de:09162:6 or a name. A name is
looked up in the station catalog and the first match is used.

Use 'fahrinfo stations <name>' to find station IDs.

Examples:
  fahrinfo departures de:09162:6
  fahrinfo departures Marienplatz`,
	Args: cobra.ExactArgs(1),
	RunE: runDepartures,
}

func runStations(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := newClient(cfg, logger)
	res, err := newLoader(cfg, client, logger).Load(cmd.Context())
	if err != nil {
		return err
	}

	stations := res.Stations
	if len(args) == 1 {
		stations = search.Filter(stations, args[0])
	}

	output.RenderStations(os.Stdout, stations, output.TableOptions{
		Colors: output.NewColors(output.ParseColorMode(cfg.Color)),
	})
	return nil
}

func runDepartures(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	client := newClient(cfg, logger)

	station, err := resolveStation(ctx, args[0], func(ctx context.Context) ([]models.Station, error) {
		res, err := newLoader(cfg, client, logger).Load(ctx)
		return res.Stations, err
	})
	if err != nil {
		return err
	}

	departures, err := client.ListDepartures(ctx, station.ID)
	if err != nil {
		return err
	}

	colors := output.NewColors(output.ParseColorMode(cfg.Color))
	if station.Name != "" {
		_, _ = fmt.Fprintln(os.Stdout, colors.Header(station.Name))
		_, _ = fmt.Fprintln(os.Stdout)
	}
	output.RenderDepartures(os.Stdout, departures, output.TableOptions{
		Colors:       colors,
		ShowMessages: true,
	})
	return nil
}

// resolveStation accepts a global ID ("de:09162:6") as is and looks any
// other argument up by name in the catalog.
func resolveStation(ctx context.Context, arg string, stations func(context.Context) ([]models.Station, error)) (models.Station, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return models.Station{}, fmt.Errorf("station must not be empty")
	}
	if strings.Count(arg, ":") >= 2 {
		return models.Station{ID: arg}, nil
	}

	all, err := stations(ctx)
	if err != nil {
		return models.Station{}, err
	}
	matches := search.Filter(all, arg)
	if len(matches) == 0 {
		return models.Station{}, fmt.Errorf("no station matches %q", arg)
	}
	for _, st := range matches {
		if strings.EqualFold(st.Name, arg) {
			return st, nil
		}
	}
	return matches[0], nil
}
