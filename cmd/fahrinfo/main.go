package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fahrinfo",
	Short: "Live MVG departure boards in the terminal",
	Long: `fahrinfo shows live departure boards for Munich public transport (MVG)
in a full-screen terminal dashboard.

Quick Start:
  1. Launch the dashboard:     fahrinfo
  2. Find a station:           fahrinfo stations Marienplatz
  3. One-shot departures:      fahrinfo departures de:09162:2

Dashboard keys:
  s, /         Search stations
  tab          Switch between Departures and Stations
  j/k, ↓/↑     Move the selection
  enter        Select station
  r, F5        Reload departures
  q, ctrl+c    Quit

Environment:
  FAHRINFO_API_URL           MVG API host (default https://www.mvg.de)
  FAHRINFO_STATIONS_URL      Full URL of the station catalog
  FAHRINFO_CACHE_DIR         Station catalog cache directory
  FAHRINFO_CATALOG_TTL       Catalog cache lifetime, 0 keeps it forever
  FAHRINFO_NO_CACHE          Disable the catalog cache
  FAHRINFO_REFRESH_INTERVAL  Auto-reload interval (default 60s)
  FAHRINFO_HTTP_TIMEOUT      Request timeout (default 10s)
  FAHRINFO_COLOR             auto, always or never (plain commands)
  FAHRINFO_LOG_FILE          Write JSON diagnostics to this file
  FAHRINFO_LOG_LEVEL         debug, info, warn or error`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(departuresCmd)
}
