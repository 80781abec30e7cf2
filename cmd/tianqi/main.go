// Command tianqi prints terminal weather reports for Chinese cities,
// backed by www.gxweather.com with canned data when the site is
// unreachable.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	"go.uber.org/zap"

	"github.com/huangwb/tianqi/internal/cities"
	"github.com/huangwb/tianqi/internal/gxweather"
	"github.com/huangwb/tianqi/internal/models"
	"github.com/huangwb/tianqi/internal/render"
	"github.com/huangwb/tianqi/internal/report"
)

// version is overridden at release time via -ldflags "-X main.version=...".
var version = "dev"

type CLI struct {
	City string `arg:"" optional:"" help:"City name, matched against the built-in city table (北京, 灵山, ...)."`

	Forecast   int              `default:"7" help:"Number of forecast days to show. 0 hides the forecast."`
	JSON       bool             `help:"Print the report as indented JSON."`
	Simple     bool             `help:"Current conditions only, no forecast section."`
	ListCities bool             `help:"List the known city names and exit."`
	Timeout    time.Duration    `default:"10s" env:"TIANQI_TIMEOUT" help:"HTTP timeout for provider requests."`
	BaseURL    string           `name:"base-url" default:"https://www.gxweather.com" env:"TIANQI_BASE_URL" help:"Weather provider base URL."`
	Verbose    bool             `short:"v" env:"TIANQI_VERBOSE" help:"Log request diagnostics to stderr."`
	Version    kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("tianqi"),
		kong.Description("Terminal weather reports for Chinese cities."),
		kong.UsageOnError(),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
		kong.Vars{"version": version},
	)

	requireCity(kctx, &cli)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kctx.FatalIfErrorf(run(ctx, &cli, os.Stdout))
}

// requireCity prints usage and exits with status 1 when no city was
// given and no city-less mode (--list-cities) is active.
func requireCity(kctx *kong.Context, cli *CLI) {
	if cli.City != "" || cli.ListCities {
		return
	}
	kctx.PrintUsage(false)
	kctx.Exit(1)
}

func run(ctx context.Context, cli *CLI, stdout io.Writer) error {
	logger, err := newLogger(cli.Verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	if cli.ListCities {
		for _, name := range cities.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	code := cities.Resolve(cli.City)
	logger.Debug("resolved city", zap.String("city", cli.City), zap.String("code", code))

	client := gxweather.New(cli.BaseURL, cli.Timeout, logger)

	var rep models.Report
	body, err := client.FetchCity(ctx, code)
	switch {
	case err == nil:
		rep = report.FromProvider(body, cli.City, time.Now())
	case errors.Is(err, gxweather.ErrNoData):
		logger.Debug("provider unreachable, falling back to canned data", zap.Error(err))
		rep = report.Demo(cli.City, time.Now())
	default:
		return err
	}

	rep.TruncateForecast(cli.Forecast)

	if cli.JSON {
		out, err := render.JSON(rep)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	fmt.Fprintln(stdout, render.Text(rep, cli.Simple))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
