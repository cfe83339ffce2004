package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/wastetrack/authprobe/pkg/context"
	"github.com/wastetrack/authprobe/pkg/feature"
	"github.com/wastetrack/authprobe/pkg/log"
	"github.com/wastetrack/authprobe/pkg/output"
	"github.com/wastetrack/authprobe/pkg/probe"
	"github.com/wastetrack/authprobe/pkg/tui"
	"github.com/wastetrack/authprobe/pkg/wasteapi"
)

var (
	cli             = kingpin.New("authprobe", "authprobe is a smoke-test harness for the waste-management service's login endpoint.")
	debug           = cli.Flag("debug", "Run in debug mode.").Bool()
	jsonLogs        = cli.Flag("log-json", "Emit logs as JSON instead of console text.").Bool()
	apiURL          = cli.Flag("api-url", "Base URL of the waste-management API. Defaults to $"+wasteapi.EnvAPIURL+", then "+wasteapi.DefaultBaseURL+".").String()
	tokenPrefixLen  = cli.Flag("token-prefix", "Number of token characters to record for display.").Int()
	userAgentSuffix = cli.Flag("user-agent-suffix", "Suffix to add to the User-Agent sent with each probe.").String()

	batchCmd     = cli.Command("batch", "Probe every roster account in order and print a transcript. Always exits zero.")
	batchJSONOut = batchCmd.Flag("json", "Output one JSON object per outcome.").Short('j').Bool()

	interactiveCmd = cli.Command("interactive", "Probe roster accounts one at a time from a terminal panel.")
)

func init() {
	// A .env file may carry WASTE_API_URL for local setups.
	_ = godotenv.Load()
}

func main() {
	cmd := kingpin.MustParse(cli.Parse(os.Args[1:]))

	logSink := log.WithConsoleSink(os.Stderr, log.WithGlobalRedaction())
	if *jsonLogs {
		logSink = log.WithJSONSink(os.Stderr, log.WithGlobalRedaction())
	}
	logger, flush := log.New("authprobe", logSink)
	defer func() { _ = flush() }()
	context.SetDefaultLogger(logger)

	if *debug {
		log.SetLevel(2)
	}
	if *userAgentSuffix != "" {
		feature.UserAgentSuffix.Store(*userAgentSuffix)
	}

	roster := probe.DefaultRoster()
	// Fixture passwords are echoed by the sinks on purpose, but they must
	// never leak through log output.
	for _, cred := range roster {
		log.RedactGlobally(cred.Password)
	}

	client := wasteapi.New(*apiURL)
	ctx := context.Background()
	logger.V(1).Info("resolved API base URL", "url", client.BaseURL())

	switch cmd {
	case batchCmd.FullCommand():
		engine := probe.NewEngine(client, probe.WithTokenPrefixLength(prefixLen(probe.DefaultBatchTokenPrefixLen)))

		var sink output.ReportSink = output.NewPlainSink(os.Stdout, client.BaseURL())
		if *batchJSONOut {
			sink = output.NewJSONSink(os.Stdout)
		}

		sink.Begin()
		engine.Run(ctx, roster, sink.Emit)
		sink.End()
		// The probe is diagnostic, not assertive: individual failures do not
		// change the exit code.

	case interactiveCmd.FullCommand():
		engine := probe.NewEngine(client, probe.WithTokenPrefixLength(prefixLen(probe.DefaultInteractiveTokenPrefixLen)))

		if err := tui.Run(engine, roster, client.BaseURL()); err != nil {
			logger.Error(err, "error running interactive panel")
			os.Exit(1)
		}
	}
}

func prefixLen(fallback int) int {
	if *tokenPrefixLen > 0 {
		return *tokenPrefixLen
	}
	return fallback
}
