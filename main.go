package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog/log"

	"github.com/handsomefox/memeapi/api"
	"github.com/handsomefox/memeapi/internal/logging"
	"github.com/handsomefox/memeapi/server"
)

type AppArguments struct {
	Address         string        `arg:"-a,--addr" default:"127.0.0.1:3001" help:"address to listen on"`
	Community       string        `arg:"-c,--community" default:"MemesBR" help:"community used when the request does not specify one"`
	ShutdownTimeout time.Duration `arg:"--shutdown-timeout" default:"10s" help:"time to wait for in-flight requests on shutdown"`
	VerboseLogging  bool          `arg:"-v,--verbose" help:"enable debug logging"`
	JSONLogging     bool          `arg:"--json" help:"write logs as JSON lines"`
}

func (AppArguments) Description() string {
	return "Petrus API serves the top image posts of a reddit community as JSON."
}

func main() {
	var args AppArguments
	p := arg.MustParse(&args)

	if err := api.ValidateCommunity(args.Community); err != nil {
		p.Fail("--community must only contain letters, digits and underscores")
	}

	logging.Setup(args.VerboseLogging, args.JSONLogging)
	log.Debug().Any("app_arguments", args).Send()

	if err := run(args); err != nil {
		log.Fatal().Err(err).Msg("error running the app")
	}
}

func run(args AppArguments) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := api.DefaultClient()
	handler := server.NewHandler(client.Subreddit, args.Community)
	router := server.NewRouter(handler, log.Logger)

	return server.Run(ctx, args.Address, router, args.ShutdownTimeout)
}
