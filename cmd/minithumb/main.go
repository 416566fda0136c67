package main

import (
	"encoding/base64"
	"flag"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/john-rice/td/common/config"
	"github.com/john-rice/td/common/globals"
	"github.com/john-rice/td/common/logging"
	"github.com/john-rice/td/common/rcontext"
	"github.com/john-rice/td/common/version"
	"github.com/john-rice/td/metrics"
	"github.com/john-rice/td/minithumbnail"
)

// Expands packed minithumbnail blobs into standalone JPEG files. Input
// files hold the raw packed bytes, or base64 with -base64.
func main() {
	configPath := flag.String("config", "preview-core.yaml", "The path to the configuration")
	outDir := flag.String("outDir", ".", "Directory to write expanded JPEGs to")
	asBase64 := flag.Bool("base64", false, "Treat input files as base64-encoded packed blobs")
	withBlurhash := flag.Bool("blurhash", false, "Also print a blurhash for each input")
	flag.Parse()

	// Override config path with config for Docker users
	configEnv := os.Getenv("REPO_CONFIG")
	if configEnv != "" {
		configPath = &configEnv
	}

	config.Path = *configPath

	err := logging.Setup(
		config.Get().General.LogDirectory,
		config.Get().General.LogColors,
		config.Get().General.JsonLogs,
		config.Get().General.LogLevel,
	)
	if err != nil {
		panic(err)
	}

	logrus.Info("Starting up...")
	version.Print()

	if config.Get().Sentry.Enabled {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         config.Get().Sentry.Dsn,
			Environment: config.Get().Sentry.Environment,
			Debug:       config.Get().Sentry.Debug,
		})
		if err != nil {
			logrus.Fatal(err)
		}
	}

	watcher := config.Watch()
	defer watcher.Close()
	metrics.Init()
	go func() {
		for range globals.MetricsReloadChan {
			metrics.Reload()
		}
	}()

	if flag.NArg() == 0 {
		logrus.Fatal("No input files given")
	}

	ctx := rcontext.Initial()
	for _, inPath := range flag.Args() {
		ctx := ctx.LogWithFields(logrus.Fields{"input": inPath})

		packed, err := os.ReadFile(inPath)
		if err != nil {
			ctx.Log.Error("Error reading input: ", err)
			continue
		}
		if *asBase64 {
			packed, err = base64.StdEncoding.DecodeString(string(packed))
			if err != nil {
				ctx.Log.Error("Error decoding base64 input: ", err)
				continue
			}
		}

		expanded := minithumbnail.Expand(packed)
		if expanded == nil {
			ctx.Log.Error("Input is not a packed minithumbnail")
			continue
		}

		height, width := minithumbnail.Dimensions(packed)
		outPath := filepath.Join(*outDir, filepath.Base(inPath)+".jpg")
		if err = os.WriteFile(outPath, expanded, 0644); err != nil {
			ctx.Log.Error("Error writing output: ", err)
			continue
		}
		ctx.Log.Infof("Wrote %dx%d JPEG (%s) to %s", width, height, humanize.Bytes(uint64(len(expanded))), outPath)

		if *withBlurhash {
			hash, err := minithumbnail.BlurHash(ctx, packed)
			if err != nil {
				ctx.Log.Error("Error computing blurhash: ", err)
				continue
			}
			ctx.Log.Info("Blurhash: ", hash)
		}
	}

	metrics.Stop()
}
