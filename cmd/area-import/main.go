package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/autonomy-areas/config"
	"github.com/bitmark-inc/autonomy-areas/importer"
	"github.com/bitmark-inc/autonomy-areas/schema"
	"github.com/bitmark-inc/autonomy-areas/store"
)

const version = "0.1.0"

func initLog(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("area-import", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Update the database with areas from ONS GeoJSON (version %s)\n\n", version)
		fmt.Fprintf(os.Stderr, "usage: area-import [flags] [boundaries]\n\n")
		flags.PrintDefaults()
	}

	flags.StringP("config", "c", "./config.yaml", "[optional] path of configuration file")
	flags.BoolP("dry-run", "n", false, "Don't update the database, just output what would be done.")
	flags.StringP("host", "a", "", "database host, defaults to $HOST")
	flags.StringP("database", "d", "", "database name, defaults to $DATABASE")
	flags.Bool("no-version-check", false, "replace a dataset even if its version is already stored")
	flags.Bool("index", false, "create the area collection indexes before importing")

	// single file mode
	flags.String("id", "", "dataset id of the boundaries file, defaults to the file name")
	flags.String("version", "", "dataset version of the boundaries file")
	flags.String("type", "", "area type of the boundaries file")
	flags.Float64("priority", 0, "area priority of the boundaries file")
	flags.String("name-property", config.DefaultNameProperty, "feature property holding the area name")

	return flags
}

// singleDataset - dataset described by the positional boundaries argument and its flags
func singleDataset(flags *pflag.FlagSet, src string) config.Dataset {
	id, _ := flags.GetString("id")
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	}
	v, _ := flags.GetString("version")
	t, _ := flags.GetString("type")
	priority, _ := flags.GetFloat64("priority")
	nameProperty, _ := flags.GetString("name-property")

	return config.Dataset{
		ID:           id,
		Src:          src,
		Version:      v,
		Priority:     priority,
		Type:         t,
		NameProperty: nameProperty,
	}
}

func connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config.LoadEnv()

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	configFile, _ := flags.GetString("config")
	if flags.NArg() > 0 && !flags.Changed("config") {
		configFile = ""
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	initLog(cfg.LogLevel)

	runLog := log.WithField("run", uuid.New().String())

	datasets := cfg.Datasets
	if flags.NArg() > 0 {
		datasets = []config.Dataset{singleDataset(flags, flags.Arg(0))}
	}

	if err := importer.SanityCheck(datasets); err != nil {
		runLog.WithField("prefix", "init").Error(err)
		runLog.WithField("prefix", "init").Info("Sanity check failed")
		runLog.Info("Exiting...")
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		runLog.Info("Import is preparing to shutdown")
		cancel()
	}()

	var areaStore store.MongoStore
	if !cfg.DryRun {
		if cfg.Database == "" {
			runLog.WithField("prefix", "init").Error("database name is required")
			return 1
		}

		runLog.WithField("prefix", "init").Infof("Connecting to %s", cfg.MongoURI())
		client, err := connect(ctx, cfg.MongoURI())
		if err != nil {
			runLog.WithField("prefix", "init").Errorf("connect mongo: %s", err)
			return 1
		}

		areaStore = store.NewMongoStore(client, cfg.Database)
		defer areaStore.Close()

		if err := areaStore.Ping(); err != nil {
			runLog.WithField("prefix", "init").Errorf("ping mongo: %s", err)
			return 1
		}

		if cfg.Index {
			if err := schema.NewMongoDBIndexer(ctx, client, cfg.Database).IndexAll(); err != nil {
				runLog.WithField("prefix", "init").Errorf("index area collection: %s", err)
				return 1
			}
		}
	}

	if cfg.DryRun {
		runLog.Infof("Would update %d datasets", len(datasets))
	} else {
		runLog.Infof("Updating %d datasets, please wait while saving...", len(datasets))
	}

	var s store.Area
	if areaStore != nil {
		s = areaStore
	}
	updater := importer.NewDatasetUpdater(s, importer.Options{
		DryRun:       cfg.DryRun,
		VersionCheck: cfg.VersionCheck,
		Logger:       runLog,
	})

	summary, err := importer.Run(ctx, updater, datasets)
	if err != nil {
		runLog.Error(err)
		return 1
	}

	runLog.Infof("Saved all saveable areas, %d successes, %d failures", summary.Succeeded, summary.Failed)
	runLog.Info("Exiting...")
	return 0
}
