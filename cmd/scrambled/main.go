/*
Scrambled starts the Scramble execution service: a small HTTP API that runs
submitted Scramble source and records the result.

Usage:

	scrambled [flags]

The flags are:

	-v, --version
		Print the current version and exit.

	-c, --config PATH
		Read settings from the TOML file at PATH instead of running with
		default settings and an in-memory store.
*/
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dekarrin/scramble/internal/config"
	"github.com/dekarrin/scramble/internal/dao"
	"github.com/dekarrin/scramble/internal/dao/inmem"
	"github.com/dekarrin/scramble/internal/dao/sqlite"
	"github.com/dekarrin/scramble/internal/httpapi"
	"github.com/dekarrin/scramble/internal/version"
	"github.com/spf13/pflag"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "print the current version and exit")
	flagConfig  = pflag.StringP("config", "c", "", "path to a scramble.toml config file")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return
	}

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			log.Fatalf("FATAL could not load config: %s", err)
		}
	}

	store, err := openStore(cfg.Server)
	if err != nil {
		log.Fatalf("FATAL could not open datastore: %s", err)
	}
	defer store.Close()

	srv := httpapi.New(store, cfg.Server.AdminUser, cfg.Server.AdminPasswordHash, cfg.Server.JWTSecret)

	log.Printf("INFO  scrambled listening on %s", cfg.Server.BindAddress)
	if err := http.ListenAndServe(cfg.Server.BindAddress, srv.Router()); err != nil {
		log.Fatalf("FATAL %s", err)
	}
}

func openStore(cfg config.Server) (dao.Store, error) {
	switch cfg.Database {
	case config.DatabaseSQLite:
		return sqlite.NewDatastore(cfg.DBFile)
	case config.DatabaseInMemory, "":
		return inmem.NewDatastore(), nil
	default:
		return nil, fmt.Errorf("unsupported database kind %q", cfg.Database)
	}
}
