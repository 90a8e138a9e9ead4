package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/connectivity"

	"github.com/tablelink/tablelink/internal/cluster"
	"github.com/tablelink/tablelink/internal/config"
	"github.com/tablelink/tablelink/internal/metadata"
	"github.com/tablelink/tablelink/internal/schema"
	"github.com/tablelink/tablelink/internal/shiplist"
)

// masterAddressesEnv seeds the global default masters for local runs.
const masterAddressesEnv = "TABLET_MASTER_ADDRESSES"

func main() {
	// local runs may keep their defaults in a .env file
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "resolve":
		err = runResolve(os.Args[2:])
	case "schema":
		err = runSchema(os.Args[2:])
	case "ship":
		err = runShip(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tablelink <command> [flags]

commands:
  resolve   print the master addresses resolved from a job configuration
  schema    map a table descriptor's columns to query-engine types
  ship      resolve dependency artifacts into the job ship list
  check     construct a cluster client and report connectivity`)
}

// loadOverlaidConf loads the job configuration, overlays the table
// descriptor's properties when one is given, and seeds the global master
// default from the environment when unset.
func loadOverlaidConf(confPath, tablePath string) (*config.Config, error) {
	conf := config.New()
	if confPath != "" {
		loaded, err := config.Load(confPath)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}

	if conf.Get(cluster.DefaultMasterAddressesKey) == "" {
		if env := os.Getenv(masterAddressesEnv); env != "" {
			conf.Set(cluster.DefaultMasterAddressesKey, env)
		}
	}

	if tablePath == "" {
		return conf, nil
	}

	tbl, err := metadata.LoadTable(tablePath)
	if err != nil {
		return nil, err
	}
	return config.Overlay(conf, metadata.Properties(tbl)), nil
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	confPath := fs.String("conf", "", "job configuration file")
	tablePath := fs.String("table", "", "table descriptor to overlay")
	if err := fs.Parse(args); err != nil {
		return err
	}

	conf, err := loadOverlaidConf(*confPath, *tablePath)
	if err != nil {
		return err
	}

	masters, err := cluster.ResolveMasterAddresses(conf)
	if err != nil {
		return err
	}

	fmt.Println(masters)
	return nil
}

func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	tablePath := fs.String("table", "", "table descriptor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tablePath == "" {
		return fmt.Errorf("-table is required")
	}

	tbl, err := metadata.LoadTable(*tablePath)
	if err != nil {
		return err
	}

	for _, col := range tbl.Columns {
		typ, err := schema.ParseType(col.Type)
		if err != nil {
			return fmt.Errorf("column %s: %w", col.Name, err)
		}
		engineType, err := schema.ToEngineType(typ, schema.TypeAttributes{
			Precision: col.Precision,
			Scale:     col.Scale,
		})
		if err != nil {
			return fmt.Errorf("column %s: %w", col.Name, err)
		}
		fmt.Printf("%s\t%s\t%s\n", col.Name, typ, engineType)
	}
	return nil
}

func runShip(args []string) error {
	fs := flag.NewFlagSet("ship", flag.ExitOnError)
	confPath := fs.String("conf", "", "job configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	conf, err := loadOverlaidConf(*confPath, "")
	if err != nil {
		return err
	}

	// positional args are name=path artifact pairs
	loc := shiplist.PathLocator{}
	var deps []string
	for _, arg := range fs.Args() {
		name, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid artifact %q, want name=path", arg)
		}
		loc[name] = path
		deps = append(deps, name)
	}

	if err := shiplist.AddDependencies(conf, loc, deps...); err != nil {
		return err
	}

	for _, entry := range conf.StringCollection(shiplist.ShipFilesKey) {
		fmt.Println(entry)
	}
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	confPath := fs.String("conf", "", "job configuration file")
	tablePath := fs.String("table", "", "table descriptor to overlay")
	timeout := fs.Duration("timeout", 5*time.Second, "how long to wait for a ready connection")
	if err := fs.Parse(args); err != nil {
		return err
	}

	conf, err := loadOverlaidConf(*confPath, *tablePath)
	if err != nil {
		return err
	}

	client, err := cluster.New(&cluster.Config{Conf: conf})
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn := client.Conn()
	for state := conn.GetState(); state != connectivity.Ready; state = conn.GetState() {
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("cluster %s not reachable within %s", client.ServiceID(), *timeout)
		}
	}

	log.Info().Str("masters", client.ServiceID()).Msg("Cluster reachable")
	return nil
}
