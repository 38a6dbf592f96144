package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/propertyhub/internal/testhelpers"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var noRedis bool
	flag.BoolVar(&noRedis, "no-redis", false, "start postgres only")
	flag.Parse()

	usage := `
Run a postgres (and redis) pair for local development of propertyhub.
Prints the DB_* and REDIS_URL values to use, then waits for a signal.

Usage:

testcontainers [-h] [-no-redis] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file providing POSTGRES_IMAGE or REDIS_IMAGE

example
  testcontainers -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	containers, err := testhelpers.StartDevContainers(context.Background(), nil, !noRedis)
	if err != nil {
		log.Fatalf("Failed to create containers: %v\n", err)
	}

	cfg := containers.Config()
	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)
	if cfg.RedisURL != "" {
		fmt.Printf("REDIS_URL=%s\n", cfg.RedisURL)
	}

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating containers...\n", sig)
	containers.Terminate(nil)
}
