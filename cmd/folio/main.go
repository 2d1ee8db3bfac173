// Package main runs one data-loading session against the portfolio content service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	foliocmd "github.com/krisalay/folio-data/internal/cmd/folio"
)

func main() {
	cfg, err := foliocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := foliocmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("folio: %v", err)
	}
}
