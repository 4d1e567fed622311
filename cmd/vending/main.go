// Command vending evaluates a sequence of customer actions against a vending machine.
//
//	vending --catalog catalog.yaml "insert 25" "insert 25" "insert 25" "vend soda"
//
// It prints the final balance and the change owed, and exits 1 if the sequence is invalid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	vending "github.com/Azure/go-vending"
	"github.com/Azure/go-vending/catalog"
	"github.com/Azure/go-vending/flcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := catalog.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	flags := flag.NewFlagSet("vending", flag.ContinueOnError)
	flags.SetOutput(stderr)
	catalogFile := flags.String("catalog", cfg.CatalogFile, "YAML price catalog")
	strict := flags.Bool("strict", cfg.Strict, "reject items priced above the max balance")
	start := flags.Uint32("start", 0, "initial balance in cents")
	logLevel := flags.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	cfg.CatalogFile, cfg.Strict, cfg.LogLevel = *catalogFile, *strict, *logLevel

	logger := flcore.NewTextLogger(stderr, cfg.Level())
	ctx := flcore.NewContext(context.Background(), logger)

	prices, err := cfg.Load()
	if err != nil {
		logger.Error("load catalog", "error", err)
		return 2
	}
	actions, err := vending.ParseActions(flags.Args())
	if err != nil {
		logger.Error("parse actions", "error", err)
		return 2
	}
	m := vending.Create(prices)
	logger.Debug("machine built", "items", len(prices), "transitions", len(m.Transitions))

	if !vending.Cents(*start).InRange() {
		logger.Error("start balance out of range", "start", *start, "max", uint32(vending.MaxBalance))
		return 2
	}
	machine := *m
	machine.Start = vending.Cents(*start)

	session := vending.NewSession(&machine)
	err = session.ApplyAll(ctx, actions...)
	var invalid vending.ErrInvalidTransition
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(stdout, "invalid: %s\n", invalid.Error())
		return 1
	case err != nil:
		logger.Error("evaluate", "error", err)
		return 2
	}
	balance := session.Balance()
	fmt.Fprintf(stdout, "balance: %d\n", balance)
	change, err := session.Finish(ctx)
	if err != nil {
		fmt.Fprintf(stdout, "change: %s\n", err)
		return 1
	}
	fmt.Fprint(stdout, "change:")
	for _, coin := range change {
		fmt.Fprintf(stdout, " %d", coin)
	}
	fmt.Fprintln(stdout)
	return 0
}
