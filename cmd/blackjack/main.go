package main

import (
	"blackjack-table/internal/config"
	"blackjack-table/internal/console"
	"blackjack-table/internal/rng"
	"blackjack-table/pkg/playable/blackjack"
	"errors"
	"flag"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

// Version is the build version
var Version = "v0.0.0-dev"

var seed = flag.Int64("seed", 0, "seed the shuffle for a repeatable game (overrides config)")
var version = flag.Bool("version", false, "print the version and exit")

func main() {
	flag.Parse()
	if *version {
		fmt.Println(Version)
		return
	}

	setupLogger()

	ui := console.New(os.Stdin, os.Stdout, rng.Crypto{})
	ui.SetEcho(!term.IsTerminal(int(os.Stdin.Fd())))
	ui.Welcome()

	names, err := ui.PlayerNames()
	if err != nil {
		exit(err, "could not get players")
		return
	}

	game, err := blackjack.NewGame(logrus.StandardLogger(), names, gameOptions(), ui, ui)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"players": strings.Join(names, ", "),
	}).Info("starting game")

	if err := game.Run(ui); err != nil {
		exit(err, "game ended")
	}
}

func gameOptions() blackjack.Options {
	cfg := config.Instance().Game

	opts := blackjack.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.CryptoShuffle = cfg.CryptoShuffle
	opts.FreshDeckEachRound = cfg.FreshDeckEachRound

	if *seed != 0 {
		opts.Seed = *seed
		opts.CryptoShuffle = false
	}

	return opts
}

// exit treats closed input as the player walking away from the table
func exit(err error, msg string) {
	if errors.Is(err, io.EOF) {
		fmt.Println()
		return
	}

	logrus.WithError(err).Fatal(msg)
}

func setupLogger() {
	cfg := config.Instance().Log
	if lvl := cfg.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
