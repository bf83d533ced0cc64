package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"okey/internal/app"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	rounds    int
	players   int
	seed      int64
	logFormat string
	logLevel  string
)

func parseFlags() {
	flag.IntVar(&rounds, "rounds", 1, "number of rounds to simulate")
	flag.IntVar(&players, "players", 4, "players at the table (2-4)")
	flag.Int64Var(&seed, "seed", 0, "rng seed (0 = time-based)")
	flag.StringVar(&logFormat, "logFormat", "text", "log format(json or text)")
	flag.StringVar(&logLevel, "logLevel", "info", "log level(debug, info, warn, error)")
	flag.Parse()
}

func setupLogger() {
	switch logFormat {
	case "text":
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.Error("set log format error")
	}

	switch logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Error("set log level error")
	}

	log.SetOutput(os.Stdout)
}

func main() {
	parseFlags()
	setupLogger()

	if players < 2 || players > 4 {
		log.Fatalf("players must be 2-4, got %d", players)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	seats := make([]string, 4)
	names := []string{"north", "east", "south", "west"}
	for i := 0; i < players; i++ {
		seats[i] = names[i]
	}

	svc := app.NewService(rand.New(rand.NewSource(seed)))
	log.WithFields(log.Fields{"seed": seed, "players": players}).Info("Simulation start")

	for r := 0; r < rounds; r++ {
		roundID := uuid.NewString()
		round, _, err := svc.PlayRound(seats)
		if err != nil {
			log.Fatalf("round %s failed: %v", roundID, err)
		}

		rlog := log.WithField("round", roundID)
		rlog.WithFields(log.Fields{
			"indicator": round.Indicator,
			"okey":      round.Okey,
		}).Info("Indicator drawn")

		for _, seat := range round.Seats {
			entry := rlog.WithFields(log.Fields{
				"seat":       seat.Seat,
				"player":     seat.UserID,
				"leftover":   seat.Leftover,
				"double_run": seat.DoubleRun,
			})
			entry.Info("Hand scored")
			entry.Debugf("groups: %v", app.FormatGroups(seat.Groups))
		}

		winner := round.Seats[round.WinnerSeat]
		rlog.WithFields(log.Fields{
			"player":   winner.UserID,
			"seat":     winner.Seat,
			"leftover": winner.Leftover,
		}).Info("Round won")
	}
}
