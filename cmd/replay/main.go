// Command replay loads a recorded game (content catalog + GameConfig +
// choice sequence) and drives it to completion through replay.Engine,
// printing the resulting event log. A thin wiring entrypoint over the
// library packages, grounded on the teacher's Server/cmd/nakama/main.go
// role (flag parsing, construct collaborators, hand off to the library).
package main

import (
	"flag"
	"fmt"
	"os"

	"legendcore/internal/config"
	"legendcore/internal/corelog"
	"legendcore/internal/ports"
	"legendcore/internal/replay"

	"go.uber.org/zap"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to the content catalog JSON file")
	replayPath := flag.String("replay", "", "path to the recorded replay JSON file")
	dev := flag.Bool("dev", false, "use the development (human-readable) log encoder")
	flag.Parse()

	if *replayPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -replay <path> [-catalog <path>] [-dev]")
		os.Exit(2)
	}

	log, err := corelog.New(*dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	var catalog ports.ContentCatalog
	if *catalogPath != "" {
		if err := config.LoadCatalog(*catalogPath); err != nil {
			log.Fatal("failed to load content catalog", zap.Error(err))
		}
		// Assigned only when actually loaded: a nil *JSONCatalog boxed into
		// the interface would compare non-nil and crash the hero draft's
		// "if init.Catalog != nil" guard.
		catalog = config.GetCatalog()
	}

	record, err := config.LoadReplay(*replayPath)
	if err != nil {
		log.Fatal("failed to load replay record", zap.Error(err))
	}
	record.InitialConfig.Seed = record.Seed

	engine := replay.Engine{Catalog: catalog, Log: log}
	result := engine.Run(record.InitialConfig, record.ChoiceSequence)
	if result.Fatal != nil {
		log.Error("replay halted before completion", zap.Error(result.Fatal))
	}
	if result.UnconsumedChoices > 0 {
		log.Warn("replay finished with unconsumed recorded choices", zap.Int("remaining", result.UnconsumedChoices))
	}

	out, err := corelog.Serialize(result.Game)
	if err != nil {
		log.Fatal("failed to serialize event log", zap.Error(err))
	}
	os.Stdout.Write(out)
}
