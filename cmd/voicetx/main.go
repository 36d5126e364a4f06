package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/config"
	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/logger"
	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/pipeline"
	"github.com/fredrick-nadar/MumbaiHacks25-sub002/internal/recorder"
)

func main() {
	cfg := config.Load()
	log := logger.NewWithLevel(cfg.LogLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log, cfg)
	case "record":
		runRecord(log, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("TaxWise Voice Transactions CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  voicetx <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze   Analyze a voice transcript and print transactions as JSON")
	fmt.Println("  record    Analyze a transcript and submit transactions to the API")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'voicetx <command> -h' for more information on a command.")
}

// readTranscript takes the transcript from -text or, when empty, stdin.
func readTranscript(log zerolog.Logger, text string) string {
	if text != "" {
		return text
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read transcript from stdin")
	}
	return strings.TrimSpace(string(data))
}

func newAnalyzer(log zerolog.Logger, rulesPath string) *pipeline.Analyzer {
	if rulesPath == "" {
		return pipeline.NewAnalyzer()
	}
	rules, err := pipeline.LoadCategoryRules(rulesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", rulesPath).Msg("Failed to load category rules")
	}
	log.Info().Str("path", rulesPath).Int("categories", len(rules)).Msg("Loaded category rules")
	return pipeline.NewAnalyzerWithRules(rules)
}

func runAnalyze(log zerolog.Logger, cfg *config.Config) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	text := fs.String("text", "", "Transcript text (reads stdin when omitted)")
	rulesPath := fs.String("rules", cfg.RulesPath, "Optional YAML category rules file")
	fs.Parse(os.Args[2:])

	transcript := readTranscript(log, *text)
	ctx := logger.WithContext(context.Background(), log)

	analyzer := newAnalyzer(log, *rulesPath)
	transactions := analyzer.Analyze(ctx, transcript)

	if len(transactions) == 0 {
		log.Warn().Msg("Could not detect any transactions. Mention amounts and context.")
	}

	out, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode transactions")
	}
	fmt.Println(string(out))
}

func runRecord(log zerolog.Logger, cfg *config.Config) {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	text := fs.String("text", "", "Transcript text (reads stdin when omitted)")
	rulesPath := fs.String("rules", cfg.RulesPath, "Optional YAML category rules file")
	fs.Parse(os.Args[2:])

	transcript := readTranscript(log, *text)
	ctx := logger.WithContext(context.Background(), log)

	analyzer := newAnalyzer(log, *rulesPath)
	transactions := analyzer.Analyze(ctx, transcript)

	if len(transactions) == 0 {
		log.Warn().Msg("Could not detect any transactions. Nothing to record.")
		return
	}

	client := recorder.NewClient(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout)
	_, succeeded := client.RecordTransactions(ctx, transactions)

	fmt.Printf("Recorded %d of %d transaction(s).\n", succeeded, len(transactions))
	if succeeded == 0 {
		os.Exit(1)
	}
}
