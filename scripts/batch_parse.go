package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-parser/internal/config"
	"resume-parser/internal/parser"
)

// batch_parse runs the local extraction chain over every resume in a
// directory and writes one JSON record per file. No database, no remote
// services: useful for smoke-testing the pipeline against a corpus.
func main() {
	inputDir := flag.String("in", "./resumes", "directory of resume files to parse")
	outputDir := flag.String("out", "./parsed", "directory for JSON output")
	flag.Parse()

	log.Println("🚀 Starting batch parse...")

	cfg := config.Load()

	options := parser.ExtractionOptions{
		Thresholds: parser.Thresholds{
			RawContent:     cfg.Parser.CorruptionThresholdRaw,
			PersonalFields: cfg.Parser.CorruptionThresholdPersonal,
		},
		DefaultEnglishFluent: cfg.Parser.DefaultEnglishFluent,
	}

	chain := []parser.ChainEntry{
		{Strategy: &parser.EnhancedLocalStrategy{Options: options}},
		{Strategy: &parser.LegacyRegexStrategy{Options: options}},
	}
	orchestrator := parser.NewOrchestrator(chain, nil, options.Thresholds, parser.NopNotifier{})

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		log.Fatalf("❌ Failed to read input directory: %v", err)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(*inputDir, entry.Name())
		log.Printf("\n📄 Processing: %s", entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		classification, err := parser.Classify(entry.Name(), "", int64(len(data)))
		if err != nil {
			log.Printf("   ⚠️  Skipping: %v", err)
			failCount++
			continue
		}
		if classification.Format == parser.FormatImage {
			log.Printf("   ⚠️  Skipping image, OCR is not wired in batch mode")
			failCount++
			continue
		}

		record, err := orchestrator.Parse(ctx, parser.Input{
			Filename: entry.Name(),
			Data:     data,
			Format:   classification.Format,
		})
		if err != nil {
			log.Printf("   ❌ Parse failed: %v", err)
			failCount++
			continue
		}

		outPath := filepath.Join(*outputDir, jsonName(entry.Name()))
		encoded, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			log.Printf("   ❌ Failed to encode record: %v", err)
			failCount++
			continue
		}
		if err := os.WriteFile(outPath, encoded, 0644); err != nil {
			log.Printf("   ❌ Failed to write output: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Parsed via %s → %s", record.Metadata.ParsingMethod, outPath)
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Batch Summary:")
	log.Printf("   ✅ Successful: %d files", successCount)
	log.Printf("   ❌ Failed: %d files", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}

func jsonName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + ".json"
}
