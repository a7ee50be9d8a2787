package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/HussainAbbasDev/linkedineese/internal/client"
)

type result struct {
	Sample    string
	Chars     int
	Run       int
	ElapsedMs int64
	WallMs    int64
	OutChars  int
	Error     string
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	c := client.New(*url, &http.Client{Timeout: 180 * time.Second})
	ctx := context.Background()

	model := discoverModel(ctx, c)

	if *quality {
		runQualityMode(ctx, c, model)
		return
	}

	fmt.Printf("Benchmarking against %s using model: %s (%d runs per sample", c.BaseURL, model, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(ctx, c, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.ElapsedMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(ctx, c, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.ElapsedMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, c.BaseURL, model); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func discoverModel(ctx context.Context, c *client.Client) string {
	models, err := c.Models(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching models: %v\n", err)
		os.Exit(1)
	}
	if len(models) == 0 {
		fmt.Fprintln(os.Stderr, "No models available")
		os.Exit(1)
	}
	return models[0].ID
}

func benchmark(ctx context.Context, c *client.Client, sample Sample, run int) result {
	chars := utf8.RuneCountInString(sample.Text)

	start := time.Now()
	res, err := c.Transform(ctx, sample.Text)
	wallMs := time.Since(start).Milliseconds()

	if err != nil {
		return result{Sample: sample.Name, Chars: chars, Run: run, Error: describe(err)}
	}

	return result{
		Sample:    sample.Name,
		Chars:     chars,
		Run:       run,
		ElapsedMs: res.TimingMs,
		WallMs:    wallMs,
		OutChars:  utf8.RuneCountInString(res.Text),
	}
}

func describe(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("HTTP %d: %s", apiErr.StatusCode, apiErr.Message)
	}
	return err.Error()
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Elapsed (ms) | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-----|--------------|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %12s | %9s | %9s | %5s |\n",
				r.Sample, r.Chars, r.Run, "FAIL", "-", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %d | %12d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Run, r.ElapsedMs, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(ctx context.Context, c *client.Client, model string) {
	fmt.Printf("Quality test against %s using model: %s\n", c.BaseURL, model)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, utf8.RuneCountInString(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		res, err := c.Transform(ctx, sample.Text)
		if err != nil {
			fmt.Printf("ERR: %s\n", describe(err))
			failures++
			continue
		}

		fmt.Printf("OUT: %s\n", res.Text)
		fmt.Printf("     [%dms, %d->%d chars]\n", res.TimingMs, utf8.RuneCountInString(sample.Text), utf8.RuneCountInString(res.Text))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalElapsed int64
	var totalChars int
	minElapsed := ok[0].ElapsedMs
	maxElapsed := ok[0].ElapsedMs
	minSample := ok[0].Sample
	maxSample := ok[0].Sample

	for _, r := range ok {
		totalElapsed += r.ElapsedMs
		totalChars += r.Chars
		if r.ElapsedMs < minElapsed {
			minElapsed = r.ElapsedMs
			minSample = r.Sample
		}
		if r.ElapsedMs > maxElapsed {
			maxElapsed = r.ElapsedMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalElapsed)/float64(totalChars))
	fmt.Printf("- Min elapsed: %dms (%s)\n", minElapsed, minSample)
	fmt.Printf("- Max elapsed: %dms (%s)\n", maxElapsed, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, model string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Model:     model,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
