// Package main provides a performance benchmarking tool for the typomatch CLI.
// It times the matrix command for every typology across document backends and
// worker counts, running each case several times, treating the first successful
// run as cold and averaging the rest as warm, and writes the results as CSV.
//
// Prerequisites:
// - typomatch binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the file and sqlite backends (created if missing)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the cold time and warm average of one case.
type BenchmarkResult struct {
	Typology string
	Backend  string
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir    string
	Timeout    time.Duration
	Runs       int
	Typologies []string
	Backends   []string
	Workers    []int
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:    os.Args[1],
		Timeout:    2 * time.Minute,
		Runs:       5,
		Typologies: []string{"Socionics", "Temporistics", "Psychosophia", "Amatoric"},
		Backends:   []string{"memory", "file", "sqlite"},
		Workers:    []int{1, 4, 16},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	for _, backend := range config.Backends {
		if backend == "memory" {
			continue
		}
		fmt.Printf("Seeding %s backend...\n", backend)
		cmd := exec.Command("typomatch", append([]string{"store", "init"}, backendArgs(config, backend)...)...)
		if output, err := cmd.CombinedOutput(); err != nil {
			fmt.Printf("Warning: failed to seed %s: %v\nOutput: %s\n", backend, err, string(output))
		}
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the typomatch binary exists and prepares the work dir.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("typomatch"); err != nil {
		return fmt.Errorf("typomatch binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// backendArgs returns the flags selecting a backend under the work dir.
func backendArgs(config BenchmarkConfig, backend string) []string {
	switch backend {
	case "file":
		return []string{"--backend", "file", "--data-dir", filepath.Join(config.WorkDir, "data")}
	case "sqlite":
		return []string{"--backend", "sqlite", "--db-connect", filepath.Join(config.WorkDir, "typomatch.db")}
	default:
		return []string{"--backend", backend}
	}
}

// runBenchmarks executes every typology, backend and worker combination.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d typologies, %d backends, workers %v, %d runs each, %v timeout\n",
		len(config.Typologies), len(config.Backends), config.Workers, config.Runs, config.Timeout)

	for _, typology := range config.Typologies {
		for _, backend := range config.Backends {
			for _, workers := range config.Workers {
				fmt.Printf("Running %s matrix on %s with %d workers\n", typology, backend, workers)
				cold, warm := runBenchmark(config, typology, backend, workers)
				result := BenchmarkResult{
					Typology: typology,
					Backend:  backend,
					Workers:  workers,
					ColdTime: formatSeconds(cold),
					WarmTime: averageSeconds(warm),
				}
				fmt.Printf("  Cold time: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
				results = append(results, result)
			}
		}
	}

	return results
}

// runBenchmark runs the matrix command several times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, typology, backend string, workers int) (coldTime float64, warmTimes []float64) {
	args := append([]string{"matrix", typology, "--workers", strconv.Itoa(workers)}, backendArgs(config, backend)...)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("typomatch", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks the matrix footer of the text output.
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "matrix:") &&
		strings.Contains(outputStr, "built in") &&
		strings.Contains(outputStr, "workers")
}

func formatSeconds(s float64) string {
	if s <= 0 {
		return "TIMEOUT"
	}
	return fmt.Sprintf("%.3fs", s)
}

func averageSeconds(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("typomatch_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"typology", "backend", "workers", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Typology, r.Backend, strconv.Itoa(r.Workers), r.ColdTime, r.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by typology.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	current := ""
	for _, r := range results {
		if r.Typology != current {
			current = r.Typology
			fmt.Printf("%s:\n", current)
		}
		fmt.Printf("  %-7s %2d workers: Cold: %s, Warm: %s\n", r.Backend, r.Workers, r.ColdTime, r.WarmTime)
	}
}
