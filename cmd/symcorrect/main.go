// Command symcorrect is the thin driver named in §6: it reads stdin lines
// until EOF or an empty line, and for each writes one output line per
// returned suggestion ("term distance count" triples separated by spaces;
// the compound path always returns exactly one). Everything here —
// argument parsing, file layout, console formatting — is deliberately
// outside the core contract (spec.md §1); symcorrect itself never touches
// stdin/stdout, and only its file loaders log, through the logger passed in.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	symcorrect "github.com/hollowstone/symcorrect"
	"github.com/hollowstone/symcorrect/verbosity"
)

// driverConfig is the optional YAML config file layered under CLI flags,
// covering both the §6 Dictionary options and the file paths the core
// doesn't own.
type driverConfig struct {
	EditDistanceMax     int    `yaml:"editDistanceMax"`
	Verbose             int    `yaml:"verbose"`
	EnableCompoundCheck bool   `yaml:"enableCompoundCheck"`
	CountThreshold      int64  `yaml:"countThreshold"`
	NoiseMinCount       int64  `yaml:"noiseMinCount"`
	NoiseMinShortLength int    `yaml:"noiseMinShortLength"`
	Language            string `yaml:"language"`
	FrequencyFile       string `yaml:"frequencyFile"`
	BigramFile          string `yaml:"bigramFile"`
	CorpusFile          string `yaml:"corpusFile"`
}

func defaultDriverConfig() driverConfig {
	opts := symcorrect.DefaultOptions()
	return driverConfig{
		EditDistanceMax:     opts.EditDistanceMax,
		Verbose:             int(opts.Verbose),
		EnableCompoundCheck: opts.EnableCompoundCheck,
		CountThreshold:      opts.CountThreshold,
		NoiseMinCount:       opts.NoiseMinCount,
		NoiseMinShortLength: opts.NoiseMinShortLength,
		Language:            "en",
		FrequencyFile:       "frequency_en.txt",
	}
}

func loadDriverConfig(path string) (driverConfig, error) {
	cfg := defaultDriverConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		freqPath   = flag.String("freq", "", "path to a frequency dictionary file (overrides config)")
		bigramPath = flag.String("bigram", "", "path to a bigram frequency file (overrides config)")
		corpusPath = flag.String("corpus", "", "path to a free-text corpus file (overrides config)")
		language   = flag.String("language", "", "dictionary language tag (overrides config)")
		bench      = flag.Bool("bench", false, "print dictionary stats and one sample lookup, then exit")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := loadDriverConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}
	if *freqPath != "" {
		cfg.FrequencyFile = *freqPath
	}
	if *bigramPath != "" {
		cfg.BigramFile = *bigramPath
	}
	if *corpusPath != "" {
		cfg.CorpusFile = *corpusPath
	}
	if *language != "" {
		cfg.Language = *language
	}

	opts := symcorrect.Options{
		EditDistanceMax:     cfg.EditDistanceMax,
		Verbose:             verbosity.Verbosity(cfg.Verbose),
		EnableCompoundCheck: cfg.EnableCompoundCheck,
		CountThreshold:      cfg.CountThreshold,
		NoiseMinCount:       cfg.NoiseMinCount,
		NoiseMinShortLength: cfg.NoiseMinShortLength,
	}

	dict, err := symcorrect.NewDictionary(opts)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	start := time.Now()
	if cfg.FrequencyFile != "" {
		if err := dict.LoadFrequencyFile(cfg.FrequencyFile, cfg.Language, 0, 1, logger); err != nil {
			logger.Fatal("failed to load frequency dictionary", zap.Error(err))
		}
	}
	if cfg.CorpusFile != "" {
		if err := dict.LoadCorpusFile(cfg.CorpusFile, cfg.Language, logger); err != nil {
			logger.Fatal("failed to load corpus", zap.Error(err))
		}
	}
	if cfg.BigramFile != "" {
		if err := dict.LoadBigramFile(cfg.BigramFile, cfg.Language, logger); err != nil {
			logger.Fatal("failed to load bigram dictionary", zap.Error(err))
		}
	}
	logger.Info("dictionary loaded",
		zap.Int("wordCount", dict.WordCount(cfg.Language)),
		zap.Int("entryCount", dict.EntryCount(cfg.Language)),
		zap.Int("maxLength", dict.MaxLength(cfg.Language)),
		zap.Duration("took", time.Since(start)),
	)

	if *bench {
		runBench(dict, cfg.Language, opts.EditDistanceMax)
		return
	}

	runDriver(dict, cfg.Language, opts)
}

// runBench adapts go-symspell's own cmd/benchmark probe: a quick manual
// sanity check against a loaded dictionary, not a testing.B benchmark.
func runBench(dict *symcorrect.Dictionary, language string, editDistanceMax int) {
	fmt.Println("maxLength:", dict.MaxLength(language))
	fmt.Println("entryCount:", dict.EntryCount(language))
	fmt.Println("wordCount:", dict.WordCount(language))

	suggestions, err := dict.Lookup(language, "test", editDistanceMax)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lookup failed:", err)
		return
	}
	for _, s := range suggestions {
		fmt.Println("--------------")
		fmt.Printf("     term: %s\n", s.Term)
		fmt.Printf(" distance: %d\n", s.Distance)
		fmt.Printf("    count: %d\n", s.Count)
	}
}

// runDriver implements the §6 line-oriented driver: read stdin lines until
// EOF or an empty line, write one output line per returned suggestion.
func runDriver(dict *symcorrect.Dictionary, language string, opts symcorrect.Options) {
	scanner := bufio.NewScanner(os.Stdin)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}

		if opts.EnableCompoundCheck {
			suggestion, err := dict.LookupCompound(language, line, opts.EditDistanceMax)
			if err != nil {
				fmt.Fprintln(os.Stderr, "lookup failed:", err)
				continue
			}
			fmt.Fprintln(writer, formatTriple(suggestion))
			continue
		}

		suggestions, err := dict.Lookup(language, strings.TrimSpace(line), opts.EditDistanceMax)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lookup failed:", err)
			continue
		}
		for _, s := range suggestions {
			fmt.Fprintln(writer, formatTriple(s))
		}
	}
}

func formatTriple(s *symcorrect.Suggestion) string {
	return fmt.Sprintf("%s %d %d", s.Term, s.Distance, s.Count)
}
