package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/cli"
	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/db"
	"github.com/margdarshak/disha/internal/llm"
	"github.com/margdarshak/disha/internal/logger"
	"github.com/margdarshak/disha/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("DISHA_LOG_MODE"))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	dataPath, err := resolveDataPath()
	if err != nil {
		return err
	}
	data, warnings, err := dataset.Load(dataPath)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	for _, w := range warnings {
		log.Warn("dataset defect", "error", w)
	}

	// Transcript persistence: env var or default ~/.disha/disha.db.
	dbPath := os.Getenv("DISHA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".disha", "disha.db")
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	transcripts := repository.NewSQLiteTranscriptRepo(database)

	gen := buildGenerator(log)

	app := &cli.App{
		Data:     data,
		DataPath: dataPath,
		NewAgent: func(opts ...agent.Option) *agent.Agent {
			return agent.New(data, gen, log, opts...)
		},
		Transcripts: transcripts,
		Log:         log,
	}

	return cli.NewRootCmd(app).Execute()
}

// resolveDataPath finds the dataset: env var, ./data in the working directory
// for development, then ~/.disha for installed use.
func resolveDataPath() (string, error) {
	if p := os.Getenv("DISHA_DATA"); p != "" {
		return p, nil
	}
	if _, err := os.Stat("./data/careers.json"); err == nil {
		return "./data/careers.json", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".disha", "careers.json"), nil
}

// buildGenerator wires the text-generation chain: Gemini primary with an
// Ollama fallback. Returns nil when generation is disabled; the agent then
// delivers rule-formatted recommendations only.
func buildGenerator(log *logger.Logger) llm.Generator {
	cfg := llm.LoadConfig()
	if !cfg.Enabled {
		log.Info("text generation disabled")
		return nil
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(log)
	}

	var primary llm.Generator
	if cfg.GeminiAPIKey != "" {
		primary = llm.NewGeminiClient(cfg, observer)
	}
	secondary := llm.NewOllamaClient(cfg, observer)

	if primary == nil {
		log.Info("text generation via ollama only", "model", cfg.OllamaModel)
		return secondary
	}
	log.Info("text generation enabled", "primary", primary.Name(), "fallback", secondary.Name())
	return llm.NewFallbackGenerator(primary, secondary)
}
