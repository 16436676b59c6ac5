package cmd

import (
	"context"
	"fmt"
	"strings"

	"cv-screener/internal/ai"
	"cv-screener/internal/ai/gemini"
	"cv-screener/internal/cleaner"
	"cv-screener/internal/cv"
	"cv-screener/internal/jobs"
	"cv-screener/internal/logger"
	"cv-screener/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newOracle builds the gemini client from the config, loading the API key
// from its file source.
func newOracle(ctx context.Context, config *AIConfig, log *zap.Logger) (*gemini.Client, error) {
	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	client, err := gemini.New(ctx, apiKey, config.Gemini.Model, config.Gemini.EmbeddingModel, log)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func oracleLogger(log *zap.Logger, client *gemini.Client) *zap.Logger {
	return logger.WithCommonFields(log, "gemini", client.Model(), client.EmbeddingModel())
}

func newGateway(config *Config, client *gemini.Client, log *zap.Logger) *ai.Gateway {
	return ai.NewGateway(client, config.AI.Gemini.MaxLogLength, log)
}

// loadJob resolves the job posting from the --job flag or the config. A
// value that looks like a URL goes through the board API; anything else is
// read as a local JSON file.
func loadJob(cmd *cobra.Command, config *Config, log *zap.Logger) (*jobs.Job, error) {
	source := strings.TrimSpace(cmd.Flag("job").Value.String())

	if source == "" {
		switch {
		case config.Job.URL != "":
			source = config.Job.URL
		case config.Job.File != "":
			source = config.Job.File
		default:
			return nil, fmt.Errorf("job posting is not configured (set the --job flag or the job section in the config)")
		}
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := jobs.NewClient(log)
		if config.Job.APIURL != "" {
			client.APIURL = config.Job.APIURL
		}
		return client.Fetch(source)
	}

	return jobs.FromFile(source)
}

// session is the shared setup for the single-CV commands: everything they
// need resolved and fatally validated in one place.
type session struct {
	ctx     context.Context
	logger  *zap.Logger
	config  *Config
	gateway *ai.Gateway
	job     *jobs.Job
	corpus  *cv.Corpus
}

func newSession(cmd *cobra.Command, log *zap.Logger) *session {
	ctx := context.Background()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	corpus, err := loadCorpus(config)
	if err != nil {
		log.Fatal("loading cv corpus", zap.Error(err))
	}

	job, err := loadJob(cmd, config, log)
	if err != nil {
		log.Fatal("loading job posting", zap.Error(err))
	}

	oracle, err := newOracle(ctx, config.AI, log)
	if err != nil {
		log.Fatal("building the ai oracle", zap.Error(err))
	}

	log = oracleLogger(log, oracle)

	return &session{
		ctx:     ctx,
		logger:  log,
		config:  config,
		gateway: newGateway(config, oracle, log),
		job:     job,
		corpus:  corpus,
	}
}

// resolveCV returns the requested document, or lets the user pick one when
// no name was given. A name that is not in the corpus is a distinct failure.
func (s *session) resolveCV(name string) (*cv.Document, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		cvPrompt := promptui.Select{
			Label: "Choose a CV and press ENTER",
			Items: s.corpus.Names(),
		}

		_, selected, err := cvPrompt.Run()
		if err != nil {
			return nil, err
		}
		name = selected
	}

	return s.corpus.Get(name)
}

// extract normalizes the document text and runs the structured extraction.
func (s *session) extract(doc *cv.Document) (*cv.Extraction, error) {
	return s.gateway.ExtractCV(s.ctx, cleaner.Normalize(doc.Text))
}

func loadCorpus(config *Config) (*cv.Corpus, error) {
	dir := strings.TrimSpace(config.CVDir)
	if dir == "" {
		dir = strings.TrimSpace(viper.GetString("cv-dir"))
	}

	if dir == "" {
		return nil, fmt.Errorf("cv directory is not configured (set the --cv-dir flag or the cv-dir key in the config)")
	}

	return cv.LoadCorpus(dir)
}
