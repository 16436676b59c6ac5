package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"cv-screener/internal/ai"
	"cv-screener/internal/jobs"
	"cv-screener/internal/logger"
	"cv-screener/internal/screening"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptEvaluate = "Evaluate a candidate"
	PromptDump     = "Dump ranking to file"
	PromptBack     = "back"
	PromptExit     = "Exit"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptEvaluate, PromptDump, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every CV in the corpus against the job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().IntP("top-n", "n", 0, "how many top candidates to show")
	rankCmd.Flags().IntP("workers", "w", 0, "how many CVs to score concurrently")

	viper.BindPFlag("top-n", rankCmd.Flags().Lookup("top-n"))
	viper.BindPFlag("workers", rankCmd.Flags().Lookup("workers"))
}

func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-screener", zap.String("version", version))

	corpus, err := loadCorpus(config)
	if err != nil {
		logger.Fatal("loading cv corpus", zap.Error(err))
	}

	if corpus.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no CVs found in the corpus directory"))
		return
	}

	logger.Info("loaded cv corpus", zap.Int("count", corpus.Len()))

	job, err := loadJob(cmd, config, logger)
	if err != nil {
		logger.Fatal("loading job posting", zap.Error(err))
	}

	logger.Info("loaded job posting", zap.String("title", job.Title), zap.Int("skill_tags", len(job.Skills)))

	oracle, err := newOracle(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building the ai oracle", zap.Error(err))
	}

	logger = oracleLogger(logger, oracle)
	gateway := newGateway(config, oracle, logger)

	screener := screening.New(gateway, oracle, config.Workers, logger)

	results, err := screener.Rank(ctx, job, corpus)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	top := results
	if config.TopN < len(top) {
		top = top[:config.TopN]
	}

	logger.Info("ranking finished",
		zap.Int("scored", len(results)),
		zap.Int("shown", len(top)),
	)

	for i, candidate := range top {
		logger.Info("ranked candidate",
			zap.Int("rank", i+1),
			zap.String("cv_name", candidate.Name),
			zap.Float64("score", candidate.FinalScore),
		)
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, gateway, job, top, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, gateway *ai.Gateway, job *jobs.Job, top []*screening.ScoredCandidate, logger *zap.Logger) error {
	switch action {
	case PromptEvaluate:
		return evaluateFromRanking(ctx, gateway, job, top)
	case PromptDump:
		filename, err := dumpToTmpFile(top)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumped ranking to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// evaluateFromRanking reuses the extraction captured during ranking, so the
// deep review costs a single extra oracle call.
func evaluateFromRanking(ctx context.Context, gateway *ai.Gateway, job *jobs.Job, top []*screening.ScoredCandidate) error {
	items := make([]string, 0, len(top)+1)
	for i, candidate := range top {
		items = append(items, fmt.Sprintf("%d. %s (%.3f)", i+1, candidate.Name, candidate.FinalScore))
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	candidate := top[idx]

	result, err := gateway.Evaluate(ctx, job, candidate.Extraction, candidate.Name)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", candidate.Name, err)
	}

	return printJSON(result.Payload())
}

func dumpToTmpFile(results []*screening.ScoredCandidate) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}

	file, err := os.CreateTemp("", app+"-ranking-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", err
	}

	return file.Name(), nil
}

func printJSON(payload any) error {
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(pretty))
	return nil
}
