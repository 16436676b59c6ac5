package cmd

import (
	"errors"
	"log"

	"cv-screener/internal/cv"
	"cv-screener/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run a deep review of a single CV against the job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().String("cv", "", "file name of the CV to review (interactive selection when unset)")
}

func evaluate(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	s := newSession(cmd, logger)

	doc, err := s.resolveCV(cmd.Flag("cv").Value.String())
	if err != nil {
		if errors.Is(err, cv.ErrNotFound) {
			s.logger.Fatal("cv with given name not found",
				zap.Error(err),
				zap.Strings("existing cv names", s.corpus.Names()),
			)
		}
		s.logger.Fatal("resolving cv", zap.Error(err))
	}

	extraction, err := s.extract(doc)
	if err != nil {
		s.logger.Fatal("extracting cv", zap.Error(err))
	}

	result, err := s.gateway.Evaluate(s.ctx, s.job, extraction, doc.Name)
	if err != nil {
		s.logger.Fatal("evaluating cv", zap.Error(err))
	}

	if err := printJSON(result.Payload()); err != nil {
		s.logger.Fatal("printing evaluation", zap.Error(err))
	}
}
