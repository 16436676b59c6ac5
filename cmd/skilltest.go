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

var generateTestsCmd = &cobra.Command{
	Use:   "generate-tests",
	Short: "Generate practical skill tests for a single CV",
	Run: func(cmd *cobra.Command, _ []string) {
		generateTests(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateTestsCmd)

	generateTestsCmd.Flags().String("cv", "", "file name of the CV to generate tests for (interactive selection when unset)")
}

func generateTests(cmd *cobra.Command) {
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

	tests, err := s.gateway.GenerateSkillTests(s.ctx, extraction, s.job)
	if err != nil {
		s.logger.Fatal("generating skill tests", zap.Error(err))
	}

	if len(tests) == 0 {
		s.logger.Info("no skills with sufficient confidence, nothing to test",
			zap.String("cv_name", doc.Name),
		)
		return
	}

	if err := printJSON(tests); err != nil {
		s.logger.Fatal("printing skill tests", zap.Error(err))
	}
}
