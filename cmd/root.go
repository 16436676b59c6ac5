package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-screener"

	defaultTopN = 5
)

type Config struct {
	CVDir   string     `mapstructure:"cv-dir"`
	Job     *JobConfig `mapstructure:"job"`
	TopN    int        `mapstructure:"top-n"`
	Workers int        `mapstructure:"workers"`
	AI      *AIConfig  `mapstructure:"ai"`
}

type JobConfig struct {
	URL    string `mapstructure:"url"`
	File   string `mapstructure:"file"`
	APIURL string `mapstructure:"api-url"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	MaxLogLength   int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-screener ranks a directory of CVs against a job posting and reviews candidates with an LLM",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("cv-dir", "", "directory with candidate CV files")
	rootCmd.PersistentFlags().String("job", "", "job posting url or a local json file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("cv-dir", rootCmd.PersistentFlags().Lookup("cv-dir"))
}

func initConfig() {
	// Config is needed only for the screening commands. Version and help can
	// run without one.
	if rankCmd.CalledAs() == "" && evaluateCmd.CalledAs() == "" && generateTestsCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	if config.Job == nil {
		config.Job = &JobConfig{}
	}

	if config.TopN <= 0 {
		config.TopN = defaultTopN
	}

	if config.AI == nil {
		config.AI = &AIConfig{}
	}

	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	return config, nil
}
