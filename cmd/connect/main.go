package main

import (
	"fmt"
	"os"

	"github.com/ardanlabs/connect4/cmd/connect/config"
	"github.com/ardanlabs/connect4/foundation/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	depth      int
	logPath    string
	debugLog   bool
	chat       bool
	model      string
	sound      bool
	state      string
	first      string
	imageFile  string
	configFile string

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect 4 against a negamax automated player",
	Long: `Connect 4 in the terminal against an automated player that searches the
game tree with negamax and alpha-beta pruning.

Run without a sub command to start a game.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.Log.Path, cfg.Log.Debug, "connect")
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

var moveCmd = &cobra.Command{
	Use:   "move <state>",
	Short: "Print the column the automated player picks for a board",
	Long: `Print the column the automated player picks for a board.

The state is 42 marker characters, row by row from the top: '0' empty,
'1' Blue and '2' Red. The player with fewer markers moves next.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <state>",
	Short: "Render a board as a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "connect.yaml", "Path to the YAML configuration")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 0, "Search depth in plies")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Log file path, empty string disables logging")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&first, "first", "", "Player going first: Blue or Red")

	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&chat, "chat", false, "Enable LLM commentary")
		cmd.Flags().StringVar(&model, "model", "", "Model used for the commentary")
		cmd.Flags().BoolVar(&sound, "sound", false, "Speak the commentary")
		cmd.Flags().StringVar(&state, "state", "", "Board to start from")
	}

	snapshotCmd.Flags().StringVarP(&imageFile, "output", "o", "board.png", "Image file to write")
	configCmd.Flags().StringVarP(&configFile, "output", "o", "connect.yaml", "Configuration file to write")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the flags that were
// set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("depth") {
		c.Search.Depth = depth
	}
	if flags.Changed("log") {
		c.Log.Path = logPath
	}
	if flags.Changed("debug") {
		c.Log.Debug = debugLog
	}
	if flags.Changed("first") {
		c.Players.First = first
	}
	if flags.Changed("chat") {
		c.Commentary.Enabled = chat
	}
	if flags.Changed("model") {
		c.Commentary.Model = model
	}
	if flags.Changed("sound") {
		c.Commentary.Sound = sound
	}

	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
