package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/ai"
	"github.com/ardanlabs/connect4/cmd/connect/board"
	"github.com/ardanlabs/connect4/cmd/connect/config"
	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runPlay(cmd *cobra.Command, args []string) error {

	// -------------------------------------------------------------------------
	// Construct the commentary support if asked for

	var commentator game.Commentator
	var snd board.Sound

	if cfg.Commentary.Enabled {
		log.Info("startup", zap.String("status", "connecting to llm"), zap.String("system", cfg.Commentary.System), zap.String("model", cfg.Commentary.Model))

		chatter, err := ai.CreateChatter(cfg.Commentary.System, cfg.Commentary.Model)
		if err != nil {
			return fmt.Errorf("create chatter: %w", err)
		}

		aiAPI, err := ai.New(chatter, log)
		if err != nil {
			return fmt.Errorf("new ai: %w", err)
		}
		defer aiAPI.Close()

		if cfg.Commentary.Sound {
			aiAPI.TurnSoundOnOff()
		}

		commentator = aiAPI
		snd = aiAPI
	}

	// -------------------------------------------------------------------------
	// Create the game

	g, err := newGame(cfg, commentator)
	if err != nil {
		return err
	}

	if state != "" {
		g.SetStateString(state)
	}

	// -------------------------------------------------------------------------
	// Create the board and initialize the display

	b, err := board.New(g, snd, nil)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	b.SetSound(cfg.Commentary.Enabled && cfg.Commentary.Sound)

	// -------------------------------------------------------------------------
	// Start handling board input

	<-b.Run()

	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	c := cfg
	if c.Players.First == "" {
		c.Players.First = config.PlayerBlue
	}

	g, err := newGame(c, nil)
	if err != nil {
		return err
	}

	bs := g.SetStateString(args[0])
	data, blue, red := g.BoardData()

	p := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	fmt.Fprint(out, data)
	p.Fprintf(out, "markers: blue %d red %d\n", blue, red)

	if bs.GameOver {
		fmt.Fprintln(out, bs.GameMessage)
		return nil
	}

	search, err := c.SearchConfig()
	if err != nil {
		return err
	}

	sr, err := engine.NewSearcher(search)
	if err != nil {
		return fmt.Errorf("new searcher: %w", err)
	}

	d := sr.Best(engine.ParseState(g.StateString()), g.CurrentPlayer())

	scores := make([]string, 0, engine.Cols)
	for col, score := range d.Scores {
		if score == engine.NoScore {
			scores = append(scores, fmt.Sprintf("%d:-", col+1))
			continue
		}
		scores = append(scores, p.Sprintf("%d:%d", col+1, score))
	}

	p.Fprintf(out, "turn:    %s\n", bs.Turn)
	p.Fprintf(out, "column:  %d\n", d.Column+1)
	p.Fprintf(out, "score:   %d\n", d.Score)
	p.Fprintf(out, "scores:  %s\n", strings.Join(scores, " "))
	p.Fprintf(out, "nodes:   %d\n", d.Stats.Nodes)
	p.Fprintf(out, "cutoffs: %d\n", d.Stats.Cutoffs)

	log.Info("move",
		zap.String("state", g.StateString()),
		zap.Stringer("turn", bs.Turn),
		zap.Int("column", d.Column+1),
		zap.Int("score", d.Score),
		zap.Int("nodes", d.Stats.Nodes))

	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s := engine.ParseState(args[0])

	img, err := ai.GenerateImage(s)
	if err != nil {
		return fmt.Errorf("generate image: %w", err)
	}

	if err := os.WriteFile(imageFile, img, 0644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	log.Info("snapshot", zap.String("state", s.String()), zap.String("file", imageFile))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", imageFile)

	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := cfg.Save(configFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configFile)

	return nil
}

// =============================================================================

// newGame constructs the game from the configuration.
func newGame(c config.Config, commentator game.Commentator) (*game.Board, error) {
	search, err := c.SearchConfig()
	if err != nil {
		return nil, err
	}

	var automated []game.Player
	for _, p := range []game.Player{game.Players.Blue, game.Players.Red} {
		if c.IsAutomated(p.String()) {
			automated = append(automated, p)
		}
	}

	// A zero first player is picked at random by the game.
	var first game.Player
	if c.Players.First != "" {
		if first, err = game.ParsePlayer(c.Players.First); err != nil {
			return nil, err
		}
	}

	settings := game.Settings{
		Search:      search,
		Automated:   automated,
		First:       first,
		Commentator: commentator,
		Log:         log,
	}

	g, err := game.New(settings)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	return g, nil
}
