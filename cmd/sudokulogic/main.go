// Command sudokulogic loads a puzzle from a delimited text file (or an
// 81-character grid string), solves it by pure logical deduction, and
// prints the result. It can additionally render the final board to a
// PNG and record the run in the archive database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"svw.info/sudokulogic/internal/config"
	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/engine"
	"svw.info/sudokulogic/internal/gridio"
	"svw.info/sudokulogic/internal/ports"
	"svw.info/sudokulogic/internal/render"
	"svw.info/sudokulogic/internal/storage"
)

func main() {
	inPath := flag.String("in", "", "path to a comma-delimited 9x9 grid file")
	gridStr := flag.String("grid", "", "puzzle as an 81-character string ('.' or '0' for blanks)")
	imgOut := flag.String("img", "", "write the final board as a PNG to this path")
	archive := flag.Bool("archive", false, "record the puzzle and outcome in the archive database")
	name := flag.String("name", "", "name to store with an archived puzzle")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *imgOut != "" {
		cfg.ImageOut = *imgOut
	}
	setupLogging(cfg.LogLevel)

	board, err := loadBoard(*inPath, *gridStr)
	if err != nil {
		log.Error().Err(err).Msg("cannot load puzzle")
		os.Exit(2)
	}

	ctx := context.Background()
	givens := board.Grid()
	res := engine.New(board, nil).Solve(ctx)

	term := render.NewTerminal(os.Stdout)
	if err := term.Render(res.Board); err != nil {
		log.Error().Err(err).Msg("render failed")
	}
	log.Info().
		Stringer("outcome", res.Outcome).
		Int("assignments", res.Stats.Assignments).
		Int("eliminations", res.Stats.Eliminations).
		Int("rounds", res.Stats.Rounds).
		Dur("took", res.Stats.Duration).
		Msg("done")
	if res.Outcome == ports.Failed {
		log.Warn().Msg("the given digits are contradictory")
	}

	if cfg.ImageOut != "" {
		if err := render.NewPNG(cfg.ImageOut).Render(res.Board); err != nil {
			log.Error().Err(err).Str("path", cfg.ImageOut).Msg("image render failed")
		} else {
			log.Info().Str("path", cfg.ImageOut).Msg("image written")
		}
	}

	if *archive {
		if err := archiveRun(ctx, cfg.ArchivePath, *name, givens, res); err != nil {
			log.Error().Err(err).Msg("archive failed")
		}
	}

	if res.Outcome != ports.Solved {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func loadBoard(inPath, gridStr string) (*domain.Board, error) {
	switch {
	case inPath != "":
		return gridio.Load(inPath)
	case gridStr != "":
		return gridio.Parse(gridStr)
	default:
		return nil, fmt.Errorf("one of -in or -grid is required")
	}
}

func archiveRun(ctx context.Context, dbPath, name string, givens [9][9]uint8, res ports.Result) error {
	st, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	p := &domain.Puzzle{
		Name:    name,
		Givens:  givens,
		Final:   res.Board.Grid(),
		Outcome: res.Outcome.String(),
	}
	if err := st.Save(ctx, p); err != nil {
		return err
	}
	log.Info().Str("id", p.ID).Msg("archived")
	return nil
}
