// Command sudokulogic-web serves the solver and the puzzle archive as
// a JSON API.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "svw.info/sudokulogic/internal/adapters/http"
	"svw.info/sudokulogic/internal/config"
	"svw.info/sudokulogic/internal/engine"
	"svw.info/sudokulogic/internal/storage"
	"svw.info/sudokulogic/internal/usecase"
	"svw.info/sudokulogic/internal/validator"
)

// statusWriter captures HTTP status and bytes written for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Int("bytes", sw.bytes).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	archivePath := flag.String("archive-path", "", "archive database path (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *archivePath != "" {
		cfg.ArchivePath = *archivePath
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	st, err := storage.Open(cfg.ArchivePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ArchivePath).Msg("cannot open archive")
	}
	defer st.Close()

	uc := usecase.NewService(engine.NewSolver(nil), validator.New(), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", cfg.Addr).Str("archive", cfg.ArchivePath).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
