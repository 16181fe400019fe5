// gmail-voice is a voice-assistant backend that routes spoken commands to
// email actions: summarizing unread mail, drafting new emails and replying to
// existing threads.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hal9000y/gmail-voice/internal/api"
	"github.com/hal9000y/gmail-voice/internal/assistant"
	"github.com/hal9000y/gmail-voice/internal/config"
	"github.com/hal9000y/gmail-voice/internal/gservice"
	"github.com/hal9000y/gmail-voice/internal/llm"
	"github.com/hal9000y/gmail-voice/internal/tool"
)

const version = "v1.0.0"

func main() {
	httpAddr := flag.String("http-addr", "localhost:8080", "HTTP server listen addr")
	envFile := flag.String("env-file", "", "Path to env file")
	enableStdio := flag.Bool("stdio", false, "Enable stdio transport for MCP")
	logFile := flag.String("log-file", "", "Path to log file, defaults to stderr")

	flag.Parse()

	closeLogs := setupLogger(*logFile)

	// run returns instead of exiting so the log file always gets closed.
	err := run(*httpAddr, *envFile, *enableStdio)
	if err != nil {
		log.Error().Err(err).Msg("exiting with error")
	}

	closeLogs()

	if err != nil {
		os.Exit(1)
	}
}

func run(httpAddr, envFile string, enableStdio bool) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("godotenv.Load failed: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load failed: %w", err)
	}

	oracle := llm.New(cfg.Oracle.URL, cfg.Oracle.APIKey)
	store := gservice.NewGmail()
	asst := assistant.New(oracle, store, cfg.Oracle.ReasoningModel, cfg.Oracle.GenerationModel)

	mcpSrv := tool.NewServer(asst, cfg.Gmail.AccessToken)
	mcpHTTP := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server { return mcpSrv }, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHTTP)
	mux.Handle("/", api.NewRouter(asst, version))

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen failed: %w", err)
	}

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGTERM, syscall.SIGINT)

	stopHTTP, errHTTPCh := serveHTTP(srv, ln)
	defer stopHTTP()

	var errStdioCh <-chan error
	if enableStdio {
		var stopStdio func()
		stopStdio, errStdioCh = serveStdio(mcpSrv)
		defer stopStdio()
	}

	select {
	case err := <-errHTTPCh:
		return fmt.Errorf("http server error: %w", err)
	case err := <-errStdioCh:
		return fmt.Errorf("stdio transport error: %w", err)
	case <-shutdown:
		log.Info().Msg("shutdown signal received")
	}

	return nil
}

func serveStdio(srv *mcp.Server) (func(), <-chan error) {
	errStdioCh := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(errStdioCh)
		log.Info().Msg("starting stdio transport")

		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			errStdioCh <- fmt.Errorf("srv.Run failed: %w", err)
		}
	}()

	return func() {
		cancel()

		<-errStdioCh
		log.Info().Msg("stdio transport stopped")
	}, errStdioCh
}

func serveHTTP(srv *http.Server, ln net.Listener) (func(), <-chan error) {
	errHTTPCh := make(chan error, 1)
	go func() {
		defer close(errHTTPCh)

		log.Info().Str("addr", ln.Addr().String()).Msg("starting http server")

		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("srv.Serve failed: %w", err)
			log.Error().Err(err).Msg("http server failed")
			errHTTPCh <- err
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("srv.Shutdown failed")
		}

		<-errHTTPCh
		log.Info().Msg("http server stopped")
	}, errHTTPCh
}

func setupLogger(logFile string) func() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		log.Logger = log.Output(f)

		return func() {
			if err := f.Close(); err != nil {
				fmt.Fprintln(os.Stderr, "log file close failed:", err)
			}
		}
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	return func() {}
}
