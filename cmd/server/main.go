package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/application/service"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/config"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/infrastructure/api"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/infrastructure/handler"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/infrastructure/logger"
	"github.com/mwalczyk-dev/nbp-mcp-server/internal/infrastructure/middleware"
	"github.com/rs/zerolog"
)

const serverVersion = "1.0.0"

func main() {
	transport := flag.String("transport", "stdio", "Transport type: stdio for CLI or http for streamable HTTP")
	host := flag.String("host", "", "Host to bind to (http transport, overrides MCP_HTTP_HOST)")
	port := flag.String("port", "", "Port to bind to (http transport, overrides MCP_HTTP_PORT)")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(nil, cfg.LogLevel)

	if *host == "" {
		*host = cfg.HTTPHost
	}
	if *port == "" {
		*port = cfg.HTTPPort
	}

	// Initialize the NBP client and services
	nbpClient := api.NewNBPClient(cfg.NBPBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, log)
	rateService := service.NewRateService(nbpClient, log)
	goldService := service.NewGoldService(nbpClient, log)

	// Assemble the MCP server
	toolHandler := handler.NewToolHandler(rateService, goldService, log)
	server := mcp.NewServer(&mcp.Implementation{Name: "NBP", Version: serverVersion}, nil)
	toolHandler.RegisterTools(server)

	switch *transport {
	case "stdio":
		log.Info().Msg("Starting NBP MCP server on stdio transport")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatal().Err(err).Msg("Server terminated")
		}
	case "http":
		runHTTP(server, log, net.JoinHostPort(*host, *port))
	default:
		log.Fatal().Str("transport", *transport).Msg("Unknown transport, use 'stdio' or 'http'")
	}
}

// runHTTP serves the MCP server over the streamable HTTP transport and
// blocks until the process is signalled to stop.
func runHTTP(server *mcp.Server, log zerolog.Logger, addr string) {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	router.PathPrefix("/mcp").Handler(mcpHandler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("NBP MCP server listening on streamable HTTP transport")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
