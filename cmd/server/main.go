package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/AnjanaVP231/BMI-Calculator/internal/adapters/grpc"
	"github.com/AnjanaVP231/BMI-Calculator/internal/ports"
	"github.com/AnjanaVP231/BMI-Calculator/pkg/pb"
	"github.com/AnjanaVP231/BMI-Calculator/pkg/tlsconfig"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A missing .env file is fine; real environment variables still apply
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	config := loadConfig()
	zerolog.SetGlobalLevel(config.LogLevel)

	log.Info().Msg("starting bmi service")

	handler := grpcAdapter.NewBMIServiceHandler(ports.NewAssessor())

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if config.TLS.Enabled() {
		tlsCfg, err := tlsconfig.LoadServerTLS(config.TLS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	grpcServer := grpc.NewServer(serverOpts...)
	pb.RegisterBMIServiceServer(grpcServer, handler)

	// Enable reflection for debugging (grpcurl)
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", config.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", config.Port).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	grpcServer.GracefulStop()
	log.Info().Msg("server stopped")
}

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel zerolog.Level
	TLS      tlsconfig.Files
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "50051"
	}

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		} else {
			log.Warn().Str("log_level", s).Msg("unknown LOG_LEVEL, using info")
		}
	}

	return Config{
		Port:     port,
		LogLevel: level,
		TLS: tlsconfig.Files{
			Cert: os.Getenv("TLS_CERT"),
			Key:  os.Getenv("TLS_KEY"),
			CA:   os.Getenv("TLS_CA"),
		},
	}
}
