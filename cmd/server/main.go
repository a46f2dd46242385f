package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"

	"github.com/qnkhuat/checkerterm/pkg"
	"github.com/qnkhuat/checkerterm/pkg/config"
)

const ShutdownTimeout = 10 * time.Second

var (
	configPath string
	listenAddr string
	binaryPath string
	hostKey    string
	logPath    string

	done = make(chan bool)
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&configPath, "config", "", "path to YAML config file, also passed to every game")
	flag.StringVar(&listenAddr, "addr", "", "host SSH server on network address (overrides config)")
	flag.StringVar(&binaryPath, "binary", "", "path to checkerterm client (overrides config)")
	flag.StringVar(&hostKey, "hostkey", "", "path to SSH host key, ephemeral when empty (overrides config)")
	flag.StringVar(&logPath, "log", "", "path to log file (overrides config)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	if listenAddr != "" {
		cfg.SSH.Addr = listenAddr
	}
	if binaryPath != "" {
		cfg.SSH.Binary = binaryPath
	}
	if hostKey != "" {
		cfg.SSH.HostKey = hostKey
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	level, _ := cfg.Level()
	logger, err := pkg.InitLog(cfg.LogFile, "server", level)
	if err != nil {
		log.Fatalf("failed to initialize log: %s", err)
	}
	defer logger.Sync()

	var args []string
	if configPath != "" {
		args = append(args, "-config", configPath)
	}
	server, err := pkg.NewServer(cfg.SSH, logger, args...)
	if err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("failed to listen on %s: %s", cfg.SSH.Addr, err)
		}
	}()
	logger.Info("server_start", zap.String("addr", cfg.SSH.Addr), zap.String("binary", cfg.SSH.Binary))
	color.New(color.FgCyan, color.Bold).Printf("checkerterm ")
	color.New(color.Faint).Printf("ssh -p %s localhost\n", portOf(cfg.SSH.Addr))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	logger.Info("server_stop", zap.Int("active", server.Active()))
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
		server.Close()
	}
}

func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
