package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/qnkhuat/checkerterm/pkg"
	"github.com/qnkhuat/checkerterm/pkg/board"
	"github.com/qnkhuat/checkerterm/pkg/config"
	"github.com/qnkhuat/checkerterm/pkg/game"
)

func init() {
	log.SetFlags(0)
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	logDebug := flag.Bool("debug", false, "enable debug logging")
	themeName := flag.String("theme", "", "color theme (overrides config)")
	snapshotPath := flag.String("snapshot", "", "write a PNG of the final position here (overrides config)")
	session := flag.String("session", "", "session name shown in the side panel")
	position := flag.String("position", "", "start from a board diagram, rows separated by /")
	first := flag.String("first", "blue", "side to move first when -position is set")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start checkerterm: non-interactive terminals are not supported")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	if *snapshotPath != "" {
		cfg.Snapshot = *snapshotPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid options: %s", err)
	}

	level, _ := cfg.Level()
	if *logDebug {
		level = zapcore.DebugLevel
	}
	logger, err := pkg.InitLog(cfg.LogFile, "client", level)
	if err != nil {
		log.Fatalf("failed to initialize log: %s", err)
	}
	defer logger.Sync()

	opts := []game.Option{game.WithLogger(logger)}
	if *position != "" {
		b, err := board.Parse(*position)
		if err != nil {
			log.Fatalf("invalid position: %s", err)
		}
		side := board.Blue
		switch strings.ToLower(*first) {
		case "red":
			side = board.Red
		case "blue":
		default:
			log.Fatalf("invalid side %q: want red or blue", *first)
		}
		opts = append(opts, game.WithBoard(b, side))
	}

	if *session == "" {
		*session = petname.Generate(2, "-")
	}

	cl, err := pkg.NewClient(game.New(opts...), cfg, *session, logger)
	if err != nil {
		log.Fatalf("failed to initialize GUI: %s", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP)
	go func() {
		sig := <-sigc
		logger.Info("signal", zap.Stringer("signal", sig))
		cl.Stop()
	}()

	if err := cl.Run(); err != nil {
		logger.Error("gui_failed", zap.Error(err))
		log.Fatalf("failed to run application: %s", err)
	}

	if res := cl.Result(); res != "" {
		color.New(color.FgGreen, color.Bold).Println(res)
	} else {
		color.New(color.Faint).Println("game abandoned")
	}
}
