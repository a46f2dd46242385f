package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/checkerterm/pkg/config"
)

// Server hands every ssh session its own checkerterm process on a pty
type Server struct {
	*ssh.Server
	Binary string
	Args   []string // passed to every game before -session

	log    *zap.Logger
	active int64
}

func NewServer(cfg config.SSH, log *zap.Logger, args ...string) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		Binary: cfg.Binary,
		Args:   args,
		log:    log,
	}
	s.Server = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
		// Both players share the terminal, so anyone may sit down
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenge gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
	}

	if cfg.HostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
			return nil, fmt.Errorf("load host key: %w", err)
		}
	} else {
		signer, err := ephemeralSigner()
		if err != nil {
			return nil, err
		}
		s.AddHostKey(signer)
	}
	return s, nil
}

func ephemeralSigner() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("host key signer: %w", err)
	}
	return signer, nil
}

// Active is the number of sessions currently playing
func (s *Server) Active() int {
	return int(atomic.LoadInt64(&s.active))
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	name := petname.Generate(2, "-")
	log := s.log.With(zap.String("session", name), zap.String("user", sess.User()), zap.Stringer("remote", sess.RemoteAddr()))
	atomic.AddInt64(&s.active, 1)
	defer atomic.AddInt64(&s.active, -1)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	args := append(append([]string{}, s.Args...), "-session", name)
	cmd := exec.CommandContext(cmdCtx, s.Binary, args...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Error("session_start_failed", zap.Error(err))
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Info("session_start", zap.Int("pid", cmd.Process.Pid))

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Debug("resize_failed", zap.Error(err))
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	status := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		} else {
			status = 1
		}
	}
	log.Info("session_end", zap.Int("status", status))
	sess.Exit(status)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
