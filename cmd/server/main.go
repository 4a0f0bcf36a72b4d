// squarzle-server hosts the game over SSH. Every connection plays its own
// independent game. Build:
//
//	go build -o squarzle-server ./cmd/server
//
// Usage:
//
//	./squarzle-server [-port 2222] [-key server_host_key] [-max-sessions 32] [-seed s]
//
// Connect with a mouse-capable terminal:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/game"
	"github.com/KennyNova/squarzle-next/internal/logger"
	internalssh "github.com/KennyNova/squarzle-next/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	maxSessions := flag.Int("max-sessions", 32, "Maximum concurrent games")
	seed := flag.String("seed", "", "Seed every game with this value instead of a random one")
	flag.Parse()

	log := logger.Init(os.Stderr)

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}
	reg := newRegistry(*maxSessions)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, reg, *seed, log)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; there is nothing to protect beyond a game.
		HostSigners: []gossh.Signer{signer},
	}

	log.WithFields(logrus.Fields{"port": *port, "max_sessions": *maxSessions}).Info("squarzle SSH server listening")
	log.Fatal(srv.ListenAndServe())
}

// registry bounds the number of concurrent games.
type registry struct {
	mu     sync.Mutex
	max    int
	next   int
	active map[int]string
}

func newRegistry(limit int) *registry {
	return &registry{max: limit, active: make(map[int]string)}
}

// join registers a player and returns its session id, or false when the
// server is full.
func (r *registry) join(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.active) >= r.max {
		return 0, false
	}
	r.next++
	r.active[r.next] = name
	return r.next, true
}

func (r *registry) leave(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, id)
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the player quits or disconnects.
func handleSession(s gossh.Session, reg *registry, seed string, log *logrus.Logger) {
	name := sanitizeName(s.User())
	if name == "" {
		name = "player"
	}
	entry := log.WithFields(logrus.Fields{"user": name, "remote": s.RemoteAddr().String()})

	tty, ok := internalssh.FromSession(s)
	if !ok {
		fmt.Fprintln(s, "This game needs a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	id, ok := reg.join(name)
	if !ok {
		fmt.Fprintln(s, "Server full, try again later.")
		entry.Warn("rejected: server full")
		return
	}
	defer reg.leave(id)
	entry = entry.WithField("session", id)

	// TERM must be set in the process environment while the terminfo screen
	// is built.
	termMu.Lock()
	_ = os.Setenv("TERM", termFor(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		entry.WithError(err).Error("terminal setup")
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		entry.WithError(err).Error("screen init")
		return
	}
	screen.EnableMouse()
	defer screen.Fini()

	entry.WithField("players", reg.count()).Info("session started")
	g := game.New(screen, engine.Default, seed, entry)
	if err := g.Run(s.Context()); err != nil {
		entry.WithError(err).Debug("session ended")
	}
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms lists the TERM values passed through from clients. Anything
// else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termFor picks the TERM to use from a session environment.
func termFor(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// maxNameLen is the longest player name kept, in runes.
const maxNameLen = 16

// sanitizeName drops control characters from an SSH user name and keeps at
// most maxNameLen runes.
func sanitizeName(s string) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if n == maxNameLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "squarzle server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Log.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
