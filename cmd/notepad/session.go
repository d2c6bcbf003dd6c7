package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/adapters/desktop"
	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/export"
	"github.com/aretw0/notepad/pkg/notebook"
)

// session is everything a command needs: the resolved configuration, the
// backend and a notebook opened on the selected team and theme.
type session struct {
	cfg      notepad.Config
	root     string
	backend  core.Backend
	service  *core.Service
	notebook *notebook.Notebook
}

func loadConfig() (notepad.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return notepad.Config{}, "", err
	}
	root, err := notepad.FindRoot(wd)
	if errors.Is(err, platform.ErrNoRoot) {
		root = ""
	} else if err != nil {
		return notepad.Config{}, "", err
	}
	cfg, err := notepad.LoadConfig(root)
	if err != nil {
		return cfg, root, err
	}

	if flagTeam != "" {
		cfg.Team = flagTeam
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagAdapter != "" {
		cfg.Adapter = flagAdapter
	}
	if flagData != "" {
		cfg.Data = flagData
	}
	if flagShare != "" {
		cfg.Share = flagShare
	}
	return cfg, root, nil
}

// resolve makes a configured path relative to the project root.
func (s *session) resolve(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) || s.root == "" {
		return path
	}
	return filepath.Join(s.root, path)
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, root, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := slog.Default()
	s := &session{cfg: cfg, root: root}

	dataFallback := platform.DefaultDataDir()
	if root != "" {
		dataFallback = platform.MarkerDir
	}
	data := s.resolve(cfg.Data, dataFallback)

	opts := append(cfg.Options(),
		notepad.WithLogger(logger),
		notepad.WithWatcherErrorHandler(func(err error) {
			logger.Error("watcher failed", "error", err)
		}),
	)
	backend, err := notepad.Init(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Adapter, err)
	}
	s.backend = backend

	svc, err := notepad.New(data, append(opts, notepad.WithBackend(backend))...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.service = svc

	s.notebook = notebook.New(svc, notebook.Config{
		Namespace: cfg.Namespace,
		Teams:     cfg.Teams,
		Capture: export.CaptureOptions{
			Brand:      cfg.Brand,
			Background: cfg.Background,
			Settle:     export.DefaultSettle,
		},
		Export: export.Options{
			Sharer:      s.sharer(logger),
			Opener:      desktop.NewBrowser(),
			Notifier:    desktop.NewNotifier(cmd.ErrOrStderr(), logger),
			Files:       fs.NewDownloads(s.resolve(cfg.Downloads, ".")),
			Caption:     cfg.Caption,
			ComposeBase: cfg.ComposeURL,
		},
		Logger: logger,
	})
	s.notebook.Open(commandContext(cmd), cfg.Team, cfg.Theme)
	return s, nil
}

// sharer picks the native share target. A nil result selects the compose
// link.
func (s *session) sharer(logger *slog.Logger) export.Sharer {
	switch s.cfg.Share {
	case platform.ShareClipboard:
		if c := desktop.NewClipboard(); c != nil {
			return c
		}
		logger.Warn("no clipboard available, sharing via link")
	case platform.ShareSpool:
		return fs.NewSpool(s.resolve(s.cfg.Spool, "outbox"))
	case platform.ShareLink, "":
	default:
		logger.Warn("unknown share target, sharing via link", "share", s.cfg.Share)
	}
	return nil
}

func (s *session) Close() {
	if c, ok := s.backend.(core.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Default().Warn("failed to close storage", "error", err)
		}
	}
}

// mustSession opens a session or exits.
func mustSession(cmd *cobra.Command) *session {
	s, err := openSession(cmd)
	if err != nil {
		fatal("Error initializing notepad", err)
	}
	return s
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fatal("Invalid note id", err)
	}
	return id
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
