package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Library builds programs and keeps track of them so they can be
// rebuilt when shader files change on disk.
type Library struct {
	shaderer *Shaderer
	dir      string
	programs []*Program
}

// NewLibrary uses the embedded shaders, overridden by the files in dir
// when dir is not empty.
func NewLibrary(dir string) (*Library, error) {
	shaderer, err := loadShaderer(dir)
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}
	return &Library{shaderer: shaderer, dir: dir}, nil
}

func loadShaderer(dir string) (*Shaderer, error) {
	if dir == "" {
		return NewShaderer()
	}
	return NewShadererWithOverrides(os.DirFS(dir))
}

func (l *Library) Build(spec Spec) (*Program, error) {
	p, err := BuildGLProgram(l.shaderer, spec)
	if err != nil {
		return nil, err
	}
	l.programs = append(l.programs, p)
	return p, nil
}

func (l *Library) Programs() []*Program {
	return l.programs
}

// Reload re-reads the shader dir and rebuilds every program using one
// of the changed files. Programs that fail to build keep running with
// their previous version. It returns the number of rebuilt programs.
func (l *Library) Reload(changed []string) int {
	logger := slog.With(slog.String("module", "shaders"))

	shaderer, err := loadShaderer(l.dir)
	if err != nil {
		logger.Error("could not reload shaders", slog.Any("err", err))
		return 0
	}
	l.shaderer = shaderer

	names := make([]string, len(changed))
	for i, c := range changed {
		names[i] = filepath.Base(c)
	}

	reloaded := 0
	for _, p := range l.programs {
		if !p.Spec.Uses(names) {
			continue
		}
		err := p.Rebuild(l.shaderer)
		if err != nil {
			logger.Error(fmt.Sprintf("keeping previous %s", p.Spec), slog.Any("err", err))
			continue
		}
		logger.Info(fmt.Sprintf("reloaded %s", p.Spec))
		reloaded++
	}
	return reloaded
}
