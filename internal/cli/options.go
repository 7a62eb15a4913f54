package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Store kinds accepted by --store.
const (
	StoreNone   = ""
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Env is what a command reads from and writes to. Tests swap it for in-memory versions.
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	// TTY enables colours and glamour rendering; nil means plain output.
	TTY *bool
}

// DefaultEnv uses the OS filesystem and standard streams.
func DefaultEnv() Env {
	return Env{Fs: afero.NewOsFs(), Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e Env) isTTY() bool {
	if e.TTY != nil {
		return *e.TTY
	}
	return false
}

// LogOptions configure the application logger.
type LogOptions struct {
	Level string
	// File receives JSON records in addition to the text output on Stderr.
	File string
}

// StoreOptions select where traces are kept.
type StoreOptions struct {
	Kind      string
	Dir       string
	RedisAddr string
	RedisDB   int
}

// RunOptions configure `ribbon run`.
type RunOptions struct {
	DefinitionPath string
	Word           string
	MaxSteps       int
	JSON           bool
	Quiet          bool
	Report         bool
	Store          StoreOptions
	Log            LogOptions
}

// GraphOptions configure `ribbon graph`.
type GraphOptions struct {
	DefinitionPath string
	// Word, when set, is run and its path is overlaid on the graph.
	Word string
	// Format is "mermaid" (default) or "yaml", which prints the normalized definition.
	Format string
	Log    LogOptions
}

// ServeOptions configure `ribbon serve`.
type ServeOptions struct {
	Addr     string
	MaxSteps int
	// MachineLabels are the machine names that get their own metrics series.
	MachineLabels []string
	Store         StoreOptions
	Log           LogOptions
}
