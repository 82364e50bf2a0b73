package sourcefile

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/Azhovan/configtoml"
	"github.com/rs/zerolog"
)

// DefaultName is the provider name used when Options.Name is empty.
const DefaultName = "TOMLProvider"

// Options configures file provider behavior.
type Options struct {
	// Name identifies the provider in descriptions and logs. Default: DefaultName.
	Name string

	// Parsing controls bytes decoding and secret marking.
	Parsing configtoml.ParsingOptions

	// AllowMissing: if true, a missing file yields an empty snapshot. Default: false (error).
	AllowMissing bool

	// Logger receives load and reload events. Default: disabled.
	Logger *zerolog.Logger
}

// Provider serves lookups from the most recently loaded snapshot of a TOML file.
// Safe for concurrent use.
type Provider struct {
	path   string
	opts   Options
	logger zerolog.Logger

	current atomic.Pointer[configtoml.Snapshot]

	mu     sync.Mutex // Serializes reloads
	digest [sha256.Size]byte
}

// New reads path and builds the first snapshot.
// Returns an error if the file cannot be read (unless AllowMissing) or does not parse.
func New(ctx context.Context, path string, opts Options) (*Provider, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	p := &Provider{
		path:   path,
		opts:   opts,
		logger: logger.With().Str("provider", opts.Name).Str("path", path).Logger(),
	}

	data, err := p.read(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := configtoml.NewSnapshot(data, opts.Name, opts.Parsing)
	if err != nil {
		return nil, fmt.Errorf("parse TOML file %s: %w", path, err)
	}

	p.digest = sha256.Sum256(data)
	p.current.Store(snap)
	p.logger.Debug().Int("values", snap.Len()).Msg("configuration loaded")
	return p, nil
}

// Reload re-reads the file and swaps in a new snapshot if its content changed.
// Reports whether a new snapshot was installed. On error the previous snapshot stays active.
func (p *Provider) Reload(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := p.read(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("reload failed, keeping previous configuration")
		return false, err
	}

	digest := sha256.Sum256(data)
	if digest == p.digest {
		p.logger.Debug().Msg("configuration unchanged")
		return false, nil
	}

	snap, err := configtoml.NewSnapshot(data, p.opts.Name, p.opts.Parsing)
	if err != nil {
		err = fmt.Errorf("parse TOML file %s: %w", p.path, err)
		p.logger.Warn().Err(err).Msg("reload failed, keeping previous configuration")
		return false, err
	}

	p.digest = digest
	p.current.Store(snap)
	p.logger.Info().Int("values", snap.Len()).Msg("configuration reloaded")
	return true, nil
}

func (p *Provider) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) && p.opts.AllowMissing {
			p.logger.Debug().Msg("config file not found, using empty configuration")
			return []byte{}, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("required config file not found: %s: %w", p.path, err)
		}
		return nil, fmt.Errorf("read config file %s: %w", p.path, err)
	}
	return data, nil
}

// Snapshot returns the active snapshot.
func (p *Provider) Snapshot() *configtoml.Snapshot {
	return p.current.Load()
}

// Lookup reads key from the active snapshot.
func (p *Provider) Lookup(key configtoml.AbsoluteKey, typ configtoml.ConfigType) (configtoml.LookupResult, error) {
	return p.Snapshot().Lookup(key, typ)
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return p.opts.Name
}

// Path returns the file the provider reads.
func (p *Provider) Path() string {
	return p.path
}

// String describes the active snapshot.
func (p *Provider) String() string {
	return p.Snapshot().String()
}

// DebugString lists the active snapshot's values with secrets redacted.
func (p *Provider) DebugString() string {
	return p.Snapshot().DebugString()
}
