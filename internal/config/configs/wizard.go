package configs

import (
	"os"
	"time"
)

// Wizard configures draft handling.
type Wizard struct {
	// MaxUploadBytes caps the total creative size of one draft.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10737418240"`
	// StrictReferences rejects submissions whose selected ids are missing
	// from the fetched reference lists.
	StrictReferences bool `env:"STRICT_REFERENCES" envDefault:"false"`
	// SpoolDir receives uploaded creatives until submission. Empty means
	// the system temporary directory.
	SpoolDir string `env:"SPOOL_DIR"`
	// SessionIdleTimeout drops sessions, their drafts and spooled files
	// after this long without a request. Zero keeps them forever.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"24h"`
	LedgerLimit        int           `env:"LEDGER_LIMIT" envDefault:"50"`
}

// SpoolPath returns the spool directory, defaulting to os.TempDir.
func (w Wizard) SpoolPath() string {
	if w.SpoolDir == "" {
		return os.TempDir()
	}
	return w.SpoolDir
}
