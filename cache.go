package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const builtinSource = "builtin"

// BankStore serves the current Responder and swaps it when the bank file changes
type BankStore struct {
	sync.RWMutex
	responder *Responder
	loadedAt  time.Time
	bankFile  string
	watcher   *fsnotify.Watcher
	logger    zerolog.Logger
}

// NewBankStore loads bankFile, or the built-in bank when bankFile is empty.
// A file-backed store watches the file's directory for changes.
func NewBankStore(bankFile string, logger zerolog.Logger) (*BankStore, error) {
	bs := &BankStore{logger: logger}

	if bankFile == "" {
		bs.responder = defaultResponder
		bs.loadedAt = time.Now()
		logger.Info().Str("source", builtinSource).Msg("bank loaded")
		return bs, nil
	}

	abs, err := filepath.Abs(bankFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bank file: %w", err)
	}
	bs.bankFile = abs

	if err := bs.Reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, editors often replace the file instead of writing it
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch bank directory: %w", err)
	}
	bs.watcher = watcher

	logger.Info().Str("source", abs).Msg("file watcher initialized")
	return bs, nil
}

func (bs *BankStore) Close() {
	if bs.watcher != nil {
		bs.watcher.Close()
	}
}

// Current returns the Responder to use for one request
func (bs *BankStore) Current() *Responder {
	bs.RLock()
	defer bs.RUnlock()
	return bs.responder
}

// Source is the bank file path, or "builtin"
func (bs *BankStore) Source() string {
	if bs.bankFile == "" {
		return builtinSource
	}
	return bs.bankFile
}

func (bs *BankStore) Info() BankInfo {
	bs.RLock()
	defer bs.RUnlock()

	info := bs.responder.Info()
	info.Source = bs.Source()
	info.LoadedAt = bs.loadedAt
	return info
}

// Reload rebuilds the Responder from the bank file. On failure the previous
// Responder stays in place. The built-in bank reloads as a no-op.
func (bs *BankStore) Reload() error {
	if bs.bankFile == "" {
		return nil
	}

	bank, err := loadBankFile(bs.bankFile)
	if err != nil {
		return err
	}

	responder, err := NewResponder(bank)
	if err != nil {
		return fmt.Errorf("failed to build responder from %s: %w", bs.bankFile, err)
	}

	bs.Lock()
	bs.responder = responder
	bs.loadedAt = time.Now()
	bs.Unlock()

	info := responder.Info()
	bs.logger.Info().
		Str("source", bs.bankFile).
		Int("faq_entries", info.FAQEntries).
		Int("intents", info.Intents).
		Int("triggers", info.Triggers).
		Msg("bank loaded")
	return nil
}

// WatchFiles reloads the bank whenever its file is written or recreated.
// It returns when ctx is done or the watcher is closed.
func (bs *BankStore) WatchFiles(ctx context.Context) {
	if bs.watcher == nil {
		return
	}
	bs.logger.Debug().Msg("file watcher started")

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-bs.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != bs.bankFile {
				continue
			}

			// Small delay to ensure file write is complete
			time.Sleep(100 * time.Millisecond)

			if err := bs.Reload(); err != nil {
				bs.logger.Error().Err(err).Str("source", bs.bankFile).Msg("bank reload failed, keeping previous bank")
				continue
			}

		case err, ok := <-bs.watcher.Errors:
			if !ok {
				return
			}
			bs.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

// loadBankFile reads a bank from JSON (.json) or YAML (anything else)
func loadBankFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("failed to load bank file: %w", err)
	}

	var bank Bank
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &bank)
	} else {
		err = yaml.Unmarshal(data, &bank)
	}
	if err != nil {
		return Bank{}, fmt.Errorf("failed to parse bank file: %w", err)
	}

	return bank, nil
}
