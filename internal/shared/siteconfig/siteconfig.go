package siteconfig

import (
	"encoding/json"
	"os"
	"sync"
)

// Config is the site branding document edited by HR/admin. It is loaded once
// at startup; changes on disk only take effect through an explicit Reload.
type Config struct {
	BrandName    string `json:"brand_name"`
	FooterText   string `json:"footer_text"`
	ColorPrimary string `json:"color_primary"`
	ColorSuccess string `json:"color_success"`
	ColorWarning string `json:"color_warning"`
	ColorDanger  string `json:"color_danger"`
}

func defaults() Config {
	return Config{
		BrandName:    "eLeave",
		FooterText:   "Out-of-office leave tracker",
		ColorPrimary: "#3498db",
		ColorSuccess: "#198754",
		ColorWarning: "#f39c12",
		ColorDanger:  "#e74c3c",
	}
}

type Store struct {
	mu   sync.RWMutex
	path string
	cfg  Config
}

// Load reads the config file once. A missing or corrupt file falls back to
// defaults instead of failing startup.
func Load(path string) *Store {
	s := &Store{path: path, cfg: defaults()}
	_ = s.Reload()
	return s
}

func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	cfg := defaults()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Store) Update(cfg Config) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}
