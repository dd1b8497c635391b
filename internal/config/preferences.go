package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PreferredFormatKey is the preference holding the format auto-detected
// structured data is rewritten to.
const PreferredFormatKey = "preferred_format"

// Preferences is a key-value view over the config file that never fails:
// a missing or unreadable file reads as no preference, and write errors
// are logged and dropped.
type Preferences struct {
	path string
}

// NewPreferences returns preferences stored in the file at path.
func NewPreferences(path string) *Preferences {
	return &Preferences{path: path}
}

// Get returns the value stored under key, or "".
func (p *Preferences) Get(key string) string {
	values := p.read()
	return values[key]
}

// Set stores value under key, keeping the other keys in the file.
func (p *Preferences) Set(key, value string) {
	values := p.read()
	if values == nil {
		values = make(map[string]string)
	}
	values[key] = value
	p.write(values)
}

// Delete removes key from the file.
func (p *Preferences) Delete(key string) {
	values := p.read()
	if _, ok := values[key]; !ok {
		return
	}
	delete(values, key)
	p.write(values)
}

// PreferredFormat returns the stored format, or "" when none is set or the
// stored value is not a known format.
func (p *Preferences) PreferredFormat() string {
	f := p.Get(PreferredFormatKey)
	cfg := Config{PreferredFormat: f}
	if f == "" || cfg.Validate() != nil {
		return ""
	}
	return f
}

func (p *Preferences) read() map[string]string {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil
	}
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil
	}
	return values
}

func (p *Preferences) write(values map[string]string) {
	data, err := yaml.Marshal(values)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(p.path), 0755)
	}
	if err == nil {
		err = os.WriteFile(p.path, data, 0600)
	}
	if err != nil {
		log.Printf("WARN: preferences not saved: %v", err)
	}
}
