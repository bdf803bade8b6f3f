package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles are loaded in order by LoadEnvFiles.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads EnvFiles found in dir into the process environment.
// Variables already set are not overwritten. It returns the files loaded.
func LoadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range EnvFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
