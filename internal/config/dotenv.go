package config

import (
	"errors"
	"os"

	"github.com/subosito/gotenv"
)

// loadDotEnv loads KEY=VALUE pairs from a dotenv file into the process environment.
// A missing file is not an error. Variables already present in the environment,
// even when empty, are not overwritten.
func loadDotEnv(path string) error {
	err := gotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
