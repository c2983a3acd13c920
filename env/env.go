package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	VerboseKey   = "GNFA_VERBOSE"
	PruneKey     = "GNFA_PRUNE"
	FormatKey    = "GNFA_FORMAT"
	OutputDirKey = "GNFA_OUTPUT_DIR"
)

type Environment struct {
	Verbose   bool
	Prune     bool
	Format    string
	OutputDir string
}

// Load Reads the environment, after loading files (default .env) when they exist. A missing file is
// not an error.
func Load(files ...string) (*Environment, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	e := &Environment{
		Format:    "svg",
		OutputDir: ".",
	}
	var err error
	if e.Verbose, err = lookupBool(VerboseKey); err != nil {
		return nil, err
	}
	if e.Prune, err = lookupBool(PruneKey); err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv(FormatKey); ok && v != "" {
		e.Format = v
	}
	if v, ok := os.LookupEnv(OutputDirKey); ok && v != "" {
		e.OutputDir = v
	}
	return e, nil
}

func lookupBool(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// Logger Development logger when verbose, production logger otherwise.
func (e *Environment) Logger() (*zap.Logger, error) {
	if e.Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
