// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the directories and OCR settings shared by the tools.
// Command line flags are expected to override these.
type Config struct {
	Src       string
	CropOut   string
	SmartOut  string
	Extract   string
	Figures   string
	Tesseract string
	Lang      string
	// EnvPath is the .env file that was read, if any
	EnvPath string
}

// envPath finds the .env file to read: one next to the executable,
// or failing that the file named by MATHSHEET_ENV
func envPath() string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), ".env")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if p := os.Getenv(envFile); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadConfig reads the configuration from the environment, after
// loading any .env file found. Variables already set in the
// environment take precedence over the .env file.
func LoadConfig() Config {
	p := envPath()
	if p != "" {
		_ = godotenv.Load(p)
	}
	return configFromEnv(p)
}

// LoadConfigFile is like LoadConfig but reads only the given .env
// file and the environment
func LoadConfigFile(path string) (Config, error) {
	err := godotenv.Load(path)
	if err != nil {
		return Config{}, err
	}
	return configFromEnv(path), nil
}

func configFromEnv(p string) Config {
	return Config{
		Src:       getEnv(envSrc, defaultSrc),
		CropOut:   getEnv(envOut, defaultCropOut),
		SmartOut:  getEnv(envSmartOut, defaultSmartOut),
		Extract:   getEnv(envExtract, defaultExtractOut),
		Figures:   getEnv(envFigures, defaultFigures),
		Tesseract: getEnv(envTesseract, defaultTesseract),
		Lang:      getEnv(envLang, defaultLang),
		EnvPath:   p,
	}
}
