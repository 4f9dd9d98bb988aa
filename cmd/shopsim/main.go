// Package main provides shopsim, a persona-driven shopping session simulator.
//
// A persona (from a YAML file or a guided prompt) is turned into a short plan of
// shopping tasks, either by a language model or by a fixed rule table, and the
// plan is then acted out in a real browser against a storefront.
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
