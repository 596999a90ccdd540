// Package main is the entry point for the tracker command line.
package main

import (
	"github.com/joho/godotenv"

	"github.com/finance-tracker/expense-tracker/internal/infra/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
