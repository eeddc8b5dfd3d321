package main

import (
	"github.com/maxaizer/careerboost/internal/cli"
	"os"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
