package main

import (
	"errors"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCheckFailed) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
