package main

import (
	"blackjack-table/internal/config"
	"gopkg.in/yaml.v2"
	"os"
)

// prints the default configuration so it can be saved as config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
