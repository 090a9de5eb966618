package main

import (
	"fmt"
	"os"
	"strconv"
)

// envPort returns the PORT environment variable, or 0 when it is unset.
func envPort() (int, error) {
	value := os.Getenv("PORT")
	if value == "" {
		return 0, nil
	}
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q", value)
	}
	return port, nil
}
