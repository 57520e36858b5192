package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("MINEFIELD_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
