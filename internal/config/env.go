package config

import "os"

// EnvOr returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func EnvOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
