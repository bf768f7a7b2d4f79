package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable and converts it to T, falling back to
// defaultValue when the variable is unset or empty.
func GetEnv[T string | int | bool](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

// GetRequiredEnv is GetEnv without a fallback: it exits the process when the
// variable is missing.
func GetRequiredEnv[T string | int | bool](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[T](envVar, envValue)
}

func parseEnv[T string | int | bool](envVar, envValue string) T {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(envValue).(T)
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not an integer", envVar, envValue)
		}
		return any(intValue).(T)
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' cannot be converted to bool", envVar, envValue)
		}
		return any(boolValue).(T)
	}
	panic(fmt.Sprintf("unsupported environment variable type for %s", envVar))
}
