package configuration

import (
	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map
// (map[key]value). The underlying error is passed through unwrapped so
// callers can distinguish a missing file from a malformed one.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	return godotenv.Read(filenames...)
}
