package environment

import "strings"

// Environment represents the application runtime environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a raw environment string, including common short forms like
// "dev", "stage" and "prod", to an Environment. Unknown values fall back to
// Development so a misconfigured process never silently runs with
// production settings.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) String() string { return string(e) }
