// Package swift implements the cloud browsing contracts for OpenStack
// Swift and Rackspace Cloud Files.
package swift

// Config configures a Swift connection.
//
// Authentication uses the account name and API key against AuthURL.
// The adapter performs no retries; transport behavior belongs to the
// vendor SDK.
type Config struct {
	// Account is the account (user) name (required).
	Account string

	// Key is the account API key or password (required).
	Key string

	// AuthURL is the authentication endpoint.
	// Defaults to DefaultAuthURL.
	AuthURL string

	// Region selects a storage region for multi-region accounts.
	// Leave empty to use the account default.
	Region string

	// ServiceNet routes storage traffic over the vendor's internal
	// service network. This is a deployment-topology hint for callers
	// running inside the vendor's data center, not a security feature.
	// Off by default.
	ServiceNet bool

	// AuthVersion is the Swift auth protocol version.
	// Zero lets the SDK guess from AuthURL.
	AuthVersion int

	// MaxListLimit is the vendor ceiling on listing page sizes.
	// Objects requests above it fail before any vendor call.
	// Zero uses DefaultMaxListLimit.
	MaxListLimit int
}

// DefaultMaxListLimit is the vendor's maximum page size for object
// listings.
const DefaultMaxListLimit = 10000

// DefaultAuthURL is the fallback v1 auth endpoint.
const DefaultAuthURL = "https://auth.api.rackspacecloud.com/v1.0"

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Account == "" {
		return &ConfigError{Field: "Account", Message: "account name is required"}
	}
	if c.Key == "" {
		return &ConfigError{Field: "Key", Message: "API key is required"}
	}
	if c.MaxListLimit < 0 {
		return &ConfigError{Field: "MaxListLimit", Message: "limit ceiling must not be negative"}
	}
	return nil
}

// authURL returns the effective auth endpoint.
func (c *Config) authURL() string {
	if c.AuthURL != "" {
		return c.AuthURL
	}
	return DefaultAuthURL
}

// maxListLimit returns the effective listing ceiling.
func (c *Config) maxListLimit() int {
	if c.MaxListLimit > 0 {
		return c.MaxListLimit
	}
	return DefaultMaxListLimit
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "swift config: " + e.Field + ": " + e.Message
}
