package structs

import "time"

type Config struct {
	Server *ServerConfig
	Cors   *CorsConfig
	Store  *StoreConfig
	Auth   *AuthConfig
}

type ServerConfig struct {
	AppName        string        // CafeQR
	Environment    string        // development, production
	Port           string        // :3001
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type StoreConfig struct {
	// Path of the flat JSON document holding all six collections.
	Path string
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	AdminUsername     string
	// Either a plain password (hashed at startup) or a pre-encoded
	// $argon2id$... hash.
	AdminPassword string
}
