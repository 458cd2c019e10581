package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// Cache backends.
const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
	cacheBackendBolt   = "bolt"
)

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `envconfig:"HTTP_SERVER_ADDRESS" default:"0.0.0.0:3001"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// HTTPRequestTimeout - timeout for handling a single http request
	HTTPRequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"60s"`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:"0.0.0.0:9090"`

	// RPCURL - json-rpc endpoint of the chain node
	RPCURL string `envconfig:"RPC_URL" default:"https://rpc-amoy.polygon.technology"`

	// ContractAddress - address of the registry contract (required)
	ContractAddress string `envconfig:"CONTRACT_ADDRESS"`

	// RPCTimeout - timeout for a single rpc call
	RPCTimeout time.Duration `envconfig:"RPC_TIMEOUT" default:"30s"`

	// RPCRateLimit - max frequency of rpc calls per second
	RPCRateLimit float64 `envconfig:"RPC_RATE_LIMIT" default:"10"`

	// CacheTTLSeconds - lifetime of cache entries
	CacheTTLSeconds int `envconfig:"CACHE_TTL" default:"60"`

	// CacheBackend - one of memory, redis, bolt
	CacheBackend string `envconfig:"CACHE_BACKEND" default:"memory"`

	// CacheSize - maximum number of entries in memory cache
	CacheSize int `envconfig:"CACHE_SIZE" default:"10000"`

	// RedisAddr - redis address for redis cache backend
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	// RedisPassword - redis password (optional)
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// RedisDB - redis database number
	RedisDB int `envconfig:"REDIS_DB" default:"0"`

	// BoltPath - filepath for bolt db data used by bolt cache backend
	BoltPath string `envconfig:"BOLT_PATH" default:"./groupproof.data"`

	// BoltBucket - bolt db bucket name
	BoltBucket string `envconfig:"BOLT_BUCKET" default:"cache"`

	// RateLimitWindowMS - inbound rate limit window in milliseconds
	RateLimitWindowMS int `envconfig:"RATE_LIMIT_WINDOW_MS" default:"900000"`

	// RateLimitMax - max requests per client ip in a rate limit window
	RateLimitMax int `envconfig:"RATE_LIMIT_MAX" default:"100"`

	// LogLevel - logrus level name
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// CacheTTL returns cache entries lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// RateLimitWindow returns inbound rate limit window.
func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMS) * time.Millisecond
}

// Validate checks config values before they are used for wiring.
func (c Config) Validate() error {
	var errs []error
	if c.ContractAddress == "" {
		errs = append(errs, errors.New("CONTRACT_ADDRESS is required"))
	} else if !common.IsHexAddress(c.ContractAddress) {
		errs = append(errs, fmt.Errorf("CONTRACT_ADDRESS %q is not a hex address", c.ContractAddress))
	}
	if c.RPCURL == "" {
		errs = append(errs, errors.New("RPC_URL is required"))
	}
	if c.RPCTimeout <= 0 {
		errs = append(errs, errors.New("RPC_TIMEOUT must be greater than 0"))
	}
	if c.RPCRateLimit <= 0 {
		errs = append(errs, errors.New("RPC_RATE_LIMIT must be greater than 0"))
	}
	if c.HTTPRequestTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_REQUEST_TIMEOUT must be greater than 0"))
	}
	if c.CacheTTLSeconds <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be greater than 0"))
	}
	switch c.CacheBackend {
	case cacheBackendMemory:
		if c.CacheSize <= 0 {
			errs = append(errs, errors.New("CACHE_SIZE must be greater than 0"))
		}
	case cacheBackendRedis, cacheBackendBolt:
	default:
		errs = append(errs, fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend))
	}
	if c.RateLimitWindowMS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW_MS must be greater than 0"))
	}
	if c.RateLimitMax <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_MAX must be greater than 0"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errs...)
}
