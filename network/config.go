package network

import (
	"log"
	"time"
)

// Config holds bridge configuration
type Config struct {
	// Address to bind, host:port
	Address string

	// Codec name for outbound frames: json | msgpack
	Codec string

	// Per-connection outbound queue; a full queue drops the connection
	SendQueueSize int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// Largest inbound message accepted
	ReadLimit int64

	Logger *log.Logger
}

// DefaultConfig returns local-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:       "127.0.0.1:8090",
		Codec:         CodecJSON,
		SendQueueSize: 16,
		WriteTimeout:  2 * time.Second,
		PongTimeout:   30 * time.Second,
		PingInterval:  10 * time.Second,
		ReadLimit:     4 * 1024,
	}
}
