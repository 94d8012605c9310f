package db

import (
	"context"
	"testing"
	"time"
)

// TestNewRedisClient tests client initialization
func TestNewRedisClient(t *testing.T) {
	tests := []struct {
		name      string
		config    RedisConfig
		wantError bool
		wantAddr  string
	}{
		{
			name: "default config",
			config: RedisConfig{
				Host: "localhost",
				Port: 6379,
			},
			wantAddr: "localhost:6379",
		},
		{
			name: "custom config with all fields",
			config: RedisConfig{
				Host:         "redis.example.com",
				Port:         6380,
				Password:     "secret",
				DB:           1,
				PoolSize:     20,
				MinIdleConns: 10,
				MaxRetries:   5,
				DialTimeout:  10 * time.Second,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 5 * time.Second,
			},
			wantAddr: "redis.example.com:6380",
		},
		{
			name:     "empty config uses defaults",
			config:   RedisConfig{},
			wantAddr: "localhost:6379",
		},
		{
			name:      "invalid port",
			config:    RedisConfig{Host: "localhost", Port: 70000},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRedisClient(tt.config)

			if (err != nil) != tt.wantError {
				t.Errorf("NewRedisClient() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if tt.wantError {
				return
			}

			if client == nil {
				t.Fatal("Expected non-nil client")
			}
			defer client.Close()

			if client.GetClient() == nil {
				t.Error("Expected non-nil underlying Redis client")
			}
			if got := client.config.Addr(); got != tt.wantAddr {
				t.Errorf("Expected addr %s, got %s", tt.wantAddr, got)
			}

			// Verify defaults are applied
			if client.config.PoolSize == 0 {
				t.Error("Expected PoolSize to be set")
			}
			if client.config.DialTimeout == 0 {
				t.Error("Expected DialTimeout to be set")
			}
		})
	}
}

// TestDefaultRedisConfig tests default configuration
func TestDefaultRedisConfig(t *testing.T) {
	config := DefaultRedisConfig()

	if config.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got %s", config.Host)
	}
	if config.Port != 6379 {
		t.Errorf("Expected default port 6379, got %d", config.Port)
	}
	if config.PoolSize != 10 {
		t.Errorf("Expected default pool size 10, got %d", config.PoolSize)
	}
	if config.MaxRetries != 3 {
		t.Errorf("Expected default max retries 3, got %d", config.MaxRetries)
	}
}

// TestRedisClient_Ping tests ping against a local server
func TestRedisClient_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := NewRedisClient(DefaultRedisConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	if stats := client.PoolStats(); stats == nil {
		t.Error("Expected pool stats")
	}

	t.Log("✅ Ping successful")
}
