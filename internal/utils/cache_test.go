package utils

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := GetCache()
	c.Set("k", "v", time.Minute)
	if got := c.Get("k"); got != "v" {
		t.Errorf("Expected v, got %v", got)
	}
	c.Delete("k")
	if got := c.Get("k"); got != nil {
		t.Errorf("Expected nil after delete, got %v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Set("ttl", 42, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if got := c.Get("ttl"); got != nil {
		t.Errorf("Expected expired entry to read as nil, got %v", got)
	}
}
