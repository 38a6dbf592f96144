package utils

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/types"
)

// TestDialAddress tests default ports per scheme
func TestDialAddress(t *testing.T) {
	tests := map[string]string{
		"https://auth.example.com":      "auth.example.com:443",
		"http://auth.example.com":       "auth.example.com:80",
		"http://localhost:8080/graphql": "localhost:8080",
		"redis://cache:6380/0":          "cache:6380",
		"rediss://cache":                "cache:6379",
	}
	for raw, want := range tests {
		got, err := DialAddress(raw)
		if err != nil {
			t.Errorf("%s: unexpected error %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", raw, want, got)
		}
	}

	if _, err := DialAddress(""); err == nil {
		t.Error("Expected an empty URL to fail")
	}
}

// TestPingService tests reachable and unreachable services
func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	addr := ln.Addr().String()

	if err := PingService(context.Background(), "http://"+addr, time.Second); err != nil {
		t.Errorf("Expected ping to succeed, got %v", err)
	}

	ln.Close()
	if err := PingService(context.Background(), "http://"+addr, 500*time.Millisecond); err == nil {
		t.Error("Expected ping to a closed port to fail")
	}
}

// TestCustomErrorResponse tests the error body shape
func TestCustomErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/listings", func(c *fiber.Ctx) error {
		return CustomErrorResponse(c, types.NewValidationError("minPrice", "Min price must be a non-negative number"))
	})
	app.Get("/down", func(c *fiber.Ctx) error {
		return MaintenanceResponse(c, "Property Hub", "+91 99999 00000", "info@property.com")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/listings?minPrice=x", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
	var body ErrorResponseStruct
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Ok || body.Field != "minPrice" || body.Type != "validation.minPrice" || body.URL != "/listings?minPrice=x" || body.Timestamp == "" {
		t.Errorf("Unexpected body %+v", body)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/down", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}
	var down MaintenanceResponseStruct
	if err := json.NewDecoder(resp.Body).Decode(&down); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !down.Maintenance || down.SiteName != "Property Hub" || down.ContactPhone != "+91 99999 00000" {
		t.Errorf("Unexpected body %+v", down)
	}
}
