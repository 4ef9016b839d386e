package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*ServiceConfig)
		wantErr string
	}{
		{
			name:   "Valid Default Config",
			mutate: func(*ServiceConfig) {},
		},
		{
			name: "Local Runtime Without Port",
			mutate: func(c *ServiceConfig) {
				c.Service.Runtime = "local"
				c.Service.Port = 0
			},
			wantErr: "Port",
		},
		{
			name:    "Unknown Runtime",
			mutate:  func(c *ServiceConfig) { c.Service.Runtime = "ecs" },
			wantErr: "Runtime",
		},
		{
			name:    "Resource Name With Slash",
			mutate:  func(c *ServiceConfig) { c.Resource.Name = "staff/employees" },
			wantErr: "Name",
		},
		{
			name:    "Invalid CORS Method",
			mutate:  func(c *ServiceConfig) { c.CORS.AllowMethods = []string{"GET", "FETCH"} },
			wantErr: "AllowMethods",
		},
		{
			name: "Datadog Enabled Without Addr",
			mutate: func(c *ServiceConfig) {
				c.Service.Metrics.Datadog.Enabled = true
			},
			wantErr: "Addr",
		},
		{
			name:    "Default Page Size Above Limit",
			mutate:  func(c *ServiceConfig) { c.Resource.DefaultPageSize = 5000 },
			wantErr: "DefaultPageSize",
		},
		{
			name:    "Search Field Equals Hash Key",
			mutate:  func(c *ServiceConfig) { c.Resource.SearchField = "id" },
			wantErr: "hash_key",
		},
		{
			name:    "Reserved Resource Name",
			mutate:  func(c *ServiceConfig) { c.Resource.Name = "search" },
			wantErr: "reservado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := validator.Validate(&cfg)
			if tt.wantErr != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
