package storage_test

import (
	"testing"

	"notes-importer/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		location   string
		wantBucket string
		wantPrefix string
		wantOK     bool
	}{
		{"s3://exports/notes", "exports", "notes", true},
		{"s3://exports/notes/", "exports", "notes", true},
		{"s3://exports", "exports", "", true},
		{"s3:///notes", "", "", false},
		{"imported-notes", "", "", false},
		{"https://example.com/notes", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, prefix, ok := storage.ParseLocation(tt.location)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}
