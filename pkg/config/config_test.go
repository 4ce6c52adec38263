package config

import (
	"reflect"
	"testing"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		want    *Config
		wantErr bool
	}{
		{
			"defaults",
			nil,
			&Config{Format: "text"},
			false,
		},
		{
			"all options",
			[]Option{WithFormat("YAML"), WithSnapshot("routes.yml"), WithSkipMalformed(true)},
			&Config{Format: "yaml", Snapshot: "routes.yml", SkipMalformed: true},
			false,
		},
		{
			"invalid format",
			[]Option{WithFormat("xml")},
			&Config{Format: "xml"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConfig(tt.options...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewConfig() error = %v, expected %v", err, tt.wantErr)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewConfig() got = %v, want %v", got, tt.want)
			}
		})
	}
}
