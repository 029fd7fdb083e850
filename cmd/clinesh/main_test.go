package main

import (
	"reflect"
	"testing"
)

func TestExtractFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]bool
	}{
		{
			name: "no args",
			args: []string{},
			want: map[string]bool{},
		},
		{
			name: "boolean flags",
			args: []string{"--no-color", "-h"},
			want: map[string]bool{"--no-color": true, "-h": true},
		},
		{
			name: "non-flag args ignored",
			args: []string{"something", "--no-color"},
			want: map[string]bool{"--no-color": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFlags(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractFlags(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
