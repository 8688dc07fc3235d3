package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-arraylist/pkg/datastructs/arraylist"
	"github.com/huynhanx03/go-arraylist/pkg/settings"
)

func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, zap.NewNop(), settings.Default().Demo); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	want := []string{
		"Before sorting: [3, 1, 4, 1, 5, 9, 2, 6, 5]",
		"After sorting: [1, 1, 2, 3, 4, 5, 5, 6, 9]",
		"After insertAt(4, 0): [1, 1, 2, 3, 0, 4, 5, 5, 6, 9]",
		"After removeAt(4) = 0: [1, 1, 2, 3, 4, 5, 5, 6, 9]",
		"Size: 9",
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("output lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	demo := settings.Demo{InitialCapacity: 1}
	if err := run(&out, zap.NewNop(), demo); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Before sorting: []") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_InvalidCapacity(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, zap.NewNop(), settings.Demo{InitialCapacity: 0})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), arraylist.ErrInvalidArgument.Error()) {
		t.Errorf("err = %v", err)
	}
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"custom_values", []string{"--capacity", "2", "--", "5", "-2", "7"}, "After sorting: [-2, 5, 7]", false},
		{"bad_value", []string{"x"}, "", true},
		{"bad_capacity", []string{"--capacity", "0"}, "", true},
		{"bad_level", []string{"--log-level", "loud"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
