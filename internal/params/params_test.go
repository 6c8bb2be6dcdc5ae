package params

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Params
		wantErr bool
	}{
		{
			name: "simulation off",
			args: []string{"100", "50", "0", "4"},
			want: Params{GridSize: 100, TimeSteps: 50, Simulate: false, Threads: 4},
		},
		{
			name: "simulation on",
			args: []string{"5", "2", "1", "5"},
			want: Params{GridSize: 5, TimeSteps: 2, Simulate: true, Threads: 5},
		},
		{
			name: "zero steps",
			args: []string{"8", "0", "0", "1"},
			want: Params{GridSize: 8, TimeSteps: 0, Threads: 1},
		},
		{
			name: "threads exceed grid",
			args: []string{"3", "10", "0", "5"},
			want: Params{GridSize: 3, TimeSteps: 10, Threads: 5},
		},
		{name: "no arguments", args: nil, wantErr: true},
		{name: "too few", args: []string{"1", "2", "0"}, wantErr: true},
		{name: "too many", args: []string{"1", "2", "0", "1", "9"}, wantErr: true},
		{name: "simulation flag 2", args: []string{"10", "10", "2", "1"}, wantErr: true},
		{name: "simulation flag negative", args: []string{"10", "10", "-1", "1"}, wantErr: true},
		{name: "non-numeric size", args: []string{"ten", "10", "0", "1"}, wantErr: true},
		{name: "zero size", args: []string{"0", "10", "0", "1"}, wantErr: true},
		{name: "negative steps", args: []string{"10", "-3", "0", "1"}, wantErr: true},
		{name: "zero threads", args: []string{"10", "10", "0", "0"}, wantErr: true},
		{name: "negative threads", args: []string{"10", "10", "1", "-4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if tt.wantErr {
				var usage *UsageError
				if !errors.As(err, &usage) {
					t.Fatalf("Parse(%q) error = %v, want *UsageError", tt.args, err)
				}
				if usage.Error() == "" {
					t.Error("usage error has empty message")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
