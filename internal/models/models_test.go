package models

import "testing"

func TestSearchRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		request   SearchRequest
		wantErr   bool
		wantCount int
	}{
		{
			name:      "defaults applied",
			request:   SearchRequest{Query: "gravity"},
			wantCount: 3,
		},
		{
			name:      "count preserved",
			request:   SearchRequest{Query: "gravity", Count: 5},
			wantCount: 5,
		},
		{
			name:      "count capped",
			request:   SearchRequest{Query: "gravity", Count: 50},
			wantCount: 10,
		},
		{
			name:      "negative count reset",
			request:   SearchRequest{Query: "gravity", Count: -1},
			wantCount: 3,
		},
		{
			name:    "empty query rejected",
			request: SearchRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.request.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", tt.request.Count, tt.wantCount)
			}
		})
	}
}

func TestCandidateText(t *testing.T) {
	c := &Candidate{Title: "Gravitational Field", Description: "Diagram of ORBITS"}
	got := c.Text()
	want := "gravitational field diagram of orbits"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestCandidateAspectRatio(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   float64
	}{
		{"landscape", 1600, 900, 1600.0 / 900.0},
		{"unknown width", 0, 900, 0},
		{"unknown height", 1600, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Candidate{Width: tt.width, Height: tt.height}
			if got := c.AspectRatio(); got != tt.want {
				t.Errorf("AspectRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
