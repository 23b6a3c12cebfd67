package models

import "testing"

func TestNewPane(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		window    string
		wantTS    int64
		wantWin   int
	}{
		{"well formed", "1700000000", "3", 1700000000, 3},
		{"empty timestamp", "", "3", 0, 3},
		{"garbage timestamp", "abc", "3", 0, 3},
		{"empty window", "1700000000", "", 1700000000, 0},
		{"garbage window", "1700000000", "x", 1700000000, 0},
		{"both malformed", "??", "??", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPane("%1", StateIdle, tt.timestamp, tt.window, "/tmp/proj", "main")
			if p.Timestamp != tt.wantTS {
				t.Errorf("Timestamp = %d, want %d", p.Timestamp, tt.wantTS)
			}
			if p.Window != tt.wantWin {
				t.Errorf("Window = %d, want %d", p.Window, tt.wantWin)
			}
			if p.ID != "%1" || p.State != StateIdle || p.Session != "main" {
				t.Errorf("unexpected pane fields: %+v", p)
			}
		})
	}
}

func TestPane_Project(t *testing.T) {
	tests := []struct {
		cwd  string
		want string
	}{
		{"/home/me/code/widget", "widget"},
		{"/", "/"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd, func(t *testing.T) {
			p := Pane{CWD: tt.cwd}
			if got := p.Project(); got != tt.want {
				t.Errorf("Project() = %q, want %q", got, tt.want)
			}
		})
	}
}
