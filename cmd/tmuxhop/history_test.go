package main

import "testing"

func TestHistoryCommandWiring(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"history"})
	if err != nil || cmd.Use != "history" {
		t.Fatalf("history command not registered: %v", err)
	}

	flag := cmd.Flags().Lookup("limit")
	if flag == nil {
		t.Fatal("history command missing --limit flag")
	}
	if flag.DefValue != "20" {
		t.Errorf("--limit default = %s, want 20", flag.DefValue)
	}
}
