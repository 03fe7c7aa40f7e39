package cmd

import (
	"strings"
	"testing"
)

func TestConvertOutputDefault(t *testing.T) {
	flag := convertCmd.Flags().Lookup("out")
	if flag == nil {
		t.Fatal("convert must expose --out")
	}
	if flag.DefValue != "courses.ics" {
		t.Errorf("default output should be courses.ics in the working directory, got %q", flag.DefValue)
	}
	// the help text has to describe that default, not a path derived from
	// the input file
	if !strings.Contains(convertCmd.Long, "working directory") {
		t.Errorf("help text out of step with the --out default: %q", convertCmd.Long)
	}
}
