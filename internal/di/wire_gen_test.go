package di

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestInitializeApp(t *testing.T) {
	for _, key := range []string{"CONTEST_CATALOG_CAPACITY", "CONTEST_LOG_LEVEL", "CONTEST_LOG_FORMAT", "CONTEST_PREVIEW_LENGTH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	input := strings.Join([]string{
		"cap", "Alpha", "State U", "1", "Ana", "yes",
		"setter", "Two Sum", "t", "s", "Easy", "array", "h", "yes",
		"ana", "Two Sum", "code", "c", "no",
		"root", "2", "yes",
	}, "\n") + "\n"

	var out bytes.Buffer
	application, err := InitializeApp(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}

	report, err := application.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Team == nil || report.Problem == nil || report.Policy == nil || report.Solution != nil {
		t.Errorf("report = %+v", report)
	}
	if !strings.Contains(out.String(), "Solution submission canceled.") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestInitializeAppBadConfig(t *testing.T) {
	t.Setenv("CONTEST_CATALOG_CAPACITY", "many")

	if _, err := InitializeApp(strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected config error")
	}
}
