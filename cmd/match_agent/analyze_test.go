package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantError   bool
		errorString string
	}{
		{
			name:        "Missing --resume flag",
			args:        []string{"analyze", "--job", "testdata/job.txt"},
			wantError:   true,
			errorString: "--resume is required",
		},
		{
			name:        "Missing --job flag",
			args:        []string{"analyze", "--resume", "testdata/resume.txt"},
			wantError:   true,
			errorString: "--job is required",
		},
		{
			name:        "Use AI without API key",
			args:        []string{"analyze", "--resume", "testdata/resume.txt", "--job", "testdata/job.txt", "--use-ai", "--api-key", ""},
			wantError:   true,
			errorString: "requires an API key",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = []string{"PATH=/usr/bin:/bin"}
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, string(output), tt.errorString)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "batch", "--job", "testdata/job.txt")
	cmd.Env = []string{"PATH=/usr/bin:/bin"}
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume-dir is required")
}
