package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

const (
	testVersion     = "1.0.0"
	testProgramName = "mongodb-mcp"
	testHelpText    = "mongodb-mcp - MongoDB Model Context Protocol Server"
	testVersionText = "mongodb-mcp version: 1.0.0"
)

// captureOutput temporarily redirects stdout and stderr to capture output.
func captureOutput(fn func()) (stdout, stderr string) {
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	oldStdout := os.Stdout
	oldStderr := os.Stderr
	os.Stdout = wOut
	os.Stderr = wErr

	fn()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)

	return string(outBytes), string(errBytes)
}

// exitMock captures os.Exit calls for testing.
type exitMock struct {
	called bool
	code   int
}

// Exit records the exit call and panics to stop execution.
func (m *exitMock) Exit(code int) {
	m.called = true
	m.code = code
	panic(m)
}

func TestHandleArgs(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		expectedExitCode int    // -1 means no exit
		expectedOutput   string // substring expected in stdout
		expectedStderr   string // substring expected in stderr
	}{
		{
			name:             "no flags",
			args:             []string{testProgramName},
			expectedExitCode: -1,
		},
		{
			name:             "version flag short form",
			args:             []string{testProgramName, "-v"},
			expectedExitCode: 0,
			expectedOutput:   testVersionText,
		},
		{
			name:             "version flag long form",
			args:             []string{testProgramName, "--version"},
			expectedExitCode: 0,
			expectedOutput:   testVersionText,
		},
		{
			name:             "help flag short form",
			args:             []string{testProgramName, "-h"},
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "help flag long form",
			args:             []string{testProgramName, "--help"},
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "help takes precedence over version",
			args:             []string{testProgramName, "-v", "-h"},
			expectedExitCode: 0,
			expectedOutput:   testHelpText,
		},
		{
			name:             "unknown flag",
			args:             []string{testProgramName, "-x"},
			expectedExitCode: 1,
			expectedStderr:   "unknown flag or argument: -x",
		},
		{
			name:             "configuration flags pass through",
			args:             []string{testProgramName, "--mongodb-uri", "mongodb://localhost:27017", "--mongodb-database", "app"},
			expectedExitCode: -1,
		},
		{
			name:             "transport flag passes through",
			args:             []string{testProgramName, "--transport", "http", "--http-host", "0.0.0.0", "--http-port", "9000"},
			expectedExitCode: -1,
		},
		{
			name:             "configuration flag missing value at end",
			args:             []string{testProgramName, "--mongodb-uri"},
			expectedExitCode: 1,
			expectedStderr:   "--mongodb-uri requires a value",
		},
		{
			name:             "configuration flag followed by another flag",
			args:             []string{testProgramName, "--mongodb-uri", "--mongodb-database", "app"},
			expectedExitCode: 1,
			expectedStderr:   "--mongodb-uri requires a value (got flag --mongodb-database instead)",
		},
		{
			name:             "transport flag missing value",
			args:             []string{testProgramName, "--transport"},
			expectedExitCode: 1,
			expectedStderr:   "--transport requires a value",
		},
		{
			name:             "double dash separator stops flag processing",
			args:             []string{testProgramName, "--", "--unknown-flag"},
			expectedExitCode: -1,
		},
		{
			name:             "config flags before double dash are valid",
			args:             []string{testProgramName, "--mongodb-uri", "mongodb://localhost:27017", "--", "--unknown-flag"},
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			originalOsExit := osExit
			t.Cleanup(func() {
				os.Args = originalArgs
				osExit = originalOsExit
			})

			os.Args = tt.args
			mock := &exitMock{}
			osExit = mock.Exit

			stdout, stderr := captureOutput(func() {
				defer func() {
					if r := recover(); r != mock {
						if r != nil {
							panic(r)
						}
					}
				}()
				HandleArgs(testVersion)
			})

			shouldExit := tt.expectedExitCode != -1
			if shouldExit != mock.called {
				t.Errorf("exit called: got %v, want %v", mock.called, shouldExit)
			}
			if mock.called && mock.code != tt.expectedExitCode {
				t.Errorf("exit code: got %d, want %d", mock.code, tt.expectedExitCode)
			}

			if tt.expectedOutput != "" && !strings.Contains(stdout, tt.expectedOutput) {
				t.Errorf("stdout: expected substring %q, got %q", tt.expectedOutput, stdout)
			}
			if tt.expectedStderr != "" && !strings.Contains(stderr, tt.expectedStderr) {
				t.Errorf("stderr: expected substring %q, got %q", tt.expectedStderr, stderr)
			}
		})
	}
}
