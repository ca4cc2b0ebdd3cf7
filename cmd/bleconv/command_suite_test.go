package main

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/srg/bleconv/internal/testutils"
	"github.com/stretchr/testify/suite"
)

// CommandTestSuite resets the global and per-command flag variables before
// each test, since cobra only assigns flags that appear on the command line.
// All cmd/bleconv test suites should embed it.
type CommandTestSuite struct {
	suite.Suite
}

func (s *CommandTestSuite) SetupTest() {
	logLevelFlag = ""
	verboseFlag = false
	outputFlag = ""
	colorFlag = ""
	configFlag = ""

	statusATTError = ""
	propsReverse = false
	propsGoBLE = false
	uuidGoBLE = false
	bufferDeclared = -1
}

// ExecuteCommand runs a cobra command with args, returns output and error.
func (s *CommandTestSuite) ExecuteCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// AssertJSON runs the root command with -o json and compares the output
func (s *CommandTestSuite) AssertJSON(expected string, args ...string) {
	out, err := s.ExecuteCommand(rootCmd, append(args, "-o", "json")...)
	s.Require().NoError(err, "command MUST succeed")
	testutils.NewJSONAsserter(s.T()).Assert(out, expected)
}

// AssertText runs the root command with --color never and compares the output
func (s *CommandTestSuite) AssertText(expected string, args ...string) {
	out, err := s.ExecuteCommand(rootCmd, append(args, "--color", "never")...)
	s.Require().NoError(err, "command MUST succeed")
	testutils.NewTextAsserter(s.T()).WithOptions(testutils.WithTrimSpace(true)).Assert(out, expected)
}
