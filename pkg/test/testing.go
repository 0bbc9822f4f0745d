/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package test

import (
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/stackedboxes/erlinda/pkg/demo"
	"github.com/stackedboxes/erlinda/pkg/erlutil"
	"github.com/stackedboxes/erlinda/pkg/errs"
	"github.com/stackedboxes/erlinda/pkg/vm"
)

// config is the structure mirroring the test case TOML file.
type config struct {
	// Program is the name of the demo program to run.
	Program string

	// Output is what the program is expected to print, one entry per printed
	// value.
	Output []string

	// Unordered makes the output check ignore ordering. Useful for programs
	// whose processes race to print.
	Unordered bool

	// ExitCode is the expected exit code (0 when the run must succeed).
	ExitCode int `toml:"exit-code"`

	// ErrorMessage, when nonempty, is a regexp the run's error must match.
	ErrorMessage string `toml:"error-message"`

	// MailboxCapacity, when positive, overrides the VM's mailbox capacity.
	MailboxCapacity int `toml:"mailbox-capacity"`
}

// ExecuteSuite runs the test suite at suitePath: every test.toml found under
// it, recursively, is one test case.
func ExecuteSuite(suitePath string) errs.Error {
	return erlutil.ForEachMatchingFileRecursive(suitePath, regexp.MustCompile("test.toml"),
		func(configPath string) errs.Error {
			return runCase(configPath)
		},
	)
}

// runCase runs the test case defined in configPath.
func runCase(configPath string) errs.Error {
	testCase := path.Dir(configPath)

	testConf, err := readConfig(configPath)
	if err != nil {
		return err
	}

	module, err := demo.Build(testConf.Program)
	if err != nil {
		return errs.NewTestSuite(testCase, "building program '%v': %v", testConf.Program, err)
	}

	mouth := &erlutil.MemoryMouth{}
	theVM := vm.New(module, mouth)
	theVM.TraceTo = io.Discard
	if testConf.MailboxCapacity > 0 {
		theVM.MailboxCapacity = testConf.MailboxCapacity
	}

	runErr := theVM.Run()

	// Check exit code
	exitCode := errs.StatusCodeSuccess
	if runErr != nil {
		exitCode = runErr.ExitCode()
	}
	if exitCode != testConf.ExitCode {
		return errs.NewTestSuite(testCase, "expected exit code %v, got %v.", testConf.ExitCode, exitCode)
	}

	// Check error message
	if testConf.ErrorMessage != "" {
		re, reErr := regexp.Compile(testConf.ErrorMessage)
		if reErr != nil {
			return errs.NewTestSuite(testCase, "compiling regexp '%v': %v.", testConf.ErrorMessage, reErr.Error())
		}
		if runErr == nil {
			return errs.NewTestSuite(testCase, "expected error message '%v', got no error.", testConf.ErrorMessage)
		}
		if !re.MatchString(runErr.Error()) {
			return errs.NewTestSuite(testCase, "expected error message '%v', got '%v'.", testConf.ErrorMessage, runErr.Error())
		}
	}

	if runErr != nil {
		// If we had an error and reached this point, it means the error was
		// expected. The outputs don't matter.
		fmt.Printf("Test case passed: %v.\n", testCase)
		return nil
	}

	// Check output
	actual := make([]string, len(mouth.Outputs))
	for i, output := range mouth.Outputs {
		actual[i] = strings.TrimSuffix(output, "\n")
	}
	expected := append([]string{}, testConf.Output...)
	if testConf.Unordered {
		sort.Strings(actual)
		sort.Strings(expected)
	}

	if len(expected) != len(actual) {
		return errs.NewTestSuite(testCase, "got %v outputs, expected %v.", len(actual), len(expected))
	}
	for i, actualOutput := range actual {
		if actualOutput != expected[i] {
			return errs.NewTestSuite(testCase, "at index %v: expected output '%v', got '%v'.", i, expected[i], actualOutput)
		}
	}

	fmt.Printf("Test case passed: %v.\n", testCase)
	return nil
}

// readConfig reads a test configuration from a TOML file.
func readConfig(path string) (*config, errs.Error) {
	tomlSource, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}
	tomlConfigData := &config{}
	err = toml.Unmarshal(tomlSource, &tomlConfigData)
	if err != nil {
		return nil, errs.NewTestSuite(path, "%v", err.Error())
	}

	return tomlConfigData, nil
}
