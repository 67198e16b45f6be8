package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// TestCase addresses one numbered test inside a folder.
type TestCase struct {
	Folder string
	Num    int
	Width  int
}

// Name is the zero-padded test number, e.g. "07".
func (t TestCase) Name() string {
	return fmt.Sprintf("%0*d", t.Width, t.Num)
}

// AnswerName is the answer file name, e.g. "07.a".
func (t TestCase) AnswerName() string {
	return t.Name() + ".a"
}

// InputPath is the path of the test input.
func (t TestCase) InputPath() string {
	return filepath.Join(t.Folder, t.Name())
}

// AnswerPath is the path of the expected answer.
func (t TestCase) AnswerPath() string {
	return filepath.Join(t.Folder, t.AnswerName())
}

// SampleInputPath is the sample copy of the input inside samplesFolder.
func (t TestCase) SampleInputPath(samplesFolder string) string {
	return filepath.Join(samplesFolder, t.Name()+".t")
}

// SampleAnswerPath is the sample copy of the answer inside samplesFolder.
func (t TestCase) SampleAnswerPath(samplesFolder string) string {
	return filepath.Join(samplesFolder, t.Name()+".t.a")
}

// Exists reports whether the test input is present.
func (t TestCase) Exists() bool {
	_, err := os.Stat(t.InputPath())
	return err == nil
}

// ListTests returns the consecutive tests 1..N present in folder.
// Enumeration stops at the first missing number.
func ListTests(folder string, width int) ([]TestCase, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(ErrTestsNotFound, "failed to list tests"), "folder", folder)
	}
	var tests []TestCase
	for n := 1; ; n++ {
		tc := TestCase{Folder: folder, Num: n, Width: width}
		if !tc.Exists() {
			return tests, nil
		}
		tests = append(tests, tc)
	}
}
