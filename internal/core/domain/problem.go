package domain

import "time"

// Defaults used when neither the command line nor the problem config sets a value.
const (
	DefaultTimeLimit      = 3 * time.Second
	DefaultModelTimeLimit = 5 * time.Second
	DefaultTestNumWidth   = 2
	DefaultValidator      = "validator.cpp"
	DefaultChecker        = "check.cpp"
	DefaultGenerator      = "gen.cpp"
	DefaultSamplesFolder  = "samples"
	DefaultDoallCommand   = "sh doall.sh"
	DefaultWipeCommand    = "sh wipe.sh"
)

// Problem parameter names.
const (
	ParamTL            = "tl"
	ParamML            = "ml"
	ParamTestNumWidth  = "test_num_width"
	ParamValidator     = "validator"
	ParamChecker       = "checker"
	ParamGenerator     = "gen"
	ParamGenWorkDir    = "gen_work_dir"
	ParamSamplesNum    = "samples_num"
	ParamSamplesFolder = "samples_folder"
	ParamUseDoall      = "use_doall"
	ParamDoallCmd      = "doall_cmd"
	ParamUseWipe       = "use_wipe"
	ParamTitle         = "title"
	ParamSource        = "source"
	ParamStatementText = "statement_text"
)

// Parameters that historically appear with either a space or an underscore.
var (
	ParamShortName  = []string{"short name", "short_name"}
	ParamSystemName = []string{"system name", "system_name"}
	ParamPDFLink    = []string{"pdf link", "pdf_link"}
	ParamWipeCmd    = []string{"wipe cmd", "wipe_cmd"}
)

// Solution is a named solution entry of a problem.
type Solution struct {
	Name string
	Path string
}

// CheckReport summarizes a check, validate or stress run.
type CheckReport struct {
	Passed int
	Total  int
}
