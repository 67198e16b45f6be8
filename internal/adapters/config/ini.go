package config

import (
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

const (
	generalSection  = "general"
	mainSolutionKey = "main solution"
	solutionPathKey = "path"
	contestSection  = "default"
	contestHostKey  = "contest_host"
	contestPathKey  = "contest_path"
)

var iniOptions = ini.LoadOptions{
	AllowBooleanKeys: true,
	InsensitiveKeys:  true,
}

func loadINI(path string) (*ini.File, error) {
	f, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return f, nil
}

// parseProblemINI reads [general] as parameters and every other section as a solution.
func (l *Loader) parseProblemINI(root, path string) (*domain.ProblemConfig, error) {
	f, err := loadINI(path)
	if err != nil {
		return nil, err
	}

	general := f.Section(generalSection)
	params := general.KeysHash()

	var solutions []domain.Solution
	for _, s := range f.Sections() {
		name := s.Name()
		if name == generalSection || name == ini.DefaultSection {
			continue
		}
		if !s.HasKey(solutionPathKey) {
			if l.Logger != nil {
				l.Logger.Warn("solution section [" + name + "] has no path, skipped")
			}
			continue
		}
		solutions = append(solutions, domain.Solution{Name: name, Path: s.Key(solutionPathKey).String()})
	}

	var main string
	if ref := general.Key(mainSolutionKey).String(); ref != "" && f.HasSection(ref) {
		main = f.Section(ref).Key(solutionPathKey).String()
	}

	return domain.NewProblemConfig(root, domain.FormatINI, params, solutions, main), nil
}

func parseContestINI(root, path string) (*domain.ContestConfig, error) {
	f, err := loadINI(path)
	if err != nil {
		return nil, err
	}

	s := f.Section(contestSection)
	return &domain.ContestConfig{
		Root:       root,
		Host:       s.Key(contestHostKey).String(),
		ServerPath: s.Key(contestPathKey).String(),
	}, nil
}
