package polygon

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

// descriptor is the subset of problem.xml the importer reads.
type descriptor struct {
	XMLName   xml.Name `xml:"problem"`
	ShortName string   `xml:"short-name,attr"`
	Names     []struct {
		Language string `xml:"language,attr"`
		Value    string `xml:"value,attr"`
	} `xml:"names>name"`
	Statements []struct {
		Language string `xml:"language,attr"`
		Type     string `xml:"type,attr"`
		Path     string `xml:"path,attr"`
	} `xml:"statements>statement"`
	Testsets []struct {
		Name        string `xml:"name,attr"`
		TimeLimit   string `xml:"time-limit"`
		MemoryLimit string `xml:"memory-limit"`
	} `xml:"judging>testset"`
	Checker *struct {
		Source asset  `xml:"source"`
		Binary *asset `xml:"binary"`
	} `xml:"assets>checker"`
	Validators []struct {
		Source asset `xml:"source"`
	} `xml:"assets>validators>validator"`
	Solutions []struct {
		Tag    string `xml:"tag,attr"`
		Source asset  `xml:"source"`
	} `xml:"assets>solutions>solution"`
}

type asset struct {
	Path string `xml:"path,attr"`
	Type string `xml:"type,attr"`
}

func parseDescriptor(r io.Reader) (*descriptor, error) {
	var d descriptor
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "failed to parse problem.xml"), "reason", err.Error())
	}
	if d.ShortName == "" {
		return nil, zerr.Wrap(domain.ErrInvalidPackage, "problem.xml has no short-name")
	}
	return &d, nil
}

func (d *descriptor) title() string {
	if len(d.Names) == 0 {
		return ""
	}
	return d.Names[0].Value
}

// texStatement returns the path of the Russian TeX statement, if any.
func (d *descriptor) texStatement() string {
	for _, s := range d.Statements {
		if s.Language == "russian" && s.Type == "application/x-tex" {
			return s.Path
		}
	}
	return ""
}

// limits returns the first testset's time limit in seconds and memory limit in megabytes.
func (d *descriptor) limits() (float64, int, error) {
	if len(d.Testsets) == 0 {
		return 0, 0, zerr.Wrap(domain.ErrInvalidPackage, "problem.xml has no testset")
	}
	ts := d.Testsets[0]

	ms, err := strconv.ParseFloat(strings.TrimSpace(ts.TimeLimit), 64)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "invalid time-limit"), "value", ts.TimeLimit)
	}
	bytes, err := strconv.ParseInt(strings.TrimSpace(ts.MemoryLimit), 10, 64)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(domain.ErrInvalidPackage, "invalid memory-limit"), "value", ts.MemoryLimit)
	}
	return ms / 1000, int(bytes >> 20), nil
}
