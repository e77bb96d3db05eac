// Package hfinput parses the YAML job file describing a molecule, basis
// set, and SCF run: the external collaborator surface the core solver
// packages never import directly.
package hfinput

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantumgo/hartreefock/geometry"
	"github.com/quantumgo/hartreefock/hf"
)

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

const ErrUnknownHFType = Error("hfinput: hf type must be \"rhf\" or \"uhf\"")

// geometryBlock mirrors the YAML "geometry" mapping: an embedded XYZ
// block plus charge/multiplicity.
type geometryBlock struct {
	XYZ          string `yaml:"xyz"`
	Charge       int    `yaml:"charge"`
	Multiplicity int    `yaml:"multiplicity"`
}

// scfBlock mirrors the YAML "scf" mapping.
type scfBlock struct {
	HF            string  `yaml:"hf"`
	MaxIter       int     `yaml:"maxiter"`
	DIISIterStart int     `yaml:"diisiterstart"`
	DIISDimMax    int     `yaml:"diisdimmax"`
	ThresholdE    float64 `yaml:"thresholde"`
	ThresholdRMS  float64 `yaml:"thresholdrms"`
}

// Job is the parsed job file: geometry, basis-set name, and SCF config.
type Job struct {
	Geometry  geometry.Molecule
	BasisName string
	SCF       hf.Config
}

// document is the top-level YAML shape: geometry/basis/scf blocks.
type document struct {
	Geometry geometryBlock `yaml:"geometry"`
	Basis    string        `yaml:"basis"`
	SCF      scfBlock      `yaml:"scf"`
}

// Parse reads and validates a job file's raw YAML bytes.
func Parse(data []byte) (Job, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Job{}, err
	}

	mol, err := geometry.ParseMolecule(doc.Geometry.XYZ)
	if err != nil {
		return Job{}, err
	}
	mol.Charge = doc.Geometry.Charge
	if doc.Geometry.Multiplicity == 0 {
		mol.Multiplicity = 1
	} else {
		mol.Multiplicity = doc.Geometry.Multiplicity
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		return Job{}, err
	}

	kind := hf.RHF
	switch doc.SCF.HF {
	case "", "rhf":
		kind = hf.RHF
	case "uhf":
		kind = hf.UHF
	default:
		return Job{}, ErrUnknownHFType
	}

	cfg := hf.DefaultConfig(kind, nAlpha, nBeta)
	if doc.SCF.MaxIter != 0 {
		cfg.MaxIter = doc.SCF.MaxIter
	}
	if doc.SCF.DIISIterStart != 0 {
		cfg.DIISIterStart = doc.SCF.DIISIterStart
	}
	if doc.SCF.DIISDimMax != 0 {
		cfg.DIISDimMax = doc.SCF.DIISDimMax
	}
	if doc.SCF.ThresholdE != 0 {
		cfg.EThreshold = doc.SCF.ThresholdE
	}
	if doc.SCF.ThresholdRMS != 0 {
		cfg.RMSThreshold = doc.SCF.ThresholdRMS
	}

	return Job{Geometry: mol, BasisName: doc.Basis, SCF: cfg}, nil
}

// ParseFile reads and parses a job file from disk.
func ParseFile(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, err
	}
	return Parse(data)
}
