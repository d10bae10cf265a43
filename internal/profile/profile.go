// Package profile loads the local identity the CLIs act as. Profiles are
// plain JSON files; the fields are assumed well-formed and only the ids
// are checked for presence.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gramcare/caselink/internal/shared"
)

// Patient identifies the submitting patient. All fields are copied into
// each case at creation time.
type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	District string `json:"district"`
	State    string `json:"state"`
}

// Doctor identifies the replying doctor.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

func LoadPatient(path string) (*Patient, error) {
	var p Patient
	if err := load(path, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, shared.ErrorMissingPatientID
	}
	return &p, nil
}

func LoadDoctor(path string) (*Doctor, error) {
	var d Doctor
	if err := load(path, &d); err != nil {
		return nil, err
	}
	if d.ID == "" {
		return nil, shared.ErrorMissingDoctorID
	}
	return &d, nil
}

func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}
	return nil
}
