package domain

import (
	"encoding/json"
	"fmt"
)

// ElementID identifies one of the regulatory audit elements. The set is fixed
// at compile time; ElementCount is the cardinality of every audit's score set.
type ElementID int

const (
	ElementManagementCommitment ElementID = iota + 1
	ElementHazardAssessment
	ElementHazardControl
	ElementInspections
	ElementTraining
	ElementEmergencyResponse
	ElementIncidentInvestigation
	ElementProgramAdministration
)

const ElementCount = 8

// Element is a regulatory audit category with its static weight range.
type Element struct {
	ID        ElementID `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	WeightMin float64   `json:"weightMin"`
	WeightMax float64   `json:"weightMax"`
}

// Weight is the midpoint of the element's weight range.
func (e Element) Weight() float64 { return (e.WeightMin + e.WeightMax) / 2 }

var elements = [ElementCount]Element{
	{ID: ElementManagementCommitment, Key: "management_commitment", Name: "Management Leadership & Commitment", WeightMin: 10, WeightMax: 15},
	{ID: ElementHazardAssessment, Key: "hazard_assessment", Name: "Hazard Identification & Assessment", WeightMin: 15, WeightMax: 20},
	{ID: ElementHazardControl, Key: "hazard_control", Name: "Hazard Control", WeightMin: 15, WeightMax: 20},
	{ID: ElementInspections, Key: "inspections", Name: "Ongoing Inspections", WeightMin: 10, WeightMax: 15},
	{ID: ElementTraining, Key: "qualifications_training", Name: "Qualifications, Orientation & Training", WeightMin: 10, WeightMax: 15},
	{ID: ElementEmergencyResponse, Key: "emergency_response", Name: "Emergency Response", WeightMin: 5, WeightMax: 10},
	{ID: ElementIncidentInvestigation, Key: "incident_investigation", Name: "Incident Investigation", WeightMin: 10, WeightMax: 15},
	{ID: ElementProgramAdministration, Key: "program_administration", Name: "Program Administration & JHSC", WeightMin: 5, WeightMax: 10},
}

// Elements returns the defined elements in order.
func Elements() [ElementCount]Element { return elements }

func (id ElementID) Valid() bool { return id >= 1 && int(id) <= ElementCount }

func (id ElementID) index() int { return int(id) - 1 }

// Element returns the definition for id. It panics on an undefined id.
func (id ElementID) Element() Element {
	if !id.Valid() {
		panic(fmt.Sprintf("domain: undefined element %d", int(id)))
	}
	return elements[id.index()]
}

func (id ElementID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("element(%d)", int(id))
	}
	return elements[id.index()].Key
}

// ParseElementID accepts an element key.
func ParseElementID(key string) (ElementID, error) {
	for _, e := range elements {
		if e.Key == key {
			return e.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", key)
}

func (id ElementID) MarshalJSON() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("undefined element %d", int(id))
	}
	return json.Marshal(id.String())
}

func (id *ElementID) UnmarshalJSON(b []byte) error {
	var key string
	if err := json.Unmarshal(b, &key); err != nil {
		return err
	}
	parsed, err := ParseElementID(key)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
