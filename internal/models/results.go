package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TrainingCount is the number of completions recorded for one training.
type TrainingCount struct {
	Training string `json:"training" yaml:"training"`
	Count    int    `json:"count" yaml:"count"`
}

// TrainingCounts holds counts in order of first occurrence.
// It marshals to an object keyed by training name.
type TrainingCounts []TrainingCount

// Get returns the count for a training and whether it was observed.
func (tc TrainingCounts) Get(training string) (int, bool) {
	for _, c := range tc {
		if c.Training == training {
			return c.Count, true
		}
	}
	return 0, false
}

// Total returns the sum of all counts.
func (tc TrainingCounts) Total() int {
	total := 0
	for _, c := range tc {
		total += c.Count
	}
	return total
}

func (tc TrainingCounts) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(tc))
	values := make([]interface{}, len(tc))
	for i, c := range tc {
		keys[i] = c.Training
		values[i] = c.Count
	}
	return marshalOrderedJSON(keys, values)
}

func (tc TrainingCounts) MarshalYAML() (interface{}, error) {
	keys := make([]string, len(tc))
	values := make([]interface{}, len(tc))
	for i, c := range tc {
		keys[i] = c.Training
		values[i] = c.Count
	}
	return orderedYAMLNode(keys, values)
}

// TrainingAttendees lists the people who completed a training inside the
// requested fiscal year. People keeps duplicates when one person has several
// qualifying completions.
type TrainingAttendees struct {
	Training string   `json:"training" yaml:"training"`
	People   []string `json:"people" yaml:"people"`
}

// FiscalYearReport is the result of a fiscal year query. Results follows the
// request order, including repeated training names.
type FiscalYearReport struct {
	FiscalYear int
	Results    []TrainingAttendees
}

// People returns the attendees of the first entry for training.
func (r *FiscalYearReport) People(training string) ([]string, bool) {
	for _, res := range r.Results {
		if res.Training == training {
			return res.People, true
		}
	}
	return nil, false
}

// MarshalJSON renders the report as an object keyed by training name in
// request order. A repeated training name is emitted once.
func (r FiscalYearReport) MarshalJSON() ([]byte, error) {
	keys, values := r.uniqueEntries()
	return marshalOrderedJSON(keys, values)
}

func (r FiscalYearReport) MarshalYAML() (interface{}, error) {
	keys, values := r.uniqueEntries()
	return orderedYAMLNode(keys, values)
}

func (r FiscalYearReport) uniqueEntries() ([]string, []interface{}) {
	seen := make(map[string]bool, len(r.Results))
	var keys []string
	var values []interface{}
	for _, res := range r.Results {
		if seen[res.Training] {
			continue
		}
		seen[res.Training] = true
		people := res.People
		if people == nil {
			people = []string{}
		}
		keys = append(keys, res.Training)
		values = append(values, people)
	}
	return keys, values
}

// TrainingStatus is one classified completion of a person.
type TrainingStatus struct {
	TrainingName string           `json:"training_name" yaml:"training_name"`
	Status       ExpirationStatus `json:"status" yaml:"status"`
}

// PersonExpirations lists the expired or soon-to-expire trainings of one person.
type PersonExpirations struct {
	Name               string           `json:"name" yaml:"name"`
	CompletedTrainings []TrainingStatus `json:"completed_trainings" yaml:"completed_trainings"`
}

func marshalOrderedJSON(keys []string, values []interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", key, err)
		}
		v, err := marshalNoEscape(values[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping; the outer encoder decides
// whether to escape.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func orderedYAMLNode(keys []string, values []interface{}) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, key := range keys {
		var valueNode yaml.Node
		if err := valueNode.Encode(values[i]); err != nil {
			return nil, fmt.Errorf("failed to encode value for %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode)
	}
	return node, nil
}
