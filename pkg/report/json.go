package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonSlot is the machine-readable slot mapping row. Bound nodes are reduced
// to their layer names so the output stays flat.
type jsonSlot struct {
	SlotName   string   `json:"slot_name"`
	Layers     []string `json:"layers"`
	Confidence float64  `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

type jsonMapping struct {
	Archetype         string     `json:"archetype"`
	Slots             []jsonSlot `json:"slots"`
	OverallConfidence float64    `json:"overall_confidence"`
	Warnings          []string   `json:"warnings,omitempty"`
	Suggestions       []string   `json:"suggestions,omitempty"`
}

type jsonComponent struct {
	NodeName   string       `json:"node_name"`
	NodeCount  int          `json:"node_count"`
	Archetype  string       `json:"archetype"`
	Confidence float64      `json:"confidence"`
	Reasons    []string     `json:"reasons,omitempty"`
	Accepted   bool         `json:"accepted"`
	Mapping    *jsonMapping `json:"mapping,omitempty"`
}

type jsonReport struct {
	Source      string          `json:"source"`
	GeneratedAt string          `json:"generated_at"`
	Floor       float64         `json:"floor"`
	Components  []jsonComponent `json:"components"`
}

// WriteJSON renders the report as indented JSON with stable field order.
func WriteJSON(w io.Writer, r *Report) error {
	out := jsonReport{
		Source:      r.Source,
		GeneratedAt: r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Floor:       r.Floor,
		Components:  make([]jsonComponent, 0, len(r.Components)),
	}

	for _, component := range r.Components {
		jc := jsonComponent{
			NodeName:   component.NodeName,
			NodeCount:  component.NodeCount,
			Archetype:  string(component.Classification.Archetype),
			Confidence: component.Classification.Confidence,
			Reasons:    component.Classification.Reasons,
			Accepted:   component.Accepted,
		}

		if m := component.Mapping; m != nil {
			jm := &jsonMapping{
				Archetype:         string(m.Archetype),
				Slots:             make([]jsonSlot, 0, len(m.Slots)),
				OverallConfidence: m.OverallConfidence,
				Warnings:          m.Warnings,
				Suggestions:       m.Suggestions,
			}

			for _, slot := range m.Slots {
				jm.Slots = append(jm.Slots, jsonSlot{
					SlotName:   slot.SlotName,
					Layers:     slot.NodeNames(),
					Confidence: slot.Confidence,
					Reasoning:  slot.Reasoning,
				})
			}

			jc.Mapping = jm
		}

		out.Components = append(out.Components, jc)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
