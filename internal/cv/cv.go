// Package cv holds the candidate-side data model: the structured record
// extracted from a CV by the model, the extraction result wrapper, and the
// helpers that derive skills and experience durations from it.
package cv

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Text is a string field that tolerates unquoted JSON values. The extraction
// model does not always quote numbers such as GPA or exam scores, and a type
// mismatch must not turn an otherwise valid record into a parse failure.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v == nil {
		*t = ""
		return nil
	}

	*t = Text(fmt.Sprintf("%v", v))
	return nil
}

func (t Text) String() string { return string(t) }

// ParsedCV is the structured record produced by model-backed extraction from
// normalized CV text. Free-form sections are kept as raw maps; only the
// sections consumed by scoring are typed.
type ParsedCV struct {
	PersonalInformation map[string]Text `json:"PersonalInformation,omitempty"`
	ContactInformation  map[string]Text `json:"ContactInformation,omitempty"`
	Education           []Education     `json:"Education,omitempty"`
	DesiredPosition     any             `json:"DesiredPosition,omitempty"`
	Occupation          any             `json:"Occupation,omitempty"`
	WorkExperience      []Work          `json:"WorkExperience,omitempty"`
	Certificates        []Certificate   `json:"Certificates,omitempty"`
	Exams               []Exam          `json:"Exams,omitempty"`
	Training            []Training      `json:"Training,omitempty"`
	Skills              []Text          `json:"Skills,omitempty"`
	Languages           []Text          `json:"Languages,omitempty"`
	SalaryExpectation   Text            `json:"SalaryExpectation,omitempty"`
	OtherInformation    Text            `json:"OtherInformation,omitempty"`
}

type Education struct {
	Period      Text `json:"Period,omitempty"`
	Degree      Text `json:"Degree,omitempty"`
	Major       Text `json:"Major,omitempty"`
	Institution Text `json:"Institution,omitempty"`
	GPA         Text `json:"GPA,omitempty"`
}

type Work struct {
	Period   Text `json:"Period,omitempty"`
	Duration Text `json:"Duration,omitempty"`
	Position Text `json:"Position,omitempty"`
	Company  Text `json:"Company,omitempty"`
}

type Certificate struct {
	Name        Text `json:"Name,omitempty"`
	Period      Text `json:"Period,omitempty"`
	Institution Text `json:"Institution,omitempty"`
}

type Exam struct {
	Name  Text `json:"Name,omitempty"`
	Date  Text `json:"Date,omitempty"`
	Score Text `json:"Score,omitempty"`
}

type Training struct {
	Date           Text `json:"Date,omitempty"`
	Name           Text `json:"Name,omitempty"`
	TrainingCenter Text `json:"TrainingCenter,omitempty"`
}

// Flatten joins the entry field values into one lowercase blob for
// token-containment matching against a job description.
func (e Education) Flatten() string {
	return flatten(e.Period, e.Degree, e.Major, e.Institution, e.GPA)
}

func (w Work) Flatten() string {
	return flatten(w.Period, w.Duration, w.Position, w.Company)
}

func (c Certificate) Flatten() string {
	return flatten(c.Name, c.Period, c.Institution)
}

func (e Exam) Flatten() string {
	return flatten(e.Name, e.Date, e.Score)
}

func (t Training) Flatten() string {
	return flatten(t.Date, t.Name, t.TrainingCenter)
}

func flatten(values ...Text) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Extraction is the outcome of a single CV extraction: either a usable
// structured record or an explicit failure marker carrying the raw model
// output for diagnosis. It is returned, never raised, so one bad extraction
// cannot abort a screening batch.
type Extraction struct {
	CV      *ParsedCV          `json:"cv,omitempty"`
	Failure *ExtractionFailure `json:"failure,omitempty"`
}

// ExtractionFailure preserves the literal error-marker shape emitted when the
// model response is not parseable.
type ExtractionFailure struct {
	Error     string `json:"error"`
	RawOutput string `json:"raw_output"`
}

// OK reports whether the extraction produced a usable structured record.
func (e *Extraction) OK() bool {
	return e != nil && e.Failure == nil && e.CV != nil
}

// Payload returns whichever variant should be embedded into follow-up
// prompts: the structured record on success, the failure marker otherwise.
func (e *Extraction) Payload() any {
	if e == nil {
		return nil
	}
	if e.Failure != nil {
		return e.Failure
	}
	return e.CV
}
