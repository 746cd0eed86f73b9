package models

// AnalysisReport is the JSON shape the model is instructed to return. Every
// declared field is required and scores are integers on a 1-100 scale.
type AnalysisReport struct {
	SoftSkills         *SoftSkills         `json:"soft_skills" validate:"required"`
	Integrity          *Integrity          `json:"integrity" validate:"required"`
	QuantitativeScores *QuantitativeScores `json:"quantitative_scores" validate:"required"`
	Summary            *Summary            `json:"summary" validate:"required"`
}

type Observation struct {
	Description string   `json:"description" validate:"required"`
	Examples    []string `json:"examples" validate:"required"`
}

type SoftSkills struct {
	AuthenticityNaturalness    *Observation                `json:"authenticity_naturalness" validate:"required"`
	RapportLikeability         *Observation                `json:"rapport_likeability" validate:"required"`
	CommunicationInterpersonal *CommunicationInterpersonal `json:"communication_interpersonal" validate:"required"`
}

type CommunicationInterpersonal struct {
	Clarity         string   `json:"clarity" validate:"required"`
	ActiveListening string   `json:"active_listening" validate:"required"`
	Collaboration   string   `json:"collaboration" validate:"required"`
	Adaptability    string   `json:"adaptability" validate:"required"`
	Confidence      string   `json:"confidence" validate:"required"`
	Examples        []string `json:"examples" validate:"required"`
}

type Integrity struct {
	PausesDelivery *Observation `json:"pauses_delivery" validate:"required"`
	SpeechPatterns *Observation `json:"speech_patterns" validate:"required"`
	PhysicalCues   *Observation `json:"physical_cues" validate:"required"`
}

type QuantitativeScores struct {
	Naturalness          *int `json:"naturalness" validate:"required,min=1,max=100"`
	LikeabilityRapport   *int `json:"likeability_rapport" validate:"required,min=1,max=100"`
	CommunicationClarity *int `json:"communication_clarity" validate:"required,min=1,max=100"`
	ActiveListening      *int `json:"active_listening" validate:"required,min=1,max=100"`
	Confidence           *int `json:"confidence" validate:"required,min=1,max=100"`
	Adaptability         *int `json:"adaptability" validate:"required,min=1,max=100"`
	InterviewIntegrity   *int `json:"interview_integrity" validate:"required,min=1,max=100"`
}

type Summary struct {
	Strengths           []string             `json:"strengths" validate:"required"`
	Gaps                []string             `json:"gaps" validate:"required"`
	IntegrityAssessment *IntegrityAssessment `json:"integrity_assessment" validate:"required"`
	Recommendation      string               `json:"recommendation" validate:"required"`
}

type IntegrityAssessment struct {
	Description string `json:"description" validate:"required"`
	Score       *int   `json:"score" validate:"required,min=1,max=100"`
}
