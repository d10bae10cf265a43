// Package models defines the persisted case record: a patient submission
// plus the ordered doctor replies appended to it.
package models

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	StatusPending  CaseStatus = "PENDING"
	StatusReviewed CaseStatus = "REVIEWED"
	StatusResolved CaseStatus = "RESOLVED"
)

// ReplyType classifies a doctor reply.
type ReplyType string

const (
	ReplyTypePrescription ReplyType = "PRESCRIPTION"
	ReplyTypeDoctorNote   ReplyType = "DOCTOR_NOTE"
)

// ImageAttachment is an inline-encoded image submitted with a case.
type ImageAttachment struct {
	ImageID    string `json:"imageId"`
	Filename   string `json:"filename"`
	Base64Data string `json:"base64Data"`
}

// Reply is a doctor-authored message appended to a case. Replies are
// append-only; nothing ever mutates or removes one once stored.
type Reply struct {
	ReplyID        string    `json:"replyId"`
	DoctorID       string    `json:"doctorId"`
	DoctorName     string    `json:"doctorName"`
	Specialization string    `json:"specialization"`
	Content        string    `json:"content"`
	Type           ReplyType `json:"type"`
	Medication     string    `json:"medication,omitempty"`
	Timestamp      int64     `json:"timestamp"`
}

// Case links one patient submission to zero or more doctor replies.
// Patient fields are denormalized copies captured at creation time.
// Timestamps are unix milliseconds.
type Case struct {
	CaseID          string            `json:"caseId"`
	PatientID       string            `json:"patientId"`
	PatientName     string            `json:"patientName"`
	PatientAge      int               `json:"patientAge"`
	PatientPhone    string            `json:"patientPhone"`
	PatientDistrict string            `json:"patientDistrict"`
	PatientState    string            `json:"patientState"`
	SymptomText     string            `json:"symptomText,omitempty"`
	Images          []ImageAttachment `json:"images"`
	Replies         []Reply           `json:"replies"`
	Status          CaseStatus        `json:"status"`
	CreatedAt       int64             `json:"createdAt"`
	UpdatedAt       int64             `json:"updatedAt"`
}

// CanTransition reports whether moving a case from one status to another
// is legal. Resolved is terminal; a reviewed case never falls back to
// pending.
func CanTransition(from, to CaseStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusReviewed || to == StatusResolved
	case StatusReviewed:
		return to == StatusResolved
	default:
		return false
	}
}

// MarkReviewed advances a pending case to reviewed. Reviewed and resolved
// cases are left unchanged; appending a reply to a resolved case must not
// reopen it.
func (c *Case) MarkReviewed() {
	if c.Status == StatusPending {
		c.Status = StatusReviewed
	}
}

// MarkResolved moves the case to its terminal state. Resolving an already
// resolved case is an error so the caller can tell the doctor nothing
// happened.
func (c *Case) MarkResolved() error {
	if c.Status == StatusResolved {
		return ErrAlreadyResolved
	}
	if !CanTransition(c.Status, StatusResolved) {
		return ErrIllegalTransition
	}
	c.Status = StatusResolved
	return nil
}

// LastReply returns the most recently appended reply, or nil if there are
// none.
func (c *Case) LastReply() *Reply {
	if len(c.Replies) == 0 {
		return nil
	}
	return &c.Replies[len(c.Replies)-1]
}
