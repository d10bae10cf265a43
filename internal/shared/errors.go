package shared

import "errors"

var (

	// common errors
	ErrorCaseNotFound = errors.New("case not found")

	// storage-specific errors
	ErrorStaleRevision = errors.New("stale revision")

	// submission-specific errors
	ErrorEmptySubmission  = errors.New("submission has neither text nor images")
	ErrorMissingPatientID = errors.New("missing patient id")
	ErrorMissingDoctorID  = errors.New("missing doctor id")
)
