package domain

const (
	RoleCitizen = "CITIZEN"
	RoleAdmin   = "ADMIN"
)

const (
	UserStatusPending  = "PENDING"
	UserStatusApproved = "APPROVED"
	UserStatusRejected = "REJECTED"
)

// Tax payment lifecycle. A payment starts pending and is reconciled to a
// terminal status exactly once; success is never overwritten afterwards.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

const (
	SubmissionStatusNew        = "new"
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusResolved   = "resolved"
)

const (
	FeedbackTypeFeedback   = "feedback"
	FeedbackTypeSuggestion = "suggestion"
	FeedbackTypeComplaint  = "complaint"
)

const (
	ItemStatusPending  = "PENDING"
	ItemStatusApproved = "APPROVED"
	ItemStatusRejected = "REJECTED"
	ItemStatusSold     = "SOLD"
)

const (
	DevWorkPlanned   = "planned"
	DevWorkOngoing   = "ongoing"
	DevWorkCompleted = "completed"
)
