package view

type ReviewState int

const (
	Idle ReviewState = iota
	Submitting
	Succeeded
	Failed
)

func (s ReviewState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "success"
	case Failed:
		return "failure"
	default:
		return "idle"
	}
}

// ReviewForm is what the review inputs show after an activation.
type ReviewForm struct {
	Text   string
	Rating string
}

type AddReview struct {
	ListingID   string
	FormVisible bool
	State       ReviewState
	Message     string
	Form        ReviewForm
}
