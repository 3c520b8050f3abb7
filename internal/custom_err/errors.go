package custom_err

import "errors"

var (
	// Validation errors
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidFundingSource = errors.New("invalid funding source")
	ErrInvalidRecipientType = errors.New("invalid recipient type")
	ErrNoImage              = errors.New("no image uploaded")

	// Proposal source errors, recovered with the fallback route set
	ErrProposalSourceDisabled    = errors.New("proposal source disabled")
	ErrProposalSourceUnavailable = errors.New("proposal source unavailable")
	ErrProposalParseFailure      = errors.New("proposal parse failure")

	// Routing engine errors
	ErrEmptyRouteSet = errors.New("empty route set")

	// Receipt errors
	ErrExtractorUnavailable = errors.New("receipt extractor unavailable")
	ErrReceiptParseFailure  = errors.New("receipt parse failure")
)
