package signing

// User facing messages of the signing page.
const (
	MsgProvideSignature    = "Please provide a signature"
	MsgNoContractProvided  = "No contract ID provided"
	MsgNoContractAvailable = "No contract ID available"
	MsgVectorizeFailed     = "Failed to generate signature"
	MsgSubmitted           = "Signature submitted successfully!"
	MsgSubmitFailed        = "An error occurred. Please try again."
	MsgLoadFailed          = "Failed to load contract information"
	MsgDocumentFailed      = "Failed to load PDF document"

	StatusSigned  = "Signed"
	StatusPending = "Pending"
)

type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)
