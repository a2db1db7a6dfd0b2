package message

const (
	InvalidInput    = "Invalid input."
	PayloadTooLarge = "Request body too large."
	TokenIDRequired = "Token ID required"
	NotFoundFmt     = "NFT %s not found"
	Minted          = "NFT minted successfully"
	Submitted       = "Submission processed successfully"
)
