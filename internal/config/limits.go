package config

const (
	// MaxNameLength matches the VARCHAR(256) name columns.
	MaxNameLength = 256

	// MaxDescriptionLength matches the VARCHAR(256) description columns.
	MaxDescriptionLength = 256

	// MaxFilePathLength matches verification_attachments.file_path.
	MaxFilePathLength = 256

	// MaxTransactionTextLength matches transactions.text.
	MaxTransactionTextLength = 256

	// MinPasswordLength applies to newly registered users only.
	MinPasswordLength = 8
)
