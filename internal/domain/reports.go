package domain

// ConvertedAmount is a record that was successfully written out in words.
type ConvertedAmount struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Words  string `json:"words"`
}

// RejectedAmount is a record that could not be converted.
type RejectedAmount struct {
	ID     string `json:"id"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// Summary provides high-level statistics of a batch conversion.
type Summary struct {
	Source                string `json:"source"`
	TotalRecordsProcessed int    `json:"total_records_processed"`
	ConvertedRecords      int    `json:"converted_records"`
	RejectedRecords       int    `json:"rejected_records"`
}

// ConversionReport is the top-level structure for the batch JSON output.
type ConversionReport struct {
	ConversionSummary Summary           `json:"conversion_summary"`
	ConvertedAmounts  []ConvertedAmount `json:"converted_amounts"`
	RejectedAmounts   []RejectedAmount  `json:"rejected_amounts"`
}
